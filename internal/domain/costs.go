package domain

// CostCategory names one of the six operating-cost categories.
type CostCategory string

const (
	CategoryTranscription CostCategory = "transcription"
	CategoryBatch         CostCategory = "batch"
	CategoryStorage       CostCategory = "storage"
	CategoryStreaming     CostCategory = "streaming"
	CategoryLLM           CostCategory = "llm"
	CategoryEmbeddings    CostCategory = "embeddings"
)

// CostCategories lists every category in accumulation order. Totals are
// summed in this order so repeated runs produce bit-identical results.
var CostCategories = []CostCategory{
	CategoryTranscription,
	CategoryBatch,
	CategoryStorage,
	CategoryStreaming,
	CategoryLLM,
	CategoryEmbeddings,
}

// CostBreakdown is the cost engine's output: per-category amounts over the
// full contract term, their total, and the end-state storage footprint.
// Amounts and Total already include the cost safety multiplier.
type CostBreakdown struct {
	Amounts   map[CostCategory]float64 `json:"amounts"`
	Total     float64                  `json:"total"`
	StorageGB float64                  `json:"storage_gb"`

	// Detail carries every intermediate quantity needed to reproduce each
	// category's amount. It is a projection for human-readable derivation
	// output and never feeds back into further computation.
	Detail *CostDetail `json:"detail,omitempty"`
}

// CostDetail itemizes the derivation of each cost category. Amounts in the
// detail are pre-multiplier.
type CostDetail struct {
	TermMonths         int                 `json:"term_months"`
	Transcription      TranscriptionDetail `json:"transcription"`
	Storage            StorageDetail       `json:"storage"`
	Batch              BatchDetail         `json:"batch"`
	Pipeline           PipelineDetail      `json:"pipeline"`
	Quiz               QuizDetail          `json:"quiz"`
	Tutor              TutorDetail         `json:"tutor"`
	Streaming          StreamingDetail     `json:"streaming"`
	Embeddings         EmbeddingDetail     `json:"embeddings"`
	CostMultiplier     float64             `json:"cost_multiplier"`
	TotalPreMultiplier float64             `json:"total_pre_multiplier"`
}

// TranscriptionDetail derives the transcription amount from base (non
// HD-weighted) video hours.
type TranscriptionDetail struct {
	TotalVideoHours float64 `json:"total_video_hours"`
	UnitCost        float64 `json:"unit_cost"`
	Amount          float64 `json:"amount"`
}

// StorageStreamDetail is one resolution stream (SD or HD) of the storage
// derivation.
type StorageStreamDetail struct {
	StorageGB    float64 `json:"storage_gb"`
	MonthlyNewGB float64 `json:"monthly_new_gb"`
	Amount       float64 `json:"amount"`
}

// StorageDetail derives the growth-weighted storage amount. SD or HD is nil
// when that stream produces no content.
type StorageDetail struct {
	SD *StorageStreamDetail `json:"sd,omitempty"`
	HD *StorageStreamDetail `json:"hd,omitempty"`

	// MonthSum is the triangular sum 1+2+...+term: GB added in month k is
	// billed for every remaining month of the contract.
	MonthSum float64 `json:"month_sum"`

	GBPerVideoHour       float64 `json:"gb_per_video_hour"`
	HDCostMultiplier     float64 `json:"hd_cost_multiplier"`
	CostPerGB            float64 `json:"cost_per_gb"`
	VideoHoursSDPerMonth float64 `json:"video_hours_sd_per_month"`
	VideoHoursHDPerMonth float64 `json:"video_hours_hd_per_month"`
	TotalAmount          float64 `json:"total_amount"`
}

// BatchStreamDetail is one resolution stream of the batch-compute derivation.
type BatchStreamDetail struct {
	BatchHours float64 `json:"batch_hours"`
	Amount     float64 `json:"amount"`
}

// BatchDetail derives the batch video-processing amount.
type BatchDetail struct {
	SD *BatchStreamDetail `json:"sd,omitempty"`
	HD *BatchStreamDetail `json:"hd,omitempty"`

	BatchHoursPerVideoHour float64 `json:"batch_hours_per_video_hour"`
	HDCostMultiplier       float64 `json:"hd_cost_multiplier"`
	CostPerHour            float64 `json:"cost_per_hour"`
	TotalVideoHoursSD      float64 `json:"total_video_hours_sd"`
	TotalVideoHoursHD      float64 `json:"total_video_hours_hd"`
	TotalAmount            float64 `json:"total_amount"`
}

// PipelineDetail derives the course-authoring LLM amount, which scales with
// total base video hours.
type PipelineDetail struct {
	TotalVideoHours float64 `json:"total_video_hours"`
	TokensIn        float64 `json:"tokens_in"`
	TokensOut       float64 `json:"tokens_out"`
	CostIn          float64 `json:"cost_in"`
	CostOut         float64 `json:"cost_out"`
	Amount          float64 `json:"amount"`
}

// QuizDetail derives the quiz-generation LLM amount, which scales with
// produced video hours rather than seats.
type QuizDetail struct {
	VideoHoursPerMonth float64 `json:"video_hours_per_month"`
	QuestionsPerHour   float64 `json:"questions_per_hour"`
	QuestionsPerMonth  float64 `json:"questions_per_month"`
	TermMonths         int     `json:"term_months"`
	TokensIn           float64 `json:"tokens_in"`
	TokensOut          float64 `json:"tokens_out"`
	CostIn             float64 `json:"cost_in"`
	CostOut            float64 `json:"cost_out"`
	Amount             float64 `json:"amount"`
}

// TutorDetail derives the AI tutor LLM amount. Included is false when the
// tier does not carry the tutor workload, in which case Amount is zero.
type TutorDetail struct {
	Seats           int     `json:"seats"`
	QueriesPerSeat  float64 `json:"queries_per_seat"`
	QueriesPerMonth float64 `json:"queries_per_month"`
	TermMonths      int     `json:"term_months"`
	TokensIn        float64 `json:"tokens_in"`
	TokensOut       float64 `json:"tokens_out"`
	CostIn          float64 `json:"cost_in"`
	CostOut         float64 `json:"cost_out"`
	Amount          float64 `json:"amount"`
	Included        bool    `json:"included"`
}

// StreamingDetail derives the streaming-egress amount.
type StreamingDetail struct {
	Seats        int     `json:"seats"`
	HoursPerSeat float64 `json:"hours_per_seat"`
	GBPerHour    float64 `json:"gb_per_hour"`
	CostPerGB    float64 `json:"cost_per_gb"`
	Amount       float64 `json:"amount"`
}

// EmbeddingDetail derives the embedding amount (input tokens only).
type EmbeddingDetail struct {
	VideoHoursPerMonth float64 `json:"video_hours_per_month"`
	TokensPerVideoHour float64 `json:"tokens_per_video_hour"`
	TokensPerMonth     float64 `json:"tokens_per_month"`
	TermMonths         int     `json:"term_months"`
	CostPerMillion     float64 `json:"cost_per_million"`
	Amount             float64 `json:"amount"`
}
