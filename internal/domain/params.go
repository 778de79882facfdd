package domain

// Tier identifies a product variant with its own usage assumptions and
// price floor.
type Tier string

const (
	// TierVanilla is the base product variant.
	TierVanilla Tier = "vanilla"

	// TierPremium is the full product variant; it always includes the
	// AI tutor workload.
	TierPremium Tier = "premium"
)

// DealTerms contains the contract-level inputs shared by both tiers.
type DealTerms struct {
	Seats      int     `json:"seats"`
	TermMonths int     `json:"term_months"`
	SetupFee   float64 `json:"setup_fee"`

	// FXRate divides primary-currency amounts into the secondary display
	// currency. The engine never converts; only the export layer uses it.
	FXRate float64 `json:"fx_rate"`

	// EarlyCustomerDiscount is a flat rate (fraction of list price) granted
	// to early customers, combined additively with volume and term discounts.
	EarlyCustomerDiscount float64 `json:"early_customer_discount"`
}

// TierUsage contains one tier's usage assumptions and deal pricing inputs.
type TierUsage struct {
	Tier Tier `json:"tier"`

	VideosPerMonth      float64 `json:"videos_per_month"`
	AvgVideoLengthHours float64 `json:"avg_video_length_hours"`

	// HDFraction is the share of produced video that is high definition,
	// in [0, 1].
	HDFraction float64 `json:"hd_fraction"`

	StreamingHoursPerSeat float64 `json:"streaming_hours_per_seat"`
	TutorQueriesPerSeat   float64 `json:"tutor_queries_per_seat"`
	QuizQuestionsPerHour  float64 `json:"quiz_questions_per_hour"`

	// TutorAddOn enables the AI tutor workload on the Vanilla tier.
	// Premium includes the tutor regardless.
	TutorAddOn bool `json:"tutor_add_on"`

	// Launch catalog: pre-existing content ingested once at contract start.
	LaunchVideoHoursSD float64 `json:"launch_video_hours_sd"`
	LaunchVideoHoursHD float64 `json:"launch_video_hours_hd"`

	BasePricePerSeatMonth float64 `json:"base_price_per_seat_month"`

	// MinMarkupPct is the minimum vendor net profit as a fraction of total
	// operating cost (markup on cost, not margin on revenue).
	MinMarkupPct float64 `json:"min_markup_pct"`
}

// videoHoursPerMonth splits monthly production into SD and HD streams.
func (u TierUsage) videoHoursPerMonth() (sd, hd float64) {
	total := u.VideosPerMonth * u.AvgVideoLengthHours
	hd = total * u.HDFraction
	sd = total - hd
	return sd, hd
}

// tutorIncluded reports whether the AI tutor workload bills on this tier.
func (u TierUsage) tutorIncluded() bool {
	return u.Tier == TierPremium || u.TutorAddOn
}

// RateCard contains the shared technical ratios and external unit costs.
// All monetary values are in the primary currency.
type RateCard struct {
	// HDCostMultiplier scales storage and compute for HD content relative
	// to SD. Must be >= 1.
	HDCostMultiplier float64 `json:"hd_cost_multiplier"`

	GBPerVideoHour              float64 `json:"gb_per_video_hour"`
	BatchHoursPerVideoHour      float64 `json:"batch_hours_per_video_hour"`
	EmbeddingTokensPerVideoHour float64 `json:"embedding_tokens_per_video_hour"`

	// Token counts per unit of work for the three LLM workloads.
	PipelineTokensIn  float64 `json:"pipeline_tokens_in"`
	PipelineTokensOut float64 `json:"pipeline_tokens_out"`
	TutorTokensIn     float64 `json:"tutor_tokens_in"`
	TutorTokensOut    float64 `json:"tutor_tokens_out"`
	QuizTokensIn      float64 `json:"quiz_tokens_in"`
	QuizTokensOut     float64 `json:"quiz_tokens_out"`

	CostPerTranscriptionHour      float64 `json:"cost_per_transcription_hour"`
	CostPerGBStorage              float64 `json:"cost_per_gb_storage"`
	CostPerGBTransfer             float64 `json:"cost_per_gb_transfer"`
	CostPerBatchHour              float64 `json:"cost_per_batch_hour"`
	CostPerMillionTokensIn        float64 `json:"cost_per_million_tokens_in"`
	CostPerMillionTokensOut       float64 `json:"cost_per_million_tokens_out"`
	CostPerMillionEmbeddingTokens float64 `json:"cost_per_million_embedding_tokens"`

	// CostSafetyMultiplier is a blanket margin-of-error buffer (>= 1)
	// applied uniformly to every cost category.
	CostSafetyMultiplier float64 `json:"cost_safety_multiplier"`
}

// Scenario is the full input document for one estimate run: deal terms,
// both tiers' usage assumptions, the rate card, and the pricing policies.
// It round-trips through JSON unchanged, which is what the persistence
// layer relies on.
type Scenario struct {
	Deal         DealTerms          `json:"deal"`
	Vanilla      TierUsage          `json:"vanilla"`
	Premium      TierUsage          `json:"premium"`
	Rates        RateCard           `json:"rates"`
	Discounts    DiscountPolicy     `json:"discounts"`
	RevenueShare RevenueSharePolicy `json:"revenue_share"`
}

// UsageForTier returns the usage record for the given tier.
func (s *Scenario) UsageForTier(tier Tier) TierUsage {
	if tier == TierPremium {
		return s.Premium
	}
	return s.Vanilla
}
