package domain

const (
	tokensPerMillion = 1e6

	// streamingGBPerHour is the fixed egress assumption for one streamed
	// hour of SD video.
	streamingGBPerHour = 1.0
)

// triangularSum returns 1+2+...+n. GB stored in month k is billed for every
// remaining month of the contract, so total GB-months over the term is the
// monthly new GB times this sum.
func triangularSum(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n) * float64(n+1) / 2
}

// tokenCost prices a two-sided LLM workload: units of work times per-unit
// token counts at the input/output price points.
func tokenCost(units, tokensIn, tokensOut float64, rates RateCard) float64 {
	return units*tokensIn/tokensPerMillion*rates.CostPerMillionTokensIn +
		units*tokensOut/tokensPerMillion*rates.CostPerMillionTokensOut
}

// ComputeCosts projects one tier's operating cost over the full contract
// term, broken into the six cost categories.
//
// It is total over any non-negative input: it never fails, it only produces
// larger or smaller numbers. Out-of-range inputs are the validator's
// concern, not the engine's.
func ComputeCosts(deal DealTerms, usage TierUsage, rates RateCard) *CostBreakdown {
	term := float64(deal.TermMonths)
	sdHours, hdHours := usage.videoHoursPerMonth()
	baseHoursPerMonth := sdHours + hdHours
	baseTotalHours := baseHoursPerMonth * term
	totalHoursSD := sdHours * term
	totalHoursHD := hdHours * term

	// Transcription bills raw audio hours; HD carries no premium here.
	transcription := baseTotalHours * rates.CostPerTranscriptionHour

	batchHoursSD := totalHoursSD * rates.BatchHoursPerVideoHour
	batchHoursHD := totalHoursHD * rates.HDCostMultiplier * rates.BatchHoursPerVideoHour
	batchSD := batchHoursSD * rates.CostPerBatchHour
	batchHD := batchHoursHD * rates.CostPerBatchHour
	batch := batchSD + batchHD

	// Storage accrues monthly: month k's new GB is billed term-k+1 times.
	monthSum := triangularSum(deal.TermMonths)
	monthlyNewGBSD := sdHours * rates.GBPerVideoHour
	monthlyNewGBHD := hdHours * rates.GBPerVideoHour * rates.HDCostMultiplier
	storageGBSD := monthlyNewGBSD * term
	storageGBHD := monthlyNewGBHD * term
	storageSD := monthlyNewGBSD * monthSum * rates.CostPerGBStorage
	storageHD := monthlyNewGBHD * monthSum * rates.CostPerGBStorage
	storage := storageSD + storageHD

	streaming := float64(deal.Seats) * usage.StreamingHoursPerSeat *
		streamingGBPerHour * rates.CostPerGBTransfer * term

	pipeline := tokenCost(baseTotalHours, rates.PipelineTokensIn, rates.PipelineTokensOut, rates)

	tutorIncluded := usage.tutorIncluded()
	tutorQueriesPerMonth := 0.0
	if tutorIncluded {
		tutorQueriesPerMonth = float64(deal.Seats) * usage.TutorQueriesPerSeat
	}
	tutor := tokenCost(tutorQueriesPerMonth, rates.TutorTokensIn, rates.TutorTokensOut, rates) * term

	questionsPerMonth := baseHoursPerMonth * usage.QuizQuestionsPerHour
	quiz := tokenCost(questionsPerMonth, rates.QuizTokensIn, rates.QuizTokensOut, rates) * term

	llm := pipeline + tutor + quiz

	embedTokensPerMonth := rates.EmbeddingTokensPerVideoHour * baseHoursPerMonth
	embeddings := embedTokensPerMonth / tokensPerMillion * rates.CostPerMillionEmbeddingTokens * term

	raw := map[CostCategory]float64{
		CategoryTranscription: transcription,
		CategoryBatch:         batch,
		CategoryStorage:       storage,
		CategoryStreaming:     streaming,
		CategoryLLM:           llm,
		CategoryEmbeddings:    embeddings,
	}
	amounts, total, rawTotal := applySafetyMultiplier(raw, rates.CostSafetyMultiplier)

	detail := &CostDetail{
		TermMonths: deal.TermMonths,
		Transcription: TranscriptionDetail{
			TotalVideoHours: baseTotalHours,
			UnitCost:        rates.CostPerTranscriptionHour,
			Amount:          transcription,
		},
		Storage: StorageDetail{
			MonthSum:             monthSum,
			GBPerVideoHour:       rates.GBPerVideoHour,
			HDCostMultiplier:     rates.HDCostMultiplier,
			CostPerGB:            rates.CostPerGBStorage,
			VideoHoursSDPerMonth: sdHours,
			VideoHoursHDPerMonth: hdHours,
			TotalAmount:          storage,
		},
		Batch: BatchDetail{
			BatchHoursPerVideoHour: rates.BatchHoursPerVideoHour,
			HDCostMultiplier:       rates.HDCostMultiplier,
			CostPerHour:            rates.CostPerBatchHour,
			TotalVideoHoursSD:      totalHoursSD,
			TotalVideoHoursHD:      totalHoursHD,
			TotalAmount:            batch,
		},
		Pipeline: PipelineDetail{
			TotalVideoHours: baseTotalHours,
			TokensIn:        rates.PipelineTokensIn,
			TokensOut:       rates.PipelineTokensOut,
			CostIn:          rates.CostPerMillionTokensIn,
			CostOut:         rates.CostPerMillionTokensOut,
			Amount:          pipeline,
		},
		Quiz: QuizDetail{
			VideoHoursPerMonth: baseHoursPerMonth,
			QuestionsPerHour:   usage.QuizQuestionsPerHour,
			QuestionsPerMonth:  questionsPerMonth,
			TermMonths:         deal.TermMonths,
			TokensIn:           rates.QuizTokensIn,
			TokensOut:          rates.QuizTokensOut,
			CostIn:             rates.CostPerMillionTokensIn,
			CostOut:            rates.CostPerMillionTokensOut,
			Amount:             quiz,
		},
		Tutor: TutorDetail{
			Seats:           deal.Seats,
			QueriesPerSeat:  usage.TutorQueriesPerSeat,
			QueriesPerMonth: tutorQueriesPerMonth,
			TermMonths:      deal.TermMonths,
			TokensIn:        rates.TutorTokensIn,
			TokensOut:       rates.TutorTokensOut,
			CostIn:          rates.CostPerMillionTokensIn,
			CostOut:         rates.CostPerMillionTokensOut,
			Amount:          tutor,
			Included:        tutorIncluded,
		},
		Streaming: StreamingDetail{
			Seats:        deal.Seats,
			HoursPerSeat: usage.StreamingHoursPerSeat,
			GBPerHour:    streamingGBPerHour,
			CostPerGB:    rates.CostPerGBTransfer,
			Amount:       streaming,
		},
		Embeddings: EmbeddingDetail{
			VideoHoursPerMonth: baseHoursPerMonth,
			TokensPerVideoHour: rates.EmbeddingTokensPerVideoHour,
			TokensPerMonth:     embedTokensPerMonth,
			TermMonths:         deal.TermMonths,
			CostPerMillion:     rates.CostPerMillionEmbeddingTokens,
			Amount:             embeddings,
		},
		CostMultiplier:     rates.CostSafetyMultiplier,
		TotalPreMultiplier: rawTotal,
	}
	if storageGBSD > 0 {
		detail.Storage.SD = &StorageStreamDetail{
			StorageGB:    storageGBSD,
			MonthlyNewGB: monthlyNewGBSD,
			Amount:       storageSD,
		}
	}
	if storageGBHD > 0 {
		detail.Storage.HD = &StorageStreamDetail{
			StorageGB:    storageGBHD,
			MonthlyNewGB: monthlyNewGBHD,
			Amount:       storageHD,
		}
	}
	if batchHoursSD > 0 {
		detail.Batch.SD = &BatchStreamDetail{BatchHours: batchHoursSD, Amount: batchSD}
	}
	if batchHoursHD > 0 {
		detail.Batch.HD = &BatchStreamDetail{BatchHours: batchHoursHD, Amount: batchHD}
	}

	return &CostBreakdown{
		Amounts:   amounts,
		Total:     total,
		StorageGB: storageGBSD + storageGBHD,
		Detail:    detail,
	}
}

// ComputeLaunchCosts prices the one-time ingestion of a pre-existing content
// library at contract start. The launch catalog is transcribed, processed,
// embedded and quizzed once, and its storage is present from month one, so
// storage bills flat for every month of the term instead of accruing.
// Streaming and tutor usage are ongoing costs and do not appear here.
//
// Launch costs carry no per-step derivation record; the per-category amounts
// are the itemization.
func ComputeLaunchCosts(deal DealTerms, usage TierUsage, rates RateCard) *CostBreakdown {
	sdHours := usage.LaunchVideoHoursSD
	hdHours := usage.LaunchVideoHoursHD
	baseHours := sdHours + hdHours

	raw := map[CostCategory]float64{}
	for _, cat := range CostCategories {
		raw[cat] = 0
	}
	if baseHours <= 0 {
		amounts, total, _ := applySafetyMultiplier(raw, rates.CostSafetyMultiplier)
		return &CostBreakdown{Amounts: amounts, Total: total}
	}

	transcription := baseHours * rates.CostPerTranscriptionHour

	batchHours := sdHours*rates.BatchHoursPerVideoHour +
		hdHours*rates.HDCostMultiplier*rates.BatchHoursPerVideoHour
	batch := batchHours * rates.CostPerBatchHour

	launchGB := sdHours*rates.GBPerVideoHour +
		hdHours*rates.GBPerVideoHour*rates.HDCostMultiplier
	storage := launchGB * float64(deal.TermMonths) * rates.CostPerGBStorage

	pipeline := tokenCost(baseHours, rates.PipelineTokensIn, rates.PipelineTokensOut, rates)
	questions := baseHours * usage.QuizQuestionsPerHour
	quiz := tokenCost(questions, rates.QuizTokensIn, rates.QuizTokensOut, rates)

	embeddings := rates.EmbeddingTokensPerVideoHour * baseHours / tokensPerMillion *
		rates.CostPerMillionEmbeddingTokens

	raw[CategoryTranscription] = transcription
	raw[CategoryBatch] = batch
	raw[CategoryStorage] = storage
	raw[CategoryLLM] = pipeline + quiz
	raw[CategoryEmbeddings] = embeddings

	amounts, total, _ := applySafetyMultiplier(raw, rates.CostSafetyMultiplier)

	return &CostBreakdown{
		Amounts:   amounts,
		Total:     total,
		StorageGB: launchGB,
	}
}

// applySafetyMultiplier scales every category uniformly and accumulates the
// total in the declared category order.
func applySafetyMultiplier(raw map[CostCategory]float64, multiplier float64) (amounts map[CostCategory]float64, total, rawTotal float64) {
	amounts = make(map[CostCategory]float64, len(raw))
	for _, cat := range CostCategories {
		amounts[cat] = raw[cat] * multiplier
		total += amounts[cat]
		rawTotal += raw[cat]
	}
	return amounts, total, rawTotal
}
