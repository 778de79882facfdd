package domain

// DefaultScenario returns the reference deal: 500 seats on a 12-month term,
// 40 one-hour SD videos produced per month, and the standard rate card and
// discount tables. Callers typically start from this and override.
func DefaultScenario() *Scenario {
	return &Scenario{
		Deal: DealTerms{
			Seats:      500,
			TermMonths: 12,
			SetupFee:   0,
			FXRate:     84,
		},
		Vanilla: TierUsage{
			Tier:                  TierVanilla,
			VideosPerMonth:        40,
			AvgVideoLengthHours:   1,
			HDFraction:            0,
			StreamingHoursPerSeat: 2,
			TutorQueriesPerSeat:   0,
			QuizQuestionsPerHour:  5,
			BasePricePerSeatMonth: 299,
			MinMarkupPct:          0.60,
		},
		Premium: TierUsage{
			Tier:                  TierPremium,
			VideosPerMonth:        40,
			AvgVideoLengthHours:   1,
			HDFraction:            0,
			StreamingHoursPerSeat: 2,
			TutorQueriesPerSeat:   20,
			QuizQuestionsPerHour:  5,
			BasePricePerSeatMonth: 449,
			MinMarkupPct:          0.60,
		},
		Rates: RateCard{
			HDCostMultiplier:              5,
			GBPerVideoHour:                0.75,
			BatchHoursPerVideoHour:        0.5,
			EmbeddingTokensPerVideoHour:   25000,
			PipelineTokensIn:              500000,
			PipelineTokensOut:             200000,
			TutorTokensIn:                 2000,
			TutorTokensOut:                500,
			QuizTokensIn:                  5000,
			QuizTokensOut:                 2000,
			CostPerTranscriptionHour:      55,
			CostPerGBStorage:              1.93,
			CostPerGBTransfer:             7.56,
			CostPerBatchHour:              4.03,
			CostPerMillionTokensIn:        6.30,
			CostPerMillionTokensOut:       25.20,
			CostPerMillionEmbeddingTokens: 1.68,
			CostSafetyMultiplier:          1.3,
		},
		Discounts: DiscountPolicy{
			VolumeRates: [7]float64{0, 0.05, 0.10, 0.15, 0.18, 0.20, 0.22},
			TermRates:   [4]float64{0, 0.02, 0.05, 0.10},
		},
		RevenueShare: RevenueSharePolicy{
			YearRates: [maxSharedYears]float64{0.30, 0.20, 0.10, 0.05, 0.05},
		},
	}
}
