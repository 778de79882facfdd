package domain

import (
	"fmt"
	"math"
)

// IssueCode classifies a validation issue.
type IssueCode string

const (
	// IssueInvalidInput flags a field that is missing, non-finite, or
	// outside its declared bound.
	IssueInvalidInput IssueCode = "invalid_input"

	// IssueBelowMinimumPrice flags a tier whose base price is below the
	// margin-compliant floor; the issue carries the computed floor.
	IssueBelowMinimumPrice IssueCode = "below_minimum_price"

	// IssuePriceOrdering flags a Premium base price that does not strictly
	// exceed Vanilla's.
	IssuePriceOrdering IssueCode = "price_ordering"

	// IssueUnsatisfiableMargin flags an effective partner share of 99.9% or
	// more, which no finite price can satisfy.
	IssueUnsatisfiableMargin IssueCode = "unsatisfiable_margin"
)

// Issue is one validation finding. All issues for a scenario are collected
// and returned together so a caller can surface a complete correction list
// in one pass.
type Issue struct {
	Code    IssueCode `json:"code"`
	Tier    Tier      `json:"tier,omitempty"`
	Field   string    `json:"field,omitempty"`
	Label   string    `json:"label,omitempty"`
	Message string    `json:"message"`

	// MinBasePrice carries the computed floor for below_minimum_price so
	// the caller can offer an automatic fix.
	MinBasePrice float64 `json:"min_base_price,omitempty"`
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) invalid(field, label, message string) {
	c.issues = append(c.issues, Issue{
		Code:    IssueInvalidInput,
		Field:   field,
		Label:   label,
		Message: message,
	})
}

func (c *issueCollector) finite(value float64, field, label string) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		c.invalid(field, label, "must be a finite number")
		return false
	}
	return true
}

func (c *issueCollector) nonNegative(value float64, field, label string) {
	if !c.finite(value, field, label) {
		return
	}
	if value < 0 {
		c.invalid(field, label, "must not be negative")
	}
}

func (c *issueCollector) fraction(value float64, field, label string) {
	if !c.finite(value, field, label) {
		return
	}
	if value < 0 || value > 1 {
		c.invalid(field, label, "must be between 0% and 100%")
	}
}

func (c *issueCollector) atLeast(value, minimum float64, field, label string) {
	if !c.finite(value, field, label) {
		return
	}
	if value < minimum {
		c.invalid(field, label, fmt.Sprintf("must be at least %g", minimum))
	}
}

// ValidateScenario checks every field against its declared bound and returns
// all violations together (never fail-fast). Price-floor and tier-ordering
// checks need engine output and live in the estimator instead.
func ValidateScenario(s *Scenario) []Issue {
	c := &issueCollector{}

	c.atLeast(float64(s.Deal.Seats), 1, "deal.seats", "Seats")
	c.atLeast(float64(s.Deal.TermMonths), 1, "deal.term_months", "Contract term (months)")
	c.nonNegative(s.Deal.SetupFee, "deal.setup_fee", "Setup fee")
	c.atLeast(s.Deal.FXRate, 1, "deal.fx_rate", "FX rate")
	c.fraction(s.Deal.EarlyCustomerDiscount, "deal.early_customer_discount", "Early customer discount")

	validateTierUsage(c, "vanilla", s.Vanilla)
	validateTierUsage(c, "premium", s.Premium)
	validateRateCard(c, s.Rates)

	for i, rate := range s.Discounts.VolumeRates {
		field := fmt.Sprintf("discounts.volume_rates[%d]", i)
		c.fraction(rate, field, fmt.Sprintf("Volume discount tier %d", i+1))
	}
	for i, rate := range s.Discounts.TermRates {
		field := fmt.Sprintf("discounts.term_rates[%d]", i)
		c.fraction(rate, field, fmt.Sprintf("Term discount tier %d", i+1))
	}
	for i, rate := range s.RevenueShare.YearRates {
		field := fmt.Sprintf("revenue_share.year_rates[%d]", i)
		c.fraction(rate, field, fmt.Sprintf("Partner share year %d", i+1))
	}

	return c.issues
}

func validateTierUsage(c *issueCollector, prefix string, u TierUsage) {
	label := func(name string) string { return fmt.Sprintf("%s: %s", prefix, name) }
	field := func(name string) string { return prefix + "." + name }

	c.nonNegative(u.VideosPerMonth, field("videos_per_month"), label("Videos per month"))
	c.nonNegative(u.AvgVideoLengthHours, field("avg_video_length_hours"), label("Average video length (hours)"))
	c.fraction(u.HDFraction, field("hd_fraction"), label("HD fraction"))
	c.nonNegative(u.StreamingHoursPerSeat, field("streaming_hours_per_seat"), label("Streaming hours per seat"))
	c.nonNegative(u.TutorQueriesPerSeat, field("tutor_queries_per_seat"), label("Tutor queries per seat"))
	c.nonNegative(u.QuizQuestionsPerHour, field("quiz_questions_per_hour"), label("Quiz questions per hour"))
	c.nonNegative(u.LaunchVideoHoursSD, field("launch_video_hours_sd"), label("Launch catalog SD hours"))
	c.nonNegative(u.LaunchVideoHoursHD, field("launch_video_hours_hd"), label("Launch catalog HD hours"))
	c.nonNegative(u.BasePricePerSeatMonth, field("base_price_per_seat_month"), label("Base price per seat per month"))
	c.nonNegative(u.MinMarkupPct, field("min_markup_pct"), label("Minimum cost markup"))
}

func validateRateCard(c *issueCollector, r RateCard) {
	c.atLeast(r.HDCostMultiplier, 1, "rates.hd_cost_multiplier", "HD cost multiplier")
	c.atLeast(r.CostSafetyMultiplier, 1, "rates.cost_safety_multiplier", "Cost safety multiplier")

	nonNegative := []struct {
		value float64
		field string
		label string
	}{
		{r.GBPerVideoHour, "rates.gb_per_video_hour", "GB per video hour"},
		{r.BatchHoursPerVideoHour, "rates.batch_hours_per_video_hour", "Batch hours per video hour"},
		{r.EmbeddingTokensPerVideoHour, "rates.embedding_tokens_per_video_hour", "Embedding tokens per video hour"},
		{r.PipelineTokensIn, "rates.pipeline_tokens_in", "Pipeline input tokens"},
		{r.PipelineTokensOut, "rates.pipeline_tokens_out", "Pipeline output tokens"},
		{r.TutorTokensIn, "rates.tutor_tokens_in", "Tutor input tokens"},
		{r.TutorTokensOut, "rates.tutor_tokens_out", "Tutor output tokens"},
		{r.QuizTokensIn, "rates.quiz_tokens_in", "Quiz input tokens"},
		{r.QuizTokensOut, "rates.quiz_tokens_out", "Quiz output tokens"},
		{r.CostPerTranscriptionHour, "rates.cost_per_transcription_hour", "Transcription cost per hour"},
		{r.CostPerGBStorage, "rates.cost_per_gb_storage", "Storage cost per GB"},
		{r.CostPerGBTransfer, "rates.cost_per_gb_transfer", "Data transfer cost per GB"},
		{r.CostPerBatchHour, "rates.cost_per_batch_hour", "Batch cost per hour"},
		{r.CostPerMillionTokensIn, "rates.cost_per_million_tokens_in", "LLM input cost per 1M tokens"},
		{r.CostPerMillionTokensOut, "rates.cost_per_million_tokens_out", "LLM output cost per 1M tokens"},
		{r.CostPerMillionEmbeddingTokens, "rates.cost_per_million_embedding_tokens", "Embedding cost per 1M tokens"},
	}
	for _, check := range nonNegative {
		c.nonNegative(check.value, check.field, check.label)
	}
}
