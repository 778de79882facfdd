package domain

// DiscountPolicy holds the tiered discount tables. Each rate is a fraction
// of list price in [0, 1]. Tables are expected to be monotonically
// non-decreasing; the engine applies them as given.
type DiscountPolicy struct {
	// VolumeRates maps to the seat thresholds 0/250/500/1,000/5,000/
	// 10,000/50,000, in that order.
	VolumeRates [7]float64 `json:"volume_rates"`

	// TermRates maps to the term thresholds 1/3/6/12 months, in that order.
	TermRates [4]float64 `json:"term_rates"`
}

var volumeSeatThresholds = [7]int{0, 250, 500, 1000, 5000, 10000, 50000}

var termMonthThresholds = [4]int{1, 3, 6, 12}

// VolumeDiscount resolves the step-function volume discount for a seat count.
func (p DiscountPolicy) VolumeDiscount(seats int) float64 {
	rate := p.VolumeRates[0]
	for i, threshold := range volumeSeatThresholds {
		if seats >= threshold {
			rate = p.VolumeRates[i]
		}
	}
	return rate
}

// TermDiscount resolves the step-function term discount for a contract length.
func (p DiscountPolicy) TermDiscount(termMonths int) float64 {
	rate := p.TermRates[0]
	for i, threshold := range termMonthThresholds {
		if termMonths >= threshold {
			rate = p.TermRates[i]
		}
	}
	return rate
}

// CombinedDiscountFactor combines the three discount rates additively and
// returns the fraction of list price actually charged, floored at zero so
// stacked discounts can never flip the price negative.
//
// The additive sum-then-clamp policy is authoritative; an earlier
// multiplicative compounding of the three rates is superseded.
func CombinedDiscountFactor(volume, term, early float64) float64 {
	factor := 1 - (volume + term + early)
	if factor < 0 {
		return 0
	}
	return factor
}
