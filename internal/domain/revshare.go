package domain

// maxSharedYears bounds the revenue-share policy: rates beyond year 5 are 0,
// leaving all revenue with the vendor.
const maxSharedYears = 5

// RevenueSharePolicy configures the partner's share of recurring revenue for
// contract years 1 through 5.
type RevenueSharePolicy struct {
	YearRates [maxSharedYears]float64 `json:"year_rates"`
}

// RateForYear returns the partner share for a 1-based contract year.
func (p RevenueSharePolicy) RateForYear(year int) float64 {
	if year < 1 || year > maxSharedYears {
		return 0
	}
	return p.YearRates[year-1]
}

// EffectiveRate returns the time-weighted blended partner rate across the
// whole term. The min-price solver validates margin against this rate.
func (p RevenueSharePolicy) EffectiveRate(termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	rate := 0.0
	remaining := termMonths
	for year := 1; remaining > 0 && year <= maxSharedYears; year++ {
		months := remaining
		if months > 12 {
			months = 12
		}
		rate += p.RateForYear(year) * float64(months) / float64(termMonths)
		remaining -= months
	}
	return rate
}

// YearShare is one year of the revenue-share schedule.
type YearShare struct {
	Year          int     `json:"year"`
	Months        int     `json:"months"`
	Revenue       float64 `json:"revenue"`
	ShareRate     float64 `json:"share_rate"`
	PartnerAmount float64 `json:"partner_amount"`
	VendorAmount  float64 `json:"vendor_amount"`
}

// BuildRevenueShareSchedule splits recurring revenue between vendor and
// partner, walking the term in 12-month blocks from month 1. A term shorter
// than 12 months yields a single year covering exactly those months. The
// setup fee is outside the shared pool and never appears here.
//
// For every entry, PartnerAmount+VendorAmount equals Revenue exactly: the
// vendor side is computed as the remainder, not re-derived from the rate.
func BuildRevenueShareSchedule(netPricePerSeatMonth float64, seats, termMonths int, policy RevenueSharePolicy) []YearShare {
	var schedule []YearShare
	remaining := termMonths
	for year := 1; remaining > 0; year++ {
		months := remaining
		if months > 12 {
			months = 12
		}
		revenue := netPricePerSeatMonth * float64(seats) * float64(months)
		rate := policy.RateForYear(year)
		partner := revenue * rate
		schedule = append(schedule, YearShare{
			Year:          year,
			Months:        months,
			Revenue:       revenue,
			ShareRate:     rate,
			PartnerAmount: partner,
			VendorAmount:  revenue - partner,
		})
		remaining -= months
	}
	return schedule
}
