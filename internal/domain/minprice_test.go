package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinBasePrice(t *testing.T) {
	t.Run("solves the margin constraint", func(t *testing.T) {
		// minRevenue = (10000*1.6 - 500) / 0.75 = 20666.67 over
		// 100 seats * 12 months * 0.8 discount factor.
		floor, err := MinBasePrice(10000, 500, 0.6, 0.25, 100, 12, 0.8)
		require.NoError(t, err)
		require.InDelta(t, 15500.0/0.75/960.0, floor, 1e-9)
	})

	t.Run("setup fee can cover the whole margin", func(t *testing.T) {
		// Fee exceeds the required vendor take; revenue need is clamped
		// at zero rather than going negative.
		floor, err := MinBasePrice(1000, 5000, 0.6, 0.25, 100, 12, 0.8)
		require.NoError(t, err)
		require.Zero(t, floor)
	})

	t.Run("unsatisfiable partner rate", func(t *testing.T) {
		_, err := MinBasePrice(10000, 0, 0.6, 0.999, 100, 12, 0.8)
		require.ErrorIs(t, err, ErrUnsatisfiableMargin)

		_, err = MinBasePrice(10000, 0, 0.6, 1.0, 100, 12, 0.8)
		require.ErrorIs(t, err, ErrUnsatisfiableMargin)
	})

	t.Run("degenerate denominators yield zero", func(t *testing.T) {
		tests := []struct {
			name           string
			seats          int
			termMonths     int
			discountFactor float64
		}{
			{name: "zero seats", seats: 0, termMonths: 12, discountFactor: 0.8},
			{name: "zero term", seats: 100, termMonths: 0, discountFactor: 0.8},
			{name: "fully discounted", seats: 100, termMonths: 12, discountFactor: 0},
			{name: "negative seats", seats: -5, termMonths: 12, discountFactor: 0.8},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				floor, err := MinBasePrice(10000, 0, 0.6, 0.25, tt.seats, tt.termMonths, tt.discountFactor)
				require.NoError(t, err)
				require.Zero(t, floor)
			})
		}
	})
}

// Pricing a tier at exactly its floor must realize exactly the target markup.
func TestMinBasePrice_RoundTripsThroughPricing(t *testing.T) {
	deal := DealTerms{Seats: 100, TermMonths: 12, SetupFee: 500}
	usage := TierUsage{Tier: TierVanilla, MinMarkupPct: 0.6}
	discounts := DiscountPolicy{
		VolumeRates: [7]float64{0, 0, 0, 0, 0, 0, 0},
		TermRates:   [4]float64{0, 0, 0, 0.20},
	}
	share := RevenueSharePolicy{YearRates: [maxSharedYears]float64{0.25}}
	costs := &CostBreakdown{Total: 10000}

	factor := CombinedDiscountFactor(
		discounts.VolumeDiscount(deal.Seats),
		discounts.TermDiscount(deal.TermMonths),
		deal.EarlyCustomerDiscount,
	)
	effectiveRate := share.EffectiveRate(deal.TermMonths)

	floor, err := MinBasePrice(costs.Total, deal.SetupFee, usage.MinMarkupPct,
		effectiveRate, deal.Seats, deal.TermMonths, factor)
	require.NoError(t, err)
	require.Positive(t, floor)

	usage.BasePricePerSeatMonth = floor
	pricing := ComputePricing(deal, usage, discounts, share, costs)

	// Vendor net at the floor is exactly the markup target.
	require.InDelta(t, costs.Total*usage.MinMarkupPct, pricing.VendorNet, 1e-6)
	require.InDelta(t, usage.MinMarkupPct*100, pricing.MarginPct, 1e-6)
}
