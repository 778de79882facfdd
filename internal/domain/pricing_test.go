package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputePricing_DefaultScenarioVanilla(t *testing.T) {
	scenario := DefaultScenario()
	costs := ComputeCosts(scenario.Deal, scenario.Vanilla, scenario.Rates)

	pricing := ComputePricing(scenario.Deal, scenario.Vanilla,
		scenario.Discounts, scenario.RevenueShare, costs)

	// 500 seats is the 10% volume band; 12 months is the 10% term band.
	require.InDelta(t, 0.10, pricing.VolumeDiscount, 1e-9)
	require.InDelta(t, 0.10, pricing.TermDiscount, 1e-9)
	require.Zero(t, pricing.EarlyDiscount)
	require.InDelta(t, 0.80, pricing.CombinedDiscountFactor, 1e-9)
	require.InDelta(t, 0.20, pricing.TotalDiscountPct, 1e-9)

	require.InDelta(t, 299, pricing.ListPricePerSeatMonth, 1e-9)
	require.InDelta(t, 239.2, pricing.NetPricePerSeatMonth, 1e-9)

	// 239.2 * 500 seats * 12 months.
	require.InDelta(t, 1435200, pricing.Revenue, 1e-6)
	require.InDelta(t, 1435200, pricing.AnnualContractValue, 1e-6)
	require.InDelta(t, 1435200, pricing.TotalContractValue, 1e-6)

	// Year 1 partner share at 30%.
	require.InDelta(t, 430560, pricing.PartnerAmount, 1e-6)
	require.InDelta(t, 1004640, pricing.VendorGross, 1e-6)

	require.InDelta(t, pricing.VendorGross-costs.Total, pricing.VendorNet, 1e-6)
	require.InDelta(t, pricing.VendorNet/costs.Total*100, pricing.MarginPct, 1e-6)
	require.InDelta(t, costs.Total/6000, pricing.CostPerSeatMonth, 1e-9)

	require.Len(t, pricing.Schedule, 1)
}

func TestComputePricing_MultiYearTerm(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Deal.TermMonths = 24

	costs := ComputeCosts(scenario.Deal, scenario.Vanilla, scenario.Rates)
	pricing := ComputePricing(scenario.Deal, scenario.Vanilla,
		scenario.Discounts, scenario.RevenueShare, costs)

	require.Len(t, pricing.Schedule, 2)

	// Partner total is the sum over the schedule.
	want := pricing.Schedule[0].PartnerAmount + pricing.Schedule[1].PartnerAmount
	require.InDelta(t, want, pricing.PartnerAmount, 1e-9)

	// ACV annualizes regardless of term; revenue covers the whole term.
	require.InDelta(t, pricing.NetPricePerSeatMonth*500*12, pricing.AnnualContractValue, 1e-6)
	require.InDelta(t, pricing.NetPricePerSeatMonth*500*24, pricing.Revenue, 1e-6)
}

func TestComputePricing_SetupFee(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Deal.SetupFee = 50000

	costs := ComputeCosts(scenario.Deal, scenario.Vanilla, scenario.Rates)
	pricing := ComputePricing(scenario.Deal, scenario.Vanilla,
		scenario.Discounts, scenario.RevenueShare, costs)

	// Setup fee joins TCV and the vendor's take but never the shared pool.
	require.InDelta(t, pricing.Revenue+50000, pricing.TotalContractValue, 1e-6)
	require.InDelta(t, pricing.VendorGross+50000-costs.Total, pricing.VendorNet, 1e-6)
	require.InDelta(t, pricing.Revenue*0.30, pricing.PartnerAmount, 1e-6)
}

func TestComputePricing_DegenerateInputs(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Deal.Seats = 0
	scenario.Deal.TermMonths = 0

	costs := &CostBreakdown{Amounts: map[CostCategory]float64{}, Total: 0}
	pricing := ComputePricing(scenario.Deal, scenario.Vanilla,
		scenario.Discounts, scenario.RevenueShare, costs)

	// Nothing to price: all derived figures collapse to zero, no NaN.
	require.Zero(t, pricing.Revenue)
	require.Zero(t, pricing.CostPerSeatMonth)
	require.Zero(t, pricing.MarginPct)
	require.Empty(t, pricing.Schedule)
}
