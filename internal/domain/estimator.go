package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaidy-in/dealdesk/internal/observability"
)

// priceFloorTolerance absorbs float rounding when comparing a base price to
// its computed floor, so a price set to exactly the floor always passes.
const priceFloorTolerance = 1e-9

// TierEstimate is the full engine output for one tier.
type TierEstimate struct {
	Tier Tier `json:"tier"`

	Costs       *CostBreakdown `json:"costs"`
	LaunchCosts *CostBreakdown `json:"launch_costs"`
	Pricing     *PricingResult `json:"pricing"`

	// MinBasePricePerSeatMonth is the margin-compliant list price floor,
	// or 0 when the margin constraint is unsatisfiable.
	MinBasePricePerSeatMonth float64 `json:"min_base_price_per_seat_month"`
}

// Estimate is one complete run over a scenario: both tiers plus every
// validation issue found. Costs and derivation detail are always populated,
// even when pricing validation fails, so the caller can keep showing the
// breakdown while inputs are corrected.
type Estimate struct {
	Vanilla    TierEstimate `json:"vanilla"`
	Premium    TierEstimate `json:"premium"`
	Issues     []Issue      `json:"issues"`
	ComputedAt time.Time    `json:"computed_at"`
}

// EstimatorService runs the cost and pricing engines over a scenario.
type EstimatorService struct {
	events EventPublisher
}

// NewEstimatorService creates a new estimator service (DI constructor).
// A nil publisher disables event emission.
func NewEstimatorService(events EventPublisher) *EstimatorService {
	return &EstimatorService{
		events: events,
	}
}

// Estimate evaluates both tiers over the scenario. It is deterministic and
// side-effect-free per input: identical scenarios yield identical tier
// results. Validation findings are collected into Issues, never raised as
// errors; the only error case is a nil scenario.
func (s *EstimatorService) Estimate(ctx context.Context, scenario *Scenario) (*Estimate, error) {
	if scenario == nil {
		return nil, errors.New("scenario cannot be nil")
	}

	logger := observability.FromContext(ctx)

	issues := ValidateScenario(scenario)

	vanilla := s.estimateTier(ctx, scenario, TierVanilla, &issues)
	premium := s.estimateTier(ctx, scenario, TierPremium, &issues)

	// Ordering invariant across tiers: Premium must cost strictly more than
	// Vanilla at list, independent of either tier's cost floor.
	if premium.Pricing.ListPricePerSeatMonth <= vanilla.Pricing.ListPricePerSeatMonth {
		issues = append(issues, Issue{
			Code: IssuePriceOrdering,
			Tier: TierPremium,
			Message: fmt.Sprintf(
				"premium base price %.2f must exceed vanilla base price %.2f",
				premium.Pricing.ListPricePerSeatMonth, vanilla.Pricing.ListPricePerSeatMonth),
		})
	}

	estimate := &Estimate{
		Vanilla:    vanilla,
		Premium:    premium,
		Issues:     issues,
		ComputedAt: time.Now().UTC(),
	}

	logger.Info("estimate computed",
		observability.Float64("vanilla_total_cost", vanilla.Costs.Total),
		observability.Float64("premium_total_cost", premium.Costs.Total),
		observability.Int("issues", len(issues)),
	)

	if s.events != nil {
		s.events.Publish(ctx, "estimate_computed", map[string]interface{}{
			"seats":       scenario.Deal.Seats,
			"term_months": scenario.Deal.TermMonths,
			"issues":      len(issues),
		})
	}

	return estimate, nil
}

func (s *EstimatorService) estimateTier(ctx context.Context, scenario *Scenario, tier Tier, issues *[]Issue) TierEstimate {
	ctx = observability.WithTier(ctx, string(tier))
	logger := observability.FromContext(ctx)

	usage := scenario.UsageForTier(tier)
	costs := ComputeCosts(scenario.Deal, usage, scenario.Rates)
	launch := ComputeLaunchCosts(scenario.Deal, usage, scenario.Rates)
	pricing := ComputePricing(scenario.Deal, usage, scenario.Discounts, scenario.RevenueShare, costs)

	effectiveRate := scenario.RevenueShare.EffectiveRate(scenario.Deal.TermMonths)
	floor, err := MinBasePrice(
		costs.Total,
		scenario.Deal.SetupFee,
		usage.MinMarkupPct,
		effectiveRate,
		scenario.Deal.Seats,
		scenario.Deal.TermMonths,
		pricing.CombinedDiscountFactor,
	)
	switch {
	case errors.Is(err, ErrUnsatisfiableMargin):
		*issues = append(*issues, Issue{
			Code: IssueUnsatisfiableMargin,
			Tier: tier,
			Message: fmt.Sprintf(
				"effective partner share of %.1f%% makes the %.0f%% markup target unsatisfiable at any price",
				effectiveRate*100, usage.MinMarkupPct*100),
		})
	case usage.BasePricePerSeatMonth+priceFloorTolerance < floor:
		*issues = append(*issues, Issue{
			Code:  IssueBelowMinimumPrice,
			Tier:  tier,
			Field: string(tier) + ".base_price_per_seat_month",
			Message: fmt.Sprintf(
				"base price %.2f is below the margin-compliant floor %.2f",
				usage.BasePricePerSeatMonth, floor),
			MinBasePrice: floor,
		})
	}

	logger.Debug("tier estimated",
		observability.Float64("total_cost", costs.Total),
		observability.Float64("min_base_price", floor),
		observability.Float64("margin_pct", pricing.MarginPct),
	)

	return TierEstimate{
		Tier:                     tier,
		Costs:                    costs,
		LaunchCosts:              launch,
		Pricing:                  pricing,
		MinBasePricePerSeatMonth: floor,
	}
}
