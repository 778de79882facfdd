package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVolumeDiscount(t *testing.T) {
	policy := DefaultScenario().Discounts

	tests := []struct {
		seats int
		want  float64
	}{
		{seats: 1, want: 0},
		{seats: 249, want: 0},
		{seats: 250, want: 0.05},
		{seats: 499, want: 0.05},
		{seats: 500, want: 0.10},
		{seats: 999, want: 0.10},
		{seats: 1000, want: 0.15},
		{seats: 4999, want: 0.15},
		{seats: 5000, want: 0.18},
		{seats: 10000, want: 0.20},
		{seats: 49999, want: 0.20},
		{seats: 50000, want: 0.22},
		{seats: 250000, want: 0.22},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, policy.VolumeDiscount(tt.seats), 1e-9,
			"seats=%d", tt.seats)
	}
}

func TestTermDiscount(t *testing.T) {
	policy := DefaultScenario().Discounts

	tests := []struct {
		termMonths int
		want       float64
	}{
		{termMonths: 1, want: 0},
		{termMonths: 2, want: 0},
		{termMonths: 3, want: 0.02},
		{termMonths: 5, want: 0.02},
		{termMonths: 6, want: 0.05},
		{termMonths: 11, want: 0.05},
		{termMonths: 12, want: 0.10},
		{termMonths: 36, want: 0.10},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, policy.TermDiscount(tt.termMonths), 1e-9,
			"term=%d", tt.termMonths)
	}
}

func TestCombinedDiscountFactor(t *testing.T) {
	t.Run("additive stacking", func(t *testing.T) {
		require.InDelta(t, 0.8, CombinedDiscountFactor(0.10, 0.10, 0), 1e-9)
		require.InDelta(t, 0.75, CombinedDiscountFactor(0.10, 0.10, 0.05), 1e-9)
	})

	t.Run("no discounts", func(t *testing.T) {
		require.InDelta(t, 1, CombinedDiscountFactor(0, 0, 0), 1e-9)
	})

	t.Run("clamped at zero", func(t *testing.T) {
		require.Zero(t, CombinedDiscountFactor(0.5, 0.4, 0.3))
		require.Zero(t, CombinedDiscountFactor(1, 0, 0))
	})
}
