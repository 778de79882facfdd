package domain

import "errors"

// ErrUnsatisfiableMargin indicates the effective partner share leaves the
// vendor too little revenue for any finite price to satisfy the margin
// constraint. This is a configuration error, not a per-field correction.
var ErrUnsatisfiableMargin = errors.New("effective partner rate leaves no satisfiable margin at any price")

// maxPartnerRate is the highest effective partner share for which a finite
// margin-compliant price exists.
const maxPartnerRate = 0.999

// MinBasePrice back-solves the minimum list price per seat per month that
// satisfies vendorNet >= costTotal × (1 + minMarkupPct).
//
// With revenue = listPrice × seats × term × discountFactor and
// vendorNet = revenue × (1 − effectivePartnerRate) + setupFee − costTotal,
// the minimum gross revenue is
//
//	max(0, costTotal × (1+minMarkupPct) − setupFee) / (1 − effectivePartnerRate)
//
// divided by the discount-adjusted seat-months to yield the list price.
//
// An effective partner rate at or above 99.9% returns ErrUnsatisfiableMargin
// rather than a huge or infinite price. Zero seats, term, or discount factor
// make the price undefined; the solver returns 0 and leaves flagging those
// inputs to field validation.
func MinBasePrice(costTotal, setupFee, minMarkupPct, effectivePartnerRate float64, seats, termMonths int, discountFactor float64) (float64, error) {
	if effectivePartnerRate >= maxPartnerRate {
		return 0, ErrUnsatisfiableMargin
	}

	minRevenue := costTotal*(1+minMarkupPct) - setupFee
	if minRevenue < 0 {
		minRevenue = 0
	}
	minRevenue /= 1 - effectivePartnerRate

	denom := float64(seats) * float64(termMonths) * discountFactor
	if denom <= 0 {
		return 0, nil
	}
	return minRevenue / denom, nil
}
