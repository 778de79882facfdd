package domain

// PricingResult is the pricing engine's output for one tier. All monetary
// values are totals in the primary currency unless named per seat per month.
type PricingResult struct {
	ListPricePerSeatMonth float64 `json:"list_price_per_seat_month"`
	NetPricePerSeatMonth  float64 `json:"net_price_per_seat_month"`

	VolumeDiscount         float64 `json:"volume_discount"`
	TermDiscount           float64 `json:"term_discount"`
	EarlyDiscount          float64 `json:"early_discount"`
	CombinedDiscountFactor float64 `json:"combined_discount_factor"`
	TotalDiscountPct       float64 `json:"total_discount_pct"`

	// AnnualContractValue is net price × seats × 12 regardless of term.
	AnnualContractValue float64 `json:"annual_contract_value"`

	// TotalContractValue is recurring revenue over the term plus the
	// one-time setup fee.
	TotalContractValue float64 `json:"total_contract_value"`

	SetupFee float64 `json:"setup_fee"`

	// Revenue is recurring revenue over the term, excluding the setup fee.
	Revenue float64 `json:"revenue"`

	PartnerAmount float64 `json:"partner_amount"`
	VendorGross   float64 `json:"vendor_gross"`

	// VendorNet is vendor gross plus the setup fee minus total operating
	// cost. The setup fee is attributed entirely to the vendor in year 1.
	VendorNet float64 `json:"vendor_net"`

	// MarginPct is vendor net as a percentage of total operating cost:
	// a markup-on-cost metric, not margin on revenue.
	MarginPct float64 `json:"margin_pct"`

	CostPerSeatMonth float64 `json:"cost_per_seat_month"`

	Schedule []YearShare `json:"schedule"`
}

// ComputePricing resolves discounts, builds the revenue-share schedule and
// derives the realized markup-on-cost margin for one tier, using that tier's
// cost engine output. Pure; it never fails, degenerate inputs simply yield
// zero-valued results for the validator to flag.
func ComputePricing(deal DealTerms, usage TierUsage, discounts DiscountPolicy, share RevenueSharePolicy, costs *CostBreakdown) *PricingResult {
	seatMonths := float64(deal.Seats) * float64(deal.TermMonths)

	costPerSeatMonth := 0.0
	if seatMonths > 0 {
		costPerSeatMonth = costs.Total / seatMonths
	}

	volume := discounts.VolumeDiscount(deal.Seats)
	term := discounts.TermDiscount(deal.TermMonths)
	early := deal.EarlyCustomerDiscount
	factor := CombinedDiscountFactor(volume, term, early)

	list := usage.BasePricePerSeatMonth
	net := list * factor

	revenue := net * seatMonths
	schedule := BuildRevenueShareSchedule(net, deal.Seats, deal.TermMonths, share)
	partner := 0.0
	for _, year := range schedule {
		partner += year.PartnerAmount
	}

	vendorGross := revenue - partner
	vendorNet := vendorGross + deal.SetupFee - costs.Total

	marginPct := 0.0
	if costs.Total > 0 {
		marginPct = vendorNet / costs.Total * 100
	}

	return &PricingResult{
		ListPricePerSeatMonth:  list,
		NetPricePerSeatMonth:   net,
		VolumeDiscount:         volume,
		TermDiscount:           term,
		EarlyDiscount:          early,
		CombinedDiscountFactor: factor,
		TotalDiscountPct:       1 - factor,
		AnnualContractValue:    net * float64(deal.Seats) * 12,
		TotalContractValue:     revenue + deal.SetupFee,
		SetupFee:               deal.SetupFee,
		Revenue:                revenue,
		PartnerAmount:          partner,
		VendorGross:            vendorGross,
		VendorNet:              vendorNet,
		MarginPct:              marginPct,
		CostPerSeatMonth:       costPerSeatMonth,
		Schedule:               schedule,
	}
}
