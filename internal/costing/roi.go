package costing

import "math"

// ROISpec describes a coating investment: what it costs up front, what
// it saves per year, and for how long.
type ROISpec struct {
	InitialCost         float64 `json:"initial_cost"`
	AnnualSavings       float64 `json:"annual_savings"`
	LifespanYears       int     `json:"lifespan_years"`
	DiscountRatePercent float64 `json:"discount_rate_percent"`
}

// ROIResult reports undiscounted and discounted returns. Degenerate
// inputs (zero savings, zero cost) propagate NaN and infinities rather
// than erroring.
type ROIResult struct {
	TotalSavings float64 `json:"total_savings"`
	NetReturn    float64 `json:"net_return"`
	ROIPercent   float64 `json:"roi_percent"`
	PaybackYears float64 `json:"payback_years"`
	NPV          float64 `json:"npv"`
	IsProfitable bool    `json:"is_profitable"` // NPV > 0
}

// ROI evaluates a coating investment with simple payback and a
// discounted cash flow over the coating's lifespan.
func (e *Engine) ROI(spec ROISpec) ROIResult {
	totalSavings := spec.AnnualSavings * float64(spec.LifespanYears)
	netReturn := totalSavings - spec.InitialCost
	roiPercent := netReturn / spec.InitialCost * 100
	paybackYears := spec.InitialCost / spec.AnnualSavings

	rate := spec.DiscountRatePercent / 100
	npv := -spec.InitialCost
	for year := 1; year <= spec.LifespanYears; year++ {
		npv += spec.AnnualSavings / math.Pow(1+rate, float64(year))
	}

	return ROIResult{
		TotalSavings: round2(totalSavings),
		NetReturn:    round2(netReturn),
		ROIPercent:   round1(roiPercent),
		PaybackYears: round1(paybackYears),
		NPV:          round2(npv),
		IsProfitable: npv > 0,
	}
}
