package environmental

import (
	"math"

	"github.com/Simplici0/coat.works/internal/reference"
)

// VOCSpec describes the solvent content and quantity of coating to be
// applied. Category is carried through for reporting; the compliance
// check always uses the reference table's compliance category limit.
type VOCSpec struct {
	VOCContent      float64               `json:"voc_content"` // g/L
	Gallons         float64               `json:"gallons"`
	Category        reference.VOCCategory `json:"category,omitempty"`
	AirExchangeRate float64               `json:"air_exchange_rate"` // air changes per hour
}

// VOCResult reports total emissions, regulatory compliance, and an
// estimated clear time for enclosed spaces. A zero air-exchange rate
// yields an infinite clear time; no validation is applied.
type VOCResult struct {
	Category        reference.VOCCategory `json:"category,omitempty"`
	TotalVOCGrams   float64               `json:"total_voc_grams"`
	TotalVOCPounds  float64               `json:"total_voc_pounds"`
	Limit           float64               `json:"limit"` // g/L
	IsCompliant     bool                  `json:"is_compliant"`
	ExcessOverLimit float64               `json:"excess_over_limit"` // g/L, 0 when compliant
	ClearTimeHours  float64               `json:"clear_time_hours"`
}

// VOCEmissions computes total VOC released by the given quantity of
// coating and checks the content against the regulatory limit.
func (e *Engine) VOCEmissions(spec VOCSpec) VOCResult {
	grams := spec.VOCContent * spec.Gallons * e.ref.LitersPerGallon
	pounds := grams / e.ref.GramsPerPound

	limit := e.ref.VOCLimits[e.ref.ComplianceCategory]
	compliant := spec.VOCContent <= limit
	excess := 0.0
	if !compliant {
		excess = spec.VOCContent - limit
	}

	clearTime := e.ref.VOCClearAirChanges / spec.AirExchangeRate

	return VOCResult{
		Category:        spec.Category,
		TotalVOCGrams:   round1(grams),
		TotalVOCPounds:  round2(pounds),
		Limit:           limit,
		IsCompliant:     compliant,
		ExcessOverLimit: round1(excess),
		ClearTimeHours:  round1(clearTime),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
