// Package coverage computes paint material requirements from surface
// area, volume solids, dry film thickness, and transfer efficiency.
package coverage

import (
	"errors"
	"fmt"
	"math"

	"github.com/Simplici0/coat.works/internal/reference"
)

// ErrInvalidInput reports a rejected calculation input. Callers match
// it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Spec describes one coverage calculation.
type Spec struct {
	SurfaceArea        float64 `json:"surface_area"`        // sq ft
	Coats              int     `json:"coats"`               // defaults to 1
	VolumeSolids       float64 `json:"volume_solids"`       // percent, (0, 100]
	TargetDFT          float64 `json:"target_dft"`          // mils
	TransferEfficiency float64 `json:"transfer_efficiency"` // percent, defaults from reference
	PricePerGallon     float64 `json:"price_per_gallon"`    // optional
}

// Result contains the material quantities for one coverage
// calculation. Quantities that represent material needed are rounded
// up to one decimal so estimates never come in short; cost rounds to
// the nearest cent.
type Result struct {
	TheoreticalCoverage float64 `json:"theoretical_coverage"` // sq ft/gal at 100% transfer
	PracticalCoverage   float64 `json:"practical_coverage"`   // sq ft/gal after transfer loss
	CoveragePerGallon   float64 `json:"coverage_per_gallon"`  // practical, whole sq ft for display
	GallonsPerCoat      float64 `json:"gallons_per_coat"`
	TotalGallons        float64 `json:"total_gallons"`
	WasteGallons        float64 `json:"waste_gallons"`
	TotalWithWaste      float64 `json:"total_with_waste"`
	FiveGallonPails     int     `json:"five_gallon_pails"`
	OneGallonCans       int     `json:"one_gallon_cans"`
	EstimatedCost       float64 `json:"estimated_cost"`
}

// Engine performs coverage calculations against one reference table.
type Engine struct {
	ref reference.Data
}

// NewEngine returns an Engine bound to the given reference table.
func NewEngine(ref reference.Data) *Engine {
	return &Engine{ref: ref}
}

// Calculate computes the material required for one product applied to
// one surface.
func (e *Engine) Calculate(spec Spec) (Result, error) {
	if spec.SurfaceArea <= 0 {
		return Result{}, fmt.Errorf("%w: surface area must be greater than 0", ErrInvalidInput)
	}
	if spec.VolumeSolids <= 0 || spec.VolumeSolids > 100 {
		return Result{}, fmt.Errorf("%w: volume solids must be between 0 and 100", ErrInvalidInput)
	}
	if spec.TargetDFT <= 0 {
		return Result{}, fmt.Errorf("%w: target DFT must be greater than 0", ErrInvalidInput)
	}

	coats := spec.Coats
	if coats == 0 {
		coats = 1
	}
	efficiency := spec.TransferEfficiency
	if efficiency == 0 {
		efficiency = e.ref.DefaultTransferEfficiency
	}

	theoretical := (e.ref.CoverageConstant * spec.VolumeSolids / 100) / spec.TargetDFT
	practical := theoretical * (efficiency / 100)

	gallonsPerCoat := spec.SurfaceArea / practical
	totalGallons := gallonsPerCoat * float64(coats)
	wasteGallons := totalGallons * e.ref.WasteFactor
	totalWithWaste := totalGallons + wasteGallons

	result := Result{
		TheoreticalCoverage: round1(theoretical),
		PracticalCoverage:   round1(practical),
		CoveragePerGallon:   math.Round(practical),
		GallonsPerCoat:      ceil1(gallonsPerCoat),
		TotalGallons:        ceil1(totalGallons),
		WasteGallons:        ceil1(wasteGallons),
		TotalWithWaste:      ceil1(totalWithWaste),
		FiveGallonPails:     int(math.Ceil(totalWithWaste / e.ref.LargeContainerGallons)),
		OneGallonCans:       int(math.Ceil(totalWithWaste / e.ref.SmallContainerGallons)),
	}
	if spec.PricePerGallon > 0 {
		result.EstimatedCost = round2(totalWithWaste * spec.PricePerGallon)
	}

	return result, nil
}

// round1 rounds to the nearest tenth, for rates and temperatures.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ceil1 rounds up to the next tenth, for material quantities.
func ceil1(v float64) float64 {
	return math.Ceil(v*10) / 10
}

// round2 rounds to the nearest cent, for currency.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
