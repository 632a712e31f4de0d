// Package technical provides application-side helpers: wet film
// thickness, surface-area geometry, component mixing, solvent
// reduction, and blast-profile lookups.
package technical

import (
	"math"

	"github.com/Simplici0/coat.works/internal/reference"
)

// Engine performs technical calculations against one reference table.
type Engine struct {
	ref reference.Data
}

// NewEngine returns an Engine bound to the given reference table.
func NewEngine(ref reference.Data) *Engine {
	return &Engine{ref: ref}
}

// WetFilmSpec describes a wet-film-thickness derivation.
type WetFilmSpec struct {
	TargetDFT      float64 `json:"target_dft"`      // mils
	VolumeSolids   float64 `json:"volume_solids"`   // percent
	ThinnerPercent float64 `json:"thinner_percent"` // percent added thinner
}

// WetFilmResult reports the wet film to apply and which gauge reads
// it. Thicknesses are in mils, rounded to one decimal.
type WetFilmResult struct {
	WetFilmThickness float64 `json:"wet_film_thickness"`
	AdjustedSolids   float64 `json:"adjusted_solids"`
	Gauge            string  `json:"gauge"`
}

// WetFilmThickness derives the wet film required to cure down to the
// target DFT, after reducing the volume solids by the thinner
// percentage.
func (e *Engine) WetFilmThickness(spec WetFilmSpec) WetFilmResult {
	adjusted := spec.VolumeSolids * (1 - spec.ThinnerPercent/100)
	wft := spec.TargetDFT / adjusted * 100

	return WetFilmResult{
		WetFilmThickness: round1(wft),
		AdjustedSolids:   round1(adjusted),
		Gauge:            gaugeFor(wft),
	}
}

// gaugeFor selects a wet film gauge band for the given thickness.
func gaugeFor(wft float64) string {
	switch {
	case wft <= 25:
		return "standard gauge (1-25 mils)"
	case wft <= 50:
		return "mid-range gauge (25-50 mils)"
	case wft <= 100:
		return "high-range gauge (50-100 mils)"
	default:
		return "use multiple passes"
	}
}

// Shape identifies a surface-area geometry.
type Shape string

const (
	ShapeRectangular Shape = "rectangular"
	ShapeCylindrical Shape = "cylindrical"
	ShapeSpherical   Shape = "spherical"
	ShapeComplex     Shape = "complex"
)

// Opening is an area deducted from a surface, such as a door or
// window. A zero count deducts one opening.
type Opening struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Count  int     `json:"count"`
}

// SurfaceAreaSpec describes one surface to measure. Dimension fields
// are read per shape: rectangular uses length/width/height with the
// wall orientation covering all four walls, cylindrical uses
// diameter/height, spherical uses diameter, and complex carries a
// pre-measured total. Unmatched shapes fall back to the complex
// branch.
type SurfaceAreaSpec struct {
	Shape        Shape     `json:"shape"`
	Length       float64   `json:"length"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	Diameter     float64   `json:"diameter"`
	Floor        bool      `json:"floor"`         // rectangular: floor instead of walls
	IncludeEnds  bool      `json:"include_ends"`  // cylindrical: add both end caps
	MeasuredArea float64   `json:"measured_area"` // complex
	Openings     []Opening `json:"openings,omitempty"`
}

// SurfaceAreaResult reports the measured area before and after
// deductions plus the paintable area with the waste allowance applied.
type SurfaceAreaResult struct {
	GrossArea     float64 `json:"gross_area"`
	Deductions    float64 `json:"deductions"`
	NetArea       float64 `json:"net_area"`
	AreaWithWaste float64 `json:"area_with_waste"`
}

// SurfaceArea computes the paintable area of one surface: geometry,
// minus openings, plus the standard waste allowance.
func (e *Engine) SurfaceArea(spec SurfaceAreaSpec) SurfaceAreaResult {
	var gross float64
	switch spec.Shape {
	case ShapeRectangular:
		if spec.Floor {
			gross = spec.Length * spec.Width
		} else {
			gross = 2 * (spec.Length + spec.Width) * spec.Height
		}
	case ShapeCylindrical:
		gross = math.Pi * spec.Diameter * spec.Height
		if spec.IncludeEnds {
			radius := spec.Diameter / 2
			gross += 2 * math.Pi * radius * radius
		}
	case ShapeSpherical:
		gross = math.Pi * spec.Diameter * spec.Diameter
	default:
		gross = spec.MeasuredArea
	}

	var deductions float64
	for _, opening := range spec.Openings {
		count := opening.Count
		if count == 0 {
			count = 1
		}
		deductions += opening.Width * opening.Height * float64(count)
	}

	net := gross - deductions
	withWaste := net * (1 + e.ref.WasteFactor)

	return SurfaceAreaResult{
		GrossArea:     round1(gross),
		Deductions:    round1(deductions),
		NetArea:       round1(net),
		AreaWithWaste: round1(withWaste),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
