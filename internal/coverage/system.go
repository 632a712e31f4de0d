package coverage

import (
	"fmt"
	"strings"
)

// Layer describes one coat layer of a coating system.
type Layer struct {
	Product            string  `json:"product,omitempty"`
	VolumeSolids       float64 `json:"volume_solids"`
	TargetDFT          float64 `json:"target_dft"`
	Coats              int     `json:"coats"`
	PricePerGallon     float64 `json:"price_per_gallon"`
	TransferEfficiency float64 `json:"transfer_efficiency"` // overrides the system value when set
}

// SystemSpec describes a full coating system of up to three layers
// applied to one surface. Layers are evaluated in the fixed order
// primer, intermediate, topcoat; absent layers are skipped.
type SystemSpec struct {
	SurfaceArea        float64 `json:"surface_area"`
	TransferEfficiency float64 `json:"transfer_efficiency"`
	Primer             *Layer  `json:"primer,omitempty"`
	Intermediate       *Layer  `json:"intermediate,omitempty"`
	Topcoat            *Layer  `json:"topcoat,omitempty"`
}

// LayerResult is the coverage outcome for one included layer.
type LayerResult struct {
	Name     string  `json:"name"`
	Product  string  `json:"product,omitempty"`
	Coverage Result  `json:"coverage"`
	TotalDFT float64 `json:"total_dft"` // mils, thickness × coats
	Cost     float64 `json:"cost"`
}

// SystemResult aggregates the per-layer results of a coating system.
type SystemResult struct {
	Layers            []LayerResult `json:"layers"`
	TotalDFT          float64       `json:"total_dft"`
	TotalGallons      float64       `json:"total_gallons"`
	TotalCost         float64       `json:"total_cost"`
	CostPerSquareFoot float64       `json:"cost_per_square_foot"`
	Description       string        `json:"description"`
}

// MultiCoatSystem computes coverage for each included layer of a
// coating system and rolls the layers up into system totals. A failing
// layer aborts the whole calculation; partial results are never
// returned.
func (e *Engine) MultiCoatSystem(spec SystemSpec) (SystemResult, error) {
	type namedLayer struct {
		name  string
		layer *Layer
	}
	ordered := []namedLayer{
		{"Primer", spec.Primer},
		{"Intermediate", spec.Intermediate},
		{"Topcoat", spec.Topcoat},
	}

	result := SystemResult{Layers: make([]LayerResult, 0, len(ordered))}
	parts := make([]string, 0, len(ordered))

	for _, nl := range ordered {
		if nl.layer == nil || nl.layer.Coats <= 0 {
			continue
		}

		efficiency := nl.layer.TransferEfficiency
		if efficiency == 0 {
			efficiency = spec.TransferEfficiency
		}

		cov, err := e.Calculate(Spec{
			SurfaceArea:        spec.SurfaceArea,
			Coats:              nl.layer.Coats,
			VolumeSolids:       nl.layer.VolumeSolids,
			TargetDFT:          nl.layer.TargetDFT,
			TransferEfficiency: efficiency,
			PricePerGallon:     nl.layer.PricePerGallon,
		})
		if err != nil {
			return SystemResult{}, fmt.Errorf("%s layer: %w", strings.ToLower(nl.name), err)
		}

		totalDFT := nl.layer.TargetDFT * float64(nl.layer.Coats)
		cost := round2(cov.TotalGallons * nl.layer.PricePerGallon)

		result.Layers = append(result.Layers, LayerResult{
			Name:     nl.name,
			Product:  nl.layer.Product,
			Coverage: cov,
			TotalDFT: round1(totalDFT),
			Cost:     cost,
		})
		parts = append(parts, fmt.Sprintf("%s: %.1f mils", nl.name, totalDFT))

		result.TotalDFT += totalDFT
		result.TotalGallons += cov.TotalGallons
		result.TotalCost += cost
	}

	result.TotalDFT = round1(result.TotalDFT)
	result.TotalGallons = round1(result.TotalGallons)
	result.TotalCost = round2(result.TotalCost)
	result.CostPerSquareFoot = round2(result.TotalCost / spec.SurfaceArea)
	result.Description = strings.Join(parts, " + ")

	return result, nil
}
