// Package costing rolls coating-system material costs and labor
// estimates up into a project price, and evaluates coating investments
// with payback and NPV figures.
package costing

import (
	"fmt"
	"math"

	"github.com/Simplici0/coat.works/internal/coverage"
	"github.com/Simplici0/coat.works/internal/reference"
)

// Engine computes project estimates. Material quantities come from the
// coverage engine; labor hours come from the production-rate table.
type Engine struct {
	ref      reference.Data
	coverage *coverage.Engine
}

// NewEngine returns an Engine bound to the given reference table.
func NewEngine(ref reference.Data) *Engine {
	return &Engine{ref: ref, coverage: coverage.NewEngine(ref)}
}

// Surface is one named paintable surface of a project.
type Surface struct {
	Name        string                `json:"name"`
	Area        float64               `json:"area"` // sq ft
	SurfaceType reference.SurfaceType `json:"surface_type"`
	Condition   reference.Condition   `json:"condition"`
	System      coverage.SystemSpec   `json:"system"`
}

// ProjectSpec describes a full painting project.
type ProjectSpec struct {
	Surfaces        []Surface `json:"surfaces"`
	LaborRate       float64   `json:"labor_rate"` // $/hour per worker
	CrewSize        int       `json:"crew_size"`  // defaults to 1
	OverheadPercent float64   `json:"overhead_percent"`
	ProfitPercent   float64   `json:"profit_percent"`
}

// SurfaceEstimate is the per-surface breakdown of a project estimate.
type SurfaceEstimate struct {
	Name           string                `json:"name"`
	Area           float64               `json:"area"`
	ProductionRate float64               `json:"production_rate"` // sq ft per labor hour
	LaborHours     float64               `json:"labor_hours"`
	LaborCost      float64               `json:"labor_cost"`
	MaterialCost   float64               `json:"material_cost"`
	System         coverage.SystemResult `json:"system"`
}

// ProjectResult is the project-level roll-up.
type ProjectResult struct {
	Surfaces          []SurfaceEstimate `json:"surfaces"`
	TotalArea         float64           `json:"total_area"`
	TotalLaborHours   float64           `json:"total_labor_hours"`
	TotalLaborCost    float64           `json:"total_labor_cost"`
	TotalMaterialCost float64           `json:"total_material_cost"`
	Subtotal          float64           `json:"subtotal"`
	Overhead          float64           `json:"overhead"`
	Profit            float64           `json:"profit"`
	Total             float64           `json:"total"`
	CostPerSquareFoot float64           `json:"cost_per_square_foot"`
	EstimatedDays     float64           `json:"estimated_days"`
}

// ProjectEstimate prices every surface of a project and rolls labor,
// material, overhead, and profit up into one total. A failing surface
// aborts the whole estimate.
func (e *Engine) ProjectEstimate(spec ProjectSpec) (ProjectResult, error) {
	crew := spec.CrewSize
	if crew == 0 {
		crew = 1
	}

	result := ProjectResult{Surfaces: make([]SurfaceEstimate, 0, len(spec.Surfaces))}
	var laborHours, laborCost, materialCost float64

	for _, s := range spec.Surfaces {
		system := s.System
		system.SurfaceArea = s.Area

		systemResult, err := e.coverage.MultiCoatSystem(system)
		if err != nil {
			return ProjectResult{}, fmt.Errorf("surface %q: %w", s.Name, err)
		}

		rate := e.ref.ProductionRate(s.SurfaceType, s.Condition)
		hours := s.Area / rate
		cost := hours * spec.LaborRate

		result.Surfaces = append(result.Surfaces, SurfaceEstimate{
			Name:           s.Name,
			Area:           s.Area,
			ProductionRate: rate,
			LaborHours:     round1(hours),
			LaborCost:      round2(cost),
			MaterialCost:   systemResult.TotalCost,
			System:         systemResult,
		})

		result.TotalArea += s.Area
		laborHours += hours
		laborCost += cost
		materialCost += systemResult.TotalCost
	}

	subtotal := laborCost + materialCost
	overhead := subtotal * spec.OverheadPercent / 100
	profit := (subtotal + overhead) * spec.ProfitPercent / 100
	total := subtotal + overhead + profit

	result.TotalLaborHours = round1(laborHours)
	result.TotalLaborCost = round2(laborCost)
	result.TotalMaterialCost = round2(materialCost)
	result.Subtotal = round2(subtotal)
	result.Overhead = round2(overhead)
	result.Profit = round2(profit)
	result.Total = round2(total)
	result.CostPerSquareFoot = round2(total / result.TotalArea)
	result.EstimatedDays = round1(laborHours / (float64(crew) * e.ref.WorkdayHours))

	return result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
