package costing

import (
	"errors"
	"math"
	"testing"

	"github.com/Simplici0/coat.works/internal/coverage"
	"github.com/Simplici0/coat.works/internal/reference"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func newTestEngine() *Engine {
	return NewEngine(reference.Default())
}

func TestProjectEstimate_SingleSurface(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.ProjectEstimate(ProjectSpec{
		Surfaces: []Surface{{
			Name:        "Tank shell",
			Area:        1500,
			SurfaceType: reference.SurfaceSteel,
			Condition:   reference.ConditionGood,
			System: coverage.SystemSpec{
				Primer:  &coverage.Layer{VolumeSolids: 60, TargetDFT: 3, Coats: 1, PricePerGallon: 50},
				Topcoat: &coverage.Layer{VolumeSolids: 65, TargetDFT: 5, Coats: 2, PricePerGallon: 45},
			},
		}},
		LaborRate:       55,
		CrewSize:        3,
		OverheadPercent: 15,
		ProfitPercent:   20,
	})
	if err != nil {
		t.Fatalf("ProjectEstimate returned error: %v", err)
	}

	if len(result.Surfaces) != 1 {
		t.Fatalf("expected 1 surface estimate, got %d", len(result.Surfaces))
	}
	surface := result.Surfaces[0]

	// steel/good has a table rate of 150 sq ft per hour.
	nearlyEqual(t, "productionRate", surface.ProductionRate, 150)
	nearlyEqual(t, "laborHours", surface.LaborHours, 10)
	nearlyEqual(t, "laborCost", surface.LaborCost, 550)
	if surface.MaterialCost <= 0 {
		t.Fatalf("materialCost = %v, want > 0", surface.MaterialCost)
	}

	subtotal := 550 + surface.MaterialCost
	nearlyEqual(t, "subtotal", result.Subtotal, round2(subtotal))
	nearlyEqual(t, "overhead", result.Overhead, round2(subtotal*0.15))
	nearlyEqual(t, "profit", result.Profit, round2(subtotal*1.15*0.20))
	nearlyEqual(t, "total", result.Total, round2(subtotal*1.15*1.20))
	nearlyEqual(t, "costPerSquareFoot", result.CostPerSquareFoot, round2(subtotal*1.15*1.20/1500))

	// 10 labor hours across a crew of 3 on 8-hour days.
	nearlyEqual(t, "estimatedDays", result.EstimatedDays, 0.4)
}

func TestProjectEstimate_UnknownSurfaceTypeUsesDefaultRate(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.ProjectEstimate(ProjectSpec{
		Surfaces: []Surface{{
			Name:        "Fiberglass hull",
			Area:        300,
			SurfaceType: "fiberglass",
			Condition:   reference.ConditionFair,
			System: coverage.SystemSpec{
				Topcoat: &coverage.Layer{VolumeSolids: 50, TargetDFT: 4, Coats: 1},
			},
		}},
		LaborRate: 40,
	})
	if err != nil {
		t.Fatalf("ProjectEstimate returned error: %v", err)
	}

	nearlyEqual(t, "productionRate", result.Surfaces[0].ProductionRate, 150)
	nearlyEqual(t, "laborHours", result.Surfaces[0].LaborHours, 2)
}

func TestProjectEstimate_SurfaceFailureAbortsEstimate(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.ProjectEstimate(ProjectSpec{
		Surfaces: []Surface{{
			Name: "Bad surface",
			Area: 100,
			System: coverage.SystemSpec{
				Topcoat: &coverage.Layer{VolumeSolids: 150, TargetDFT: 4, Coats: 1},
			},
		}},
	})
	if !errors.Is(err, coverage.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput from bad layer, got %v", err)
	}
}

func TestROI_ProfitableInvestment(t *testing.T) {
	engine := newTestEngine()

	result := engine.ROI(ROISpec{
		InitialCost:         10000,
		AnnualSavings:       3000,
		LifespanYears:       10,
		DiscountRatePercent: 5,
	})

	nearlyEqual(t, "totalSavings", result.TotalSavings, 30000)
	nearlyEqual(t, "netReturn", result.NetReturn, 20000)
	nearlyEqual(t, "roiPercent", result.ROIPercent, 200)
	nearlyEqual(t, "paybackYears", result.PaybackYears, 3.3)

	// NPV of 3000/year for 10 years at 5% is 23165.20 before the
	// initial outlay.
	nearlyEqual(t, "npv", result.NPV, 13165.2)
	if !result.IsProfitable {
		t.Fatalf("expected profitable investment, got %+v", result)
	}
}

func TestROI_ZeroDiscountMatchesUndiscounted(t *testing.T) {
	engine := newTestEngine()

	result := engine.ROI(ROISpec{InitialCost: 5000, AnnualSavings: 1000, LifespanYears: 8})

	nearlyEqual(t, "npv", result.NPV, 3000)
	nearlyEqual(t, "npv equals netReturn", result.NPV, result.NetReturn)
}

func TestROI_ZeroSavingsPropagatesInfinity(t *testing.T) {
	engine := newTestEngine()

	result := engine.ROI(ROISpec{InitialCost: 5000, LifespanYears: 5})

	if !math.IsInf(result.PaybackYears, 1) {
		t.Fatalf("expected infinite payback, got %v", result.PaybackYears)
	}
	if result.IsProfitable {
		t.Fatalf("zero savings must not be profitable")
	}
}
