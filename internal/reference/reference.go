// Package reference holds the industry reference values shared by the
// calculation engines. Engines receive a Data value at construction so
// tests can substitute their own table; nothing in this package is a
// mutable global.
package reference

import (
	"fmt"
	"strings"
)

// SurfaceType identifies the substrate being coated.
type SurfaceType string

const (
	SurfaceSteel    SurfaceType = "steel"
	SurfaceConcrete SurfaceType = "concrete"
	SurfaceWood     SurfaceType = "wood"
	SurfaceDrywall  SurfaceType = "drywall"
)

// Condition describes the state of the substrate before preparation.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
	ConditionPoor Condition = "poor"
)

// RateKey keys the production-rate table. It marshals as
// "surface/condition" so the table survives JSON encoding.
type RateKey struct {
	Surface   SurfaceType
	Condition Condition
}

// MarshalText implements encoding.TextMarshaler.
func (k RateKey) MarshalText() ([]byte, error) {
	return []byte(string(k.Surface) + "/" + string(k.Condition)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *RateKey) UnmarshalText(text []byte) error {
	surface, condition, found := strings.Cut(string(text), "/")
	if !found {
		return fmt.Errorf("rate key %q is not surface/condition", text)
	}
	k.Surface = SurfaceType(surface)
	k.Condition = Condition(condition)
	return nil
}

// VOCCategory is a regulatory coating category.
type VOCCategory string

const (
	CategoryFlat                  VOCCategory = "flat"
	CategoryNonFlat               VOCCategory = "non-flat"
	CategoryPrimerSealer          VOCCategory = "primer-sealer"
	CategoryIndustrialMaintenance VOCCategory = "industrial-maintenance"
	CategoryClearWoodFinish       VOCCategory = "clear-wood-finish"
)

// Data is the reference table injected into each engine.
type Data struct {
	// CoverageConstant is the square feet one gallon covers at 1 mil
	// DFT and 100% volume solids.
	CoverageConstant float64 `json:"coverage_constant"`
	// WasteFactor is the fraction added on top of calculated material.
	WasteFactor float64 `json:"waste_factor"`
	// DefaultTransferEfficiency applies when a spec leaves the
	// efficiency unset, in percent.
	DefaultTransferEfficiency float64 `json:"default_transfer_efficiency"`

	LargeContainerGallons float64 `json:"large_container_gallons"`
	SmallContainerGallons float64 `json:"small_container_gallons"`

	// Dew-point safety values, in °F.
	DewPointMargin    float64 `json:"dew_point_margin"`
	SurfaceTempOffset float64 `json:"surface_temp_offset"`
	MagnusA           float64 `json:"magnus_a"`
	MagnusB           float64 `json:"magnus_b"`

	// VOCLimits maps a regulatory category to its limit in g/L.
	// ComplianceCategory selects the limit used by the compliance
	// check.
	VOCLimits          map[VOCCategory]float64 `json:"voc_limits"`
	ComplianceCategory VOCCategory             `json:"compliance_category"`
	// VOCClearAirChanges is the number of full air exchanges assumed
	// to clear solvent vapor from an enclosed space.
	VOCClearAirChanges float64 `json:"voc_clear_air_changes"`

	// ProductionRates is square feet per labor hour keyed by surface
	// type and condition. DefaultProductionRate applies to unmatched
	// keys.
	ProductionRates       map[RateKey]float64 `json:"production_rates"`
	DefaultProductionRate float64             `json:"default_production_rate"`
	WorkdayHours          float64             `json:"workday_hours"`

	// TransferEfficiencyByMethod is percent efficiency per application
	// method, used by the mix-ratio helper.
	TransferEfficiencyByMethod map[string]float64 `json:"transfer_efficiency_by_method"`

	// ProfileDepths is anchor-profile depth in mils per blast media.
	// DefaultProfileDepth applies to unmatched media.
	ProfileDepths       map[string]float64 `json:"profile_depths"`
	DefaultProfileDepth float64            `json:"default_profile_depth"`

	// CoatingLifespans is expected service life in years per generic
	// coating type, used for ROI defaults.
	CoatingLifespans map[string]float64 `json:"coating_lifespans"`

	LitersPerGallon float64 `json:"liters_per_gallon"`
	GramsPerPound   float64 `json:"grams_per_pound"`
}

// Default returns the standard reference table. Each call builds a
// fresh value, so callers may adjust the maps without affecting other
// holders.
func Default() Data {
	return Data{
		CoverageConstant:          1604,
		WasteFactor:               0.10,
		DefaultTransferEfficiency: 65,

		LargeContainerGallons: 5,
		SmallContainerGallons: 1,

		DewPointMargin:    5,
		SurfaceTempOffset: -5,
		MagnusA:           17.27,
		MagnusB:           237.7,

		VOCLimits: map[VOCCategory]float64{
			CategoryFlat:                  50,
			CategoryNonFlat:               150,
			CategoryPrimerSealer:          200,
			CategoryIndustrialMaintenance: 250,
			CategoryClearWoodFinish:       350,
		},
		ComplianceCategory: CategoryNonFlat,
		VOCClearAirChanges: 4,

		ProductionRates: map[RateKey]float64{
			{SurfaceSteel, ConditionNew}:     175,
			{SurfaceSteel, ConditionGood}:    150,
			{SurfaceSteel, ConditionFair}:    125,
			{SurfaceSteel, ConditionPoor}:    100,
			{SurfaceConcrete, ConditionNew}:  200,
			{SurfaceConcrete, ConditionGood}: 175,
			{SurfaceConcrete, ConditionFair}: 150,
			{SurfaceConcrete, ConditionPoor}: 125,
			{SurfaceWood, ConditionNew}:      225,
			{SurfaceWood, ConditionGood}:     200,
			{SurfaceWood, ConditionFair}:     175,
			{SurfaceWood, ConditionPoor}:     150,
			{SurfaceDrywall, ConditionNew}:   300,
			{SurfaceDrywall, ConditionGood}:  275,
			{SurfaceDrywall, ConditionFair}:  250,
			{SurfaceDrywall, ConditionPoor}:  200,
		},
		DefaultProductionRate: 150,
		WorkdayHours:          8,

		TransferEfficiencyByMethod: map[string]float64{
			"brush":              90,
			"roller":             85,
			"airless-spray":      65,
			"conventional-spray": 35,
			"hvlp":               65,
			"electrostatic":      85,
		},

		ProfileDepths: map[string]float64{
			"sand-fine":       1.5,
			"sand-coarse":     2.5,
			"steel-shot-s230": 2.0,
			"steel-grit-g40":  3.0,
			"garnet-36":       2.5,
			"aluminum-oxide":  2.0,
			"walnut-shell":    1.0,
		},
		DefaultProfileDepth: 2.0,

		CoatingLifespans: map[string]float64{
			"alkyd":        5,
			"acrylic":      7,
			"epoxy":        10,
			"polyurethane": 15,
			"zinc-rich":    20,
		},

		LitersPerGallon: 3.78541,
		GramsPerPound:   453.592,
	}
}

// ProductionRate resolves the production rate for a surface type and
// condition, falling back to the documented default when the pair is
// not in the table.
func (d Data) ProductionRate(surface SurfaceType, condition Condition) float64 {
	if rate, ok := d.ProductionRates[RateKey{Surface: surface, Condition: condition}]; ok {
		return rate
	}
	return d.DefaultProductionRate
}

// MethodEfficiency resolves the transfer efficiency for an application
// method, falling back to the default efficiency for unknown methods.
func (d Data) MethodEfficiency(method string) float64 {
	if eff, ok := d.TransferEfficiencyByMethod[method]; ok {
		return eff
	}
	return d.DefaultTransferEfficiency
}

// ProfileDepth resolves the anchor-profile depth for a blast media.
// The second return reports whether the media was in the table.
func (d Data) ProfileDepth(media string) (float64, bool) {
	if depth, ok := d.ProfileDepths[media]; ok {
		return depth, true
	}
	return d.DefaultProfileDepth, false
}
