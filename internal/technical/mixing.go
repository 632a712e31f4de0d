package technical

// MixSpec describes splitting a total volume of multi-component
// coating by its mix ratio, e.g. 4:1 base to catalyst.
type MixSpec struct {
	RatioBase     float64 `json:"ratio_base"`
	RatioCatalyst float64 `json:"ratio_catalyst"`
	TotalGallons  float64 `json:"total_gallons"`
	Method        string  `json:"method,omitempty"` // application method
}

// MixResult reports the component volumes and the transfer efficiency
// of the chosen application method. A zero ratio sum propagates NaN.
type MixResult struct {
	BaseGallons      float64 `json:"base_gallons"`
	CatalystGallons  float64 `json:"catalyst_gallons"`
	MethodEfficiency float64 `json:"method_efficiency"` // percent
}

// MixRatio splits a total mixed volume into its base and catalyst
// parts and reports the efficiency of the application method, with
// the default efficiency for unknown methods.
func (e *Engine) MixRatio(spec MixSpec) MixResult {
	parts := spec.RatioBase + spec.RatioCatalyst

	return MixResult{
		BaseGallons:      round2(spec.TotalGallons * spec.RatioBase / parts),
		CatalystGallons:  round2(spec.TotalGallons * spec.RatioCatalyst / parts),
		MethodEfficiency: e.ref.MethodEfficiency(spec.Method),
	}
}

// SolventSpec describes thinning a quantity of paint with solvent.
type SolventSpec struct {
	PaintGallons     float64 `json:"paint_gallons"`
	ReductionPercent float64 `json:"reduction_percent"`
	VolumeSolids     float64 `json:"volume_solids"` // percent, before thinning
}

// SolventResult reports the solvent to add and the resulting volume
// and solids content.
type SolventResult struct {
	SolventGallons float64 `json:"solvent_gallons"`
	TotalVolume    float64 `json:"total_volume"`
	AdjustedSolids float64 `json:"adjusted_solids"` // percent
}

// SolventReduction computes how much solvent a reduction percentage
// adds and how far it lowers the volume solids.
func (e *Engine) SolventReduction(spec SolventSpec) SolventResult {
	solvent := spec.PaintGallons * spec.ReductionPercent / 100

	return SolventResult{
		SolventGallons: round2(solvent),
		TotalVolume:    round2(spec.PaintGallons + solvent),
		AdjustedSolids: round1(spec.VolumeSolids * (1 - spec.ReductionPercent/100)),
	}
}

// ProfileResult reports the anchor profile a blast media produces.
type ProfileResult struct {
	Media     string  `json:"media"`
	DepthMils float64 `json:"depth_mils"`
	InTable   bool    `json:"in_table"` // false when the default depth applied
}

// ProfileDepth looks up the anchor-profile depth for a blast media,
// falling back to the default depth for media not in the table.
func (e *Engine) ProfileDepth(media string) ProfileResult {
	depth, ok := e.ref.ProfileDepth(media)
	return ProfileResult{Media: media, DepthMils: depth, InTable: ok}
}

// WeatherWindow is a static placeholder for a live weather feed.
type WeatherWindow struct {
	Temperature      float64 `json:"temperature"`       // °F
	RelativeHumidity float64 `json:"relative_humidity"` // percent
	WindSpeedMPH     float64 `json:"wind_speed_mph"`
	Suitable         bool    `json:"suitable"`
	Source           string  `json:"source"`
}

// CurrentWeatherWindow returns static reference conditions. There is
// no weather-data integration; callers wanting live data must supply
// their own.
func (e *Engine) CurrentWeatherWindow() WeatherWindow {
	return WeatherWindow{
		Temperature:      72,
		RelativeHumidity: 50,
		WindSpeedMPH:     5,
		Suitable:         true,
		Source:           "static",
	}
}
