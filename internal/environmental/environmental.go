// Package environmental checks whether ambient conditions allow safe
// coating application: dew-point margin and VOC emissions.
package environmental

import (
	"fmt"
	"math"

	"github.com/Simplici0/coat.works/internal/reference"
)

// Engine evaluates environmental suitability against one reference
// table.
type Engine struct {
	ref reference.Data
}

// NewEngine returns an Engine bound to the given reference table.
func NewEngine(ref reference.Data) *Engine {
	return &Engine{ref: ref}
}

// DewPointSpec describes ambient conditions at the job site.
type DewPointSpec struct {
	AirTemperature   float64 `json:"air_temperature"`   // °F
	RelativeHumidity float64 `json:"relative_humidity"` // percent, (0, 100]
}

// DewPointResult reports the dew point, the assumed surface
// temperature, and whether the margin between them permits painting.
// Temperatures are in °F, rounded to one decimal.
type DewPointResult struct {
	DewPoint           float64 `json:"dew_point"`
	SurfaceTemperature float64 `json:"surface_temperature"`
	CurrentMargin      float64 `json:"current_margin"`
	RequiredMargin     float64 `json:"required_margin"`
	IsSafe             bool    `json:"is_safe"`
	MinimumSafeSurface float64 `json:"minimum_safe_surface"`
	Recommendation     string  `json:"recommendation"`
}

// DewPoint computes the dew point with the Magnus approximation and
// compares it against the assumed surface temperature. The Magnus
// constants are defined over Celsius, so the calculation converts in
// and out of °F. Surface temperature is taken as a fixed offset below
// air temperature rather than measured.
func (e *Engine) DewPoint(spec DewPointSpec) DewPointResult {
	tempC := fahrenheitToCelsius(spec.AirTemperature)
	alpha := (e.ref.MagnusA*tempC)/(e.ref.MagnusB+tempC) + math.Log(spec.RelativeHumidity/100)
	dewPointC := (e.ref.MagnusB * alpha) / (e.ref.MagnusA - alpha)
	dewPoint := celsiusToFahrenheit(dewPointC)

	surfaceTemp := spec.AirTemperature + e.ref.SurfaceTempOffset
	currentMargin := surfaceTemp - dewPoint
	minimumSafe := dewPoint + e.ref.DewPointMargin
	isSafe := currentMargin >= e.ref.DewPointMargin

	var recommendation string
	if isSafe {
		recommendation = fmt.Sprintf(
			"Safe to paint: surface temperature (%.1f°F) is %.1f°F above the dew point (%.1f°F).",
			surfaceTemp, currentMargin, dewPoint)
	} else {
		recommendation = fmt.Sprintf(
			"Do not paint: surface temperature (%.1f°F) is within %.1f°F of the dew point (%.1f°F). Wait until the surface reaches at least %.1f°F.",
			surfaceTemp, e.ref.DewPointMargin, dewPoint, minimumSafe)
	}

	return DewPointResult{
		DewPoint:           round1(dewPoint),
		SurfaceTemperature: round1(surfaceTemp),
		CurrentMargin:      round1(currentMargin),
		RequiredMargin:     e.ref.DewPointMargin,
		IsSafe:             isSafe,
		MinimumSafeSurface: round1(minimumSafe),
		Recommendation:     recommendation,
	}
}

func fahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
