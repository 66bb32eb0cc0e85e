// Package palette selects named theme swatches (vibrant, muted and their
// light and dark variants) from quantized image colours.
package palette

import "math"

const (
	saturationWeight = 3.0
	lightnessWeight  = 6.0
	populationWeight = 1.0
)

// Range is an inclusive [Min, Max] window with a preferred Target value.
type Range struct {
	Min    float64 `json:"min"`
	Target float64 `json:"target"`
	Max    float64 `json:"max"`
}

func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Target describes the lightness and saturation a named swatch should have.
type Target struct {
	Name       string `json:"name"`
	Lightness  Range  `json:"lightness"`
	Saturation Range  `json:"saturation"`
}

var (
	normalLightness = Range{Min: 0.3, Target: 0.5, Max: 0.7}
	lightLightness  = Range{Min: 0.55, Target: 0.74, Max: 1.0}
	darkLightness   = Range{Min: 0.0, Target: 0.26, Max: 0.45}

	vibrantSaturation = Range{Min: 0.35, Target: 1.0, Max: 1.0}
	mutedSaturation   = Range{Min: 0.0, Target: 0.3, Max: 0.4}
)

// The six standard targets.
var (
	Vibrant      = Target{Name: "vibrant", Lightness: normalLightness, Saturation: vibrantSaturation}
	LightVibrant = Target{Name: "light_vibrant", Lightness: lightLightness, Saturation: vibrantSaturation}
	DarkVibrant  = Target{Name: "dark_vibrant", Lightness: darkLightness, Saturation: vibrantSaturation}
	Muted        = Target{Name: "muted", Lightness: normalLightness, Saturation: mutedSaturation}
	LightMuted   = Target{Name: "light_muted", Lightness: lightLightness, Saturation: mutedSaturation}
	DarkMuted    = Target{Name: "dark_muted", Lightness: darkLightness, Saturation: mutedSaturation}
)

// DefaultTargets returns the standard targets in resolution order.
// Earlier targets claim swatches first, so the order affects the result.
func DefaultTargets() []Target {
	return []Target{Vibrant, LightVibrant, DarkVibrant, Muted, LightMuted, DarkMuted}
}

// score rates how well a swatch with the given saturation, lightness and
// population fits the target. Higher is better.
func (t Target) score(saturation, lightness float64, population, maxPopulation int) float64 {
	popRatio := 0.0
	if maxPopulation > 0 {
		popRatio = float64(population) / float64(maxPopulation)
	}
	return weightedMean(
		invertDiff(saturation, t.Saturation.Target), saturationWeight,
		invertDiff(lightness, t.Lightness.Target), lightnessWeight,
		popRatio, populationWeight,
	)
}

func invertDiff(value, target float64) float64 {
	return 1 - math.Abs(value-target)
}

// weightedMean takes alternating value, weight pairs.
func weightedMean(pairs ...float64) float64 {
	var sum, weights float64
	for i := 0; i+1 < len(pairs); i += 2 {
		sum += pairs[i] * pairs[i+1]
		weights += pairs[i+1]
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}
