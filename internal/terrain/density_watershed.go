package terrain

import (
	"math"

	"mapgencore/internal/noise"
)

// NewWatershed builds the watershed variant's density function:
// large-scale ridge and valley-base fields set the major structure,
// a lake field raises the valley exponent to carve basins, a plateau
// field caps valley-side height, and a mountain-amplitude field scales
// a 3-D mountain noise that is kept away from river channels.
//
// The original places river sand and river-water as special cases of
// the same density test; this variant reduces that to the shared
// scaffold's generic stone/water/air classification, documented as a
// simplification — it loses the riverbed-sand and distinct
// river-water node substitution but keeps the height field identical.
func NewWatershed(seed uint64, ridgeParams, valleyBaseParams, valleyParams, valleyAmpParams, plateauParams, mountainAmpParams, mountainParams noise.Params) Variant {
	density := func(x, y, z int32) float64 {
		nRidge := noise.Fractal2D(float64(x), float64(z), seed+27, ridgeParams)
		nValleyBase := -math.Pow(math.Abs(noise.Fractal2D(float64(x), float64(z), seed+106, valleyBaseParams)), 0.8)
		nValley := math.Abs(noise.Fractal2D(float64(x), float64(z), seed+63, valleyParams))
		nValleyAmp := noise.Fractal2D(float64(x), float64(z), seed+991, valleyAmpParams)
		nPlateau := noise.Fractal2D(float64(x), float64(z), seed+63, plateauParams)
		nMountainAmp := math.Max(noise.Fractal2D(float64(x), float64(z), seed+2170070, mountainAmpParams), 0)
		nLake := noise.Fractal2D(float64(x), float64(z), seed+7553, valleyAmpParams)

		nLake = nLake * nLake * nLake * nLake
		lakeArea := math.Min(nLake, 2.0)
		nValley = math.Pow(nValley, 1.0+lakeArea)
		nValley += nValleyBase * 0.05

		var mountainAmp float64
		if nValley > 0.0 {
			nValley = math.Min(math.Pow(nValley, 1.5)*nValleyAmp, nPlateau)
			mountainAmp = nMountainAmp * nValley * math.Max(1.0+nValleyBase, 0.0)
		} else {
			nValley = -math.Pow(-nValley, 0.25) * 0.1
			mountainAmp = 0.0
		}

		nMountain := (1.0 + noise.Fractal3D(float64(x), float64(y), float64(z), seed+359, mountainParams)) * mountainAmp
		densityGradient := -float64(y) / 128.0
		densityValleyBase := nRidge + nValleyBase + densityGradient

		return densityValleyBase + nValley + nMountain
	}
	return Variant{Density: density}
}
