package terrain

import (
	"math"

	"mapgencore/internal/noise"
)

// ValleysParams are the valleys variant's tunables beyond the shared
// generic noise fields: river channel half-width and the river
// trench's additional depth below its banks.
type ValleysParams struct {
	RiverSize  float64
	RiverDepth float64
}

// NewValleys builds the valleys variant's density function: a
// composite of terrain-height, valley-depth, valley-profile and
// inter-valley-slope/fill fields that raises ground height away from
// rivers and carves a river trench where the river noise is near
// zero.
func NewValleys(seed uint64, waterLevel int32, vp ValleysParams, terrainHeightParams, riverParams, valleyDepthParams, valleyProfileParams, interValleySlopeParams, interValleyFillParams noise.Params) Variant {
	mountAt := func(x, z int32) float64 {
		terrainHeight := noise.Fractal2D(float64(x), float64(z), seed+5202, terrainHeightParams)
		riverN := noise.Fractal2D(float64(x), float64(z), seed-6050, riverParams)
		valleyDepthN := noise.Fractal2D(float64(x), float64(z), seed-1914, valleyDepthParams)
		valleyProfile := noise.Fractal2D(float64(x), float64(z), seed+777, valleyProfileParams)
		interValleySlope := noise.Fractal2D(float64(x), float64(z), seed+746, interValleySlopeParams)
		interValleyFill := noise.Fractal2D(float64(x), float64(z), seed+1993, interValleyFillParams)

		valleyD := valleyDepthN * valleyDepthN
		base := terrainHeight + valleyD

		river := math.Abs(riverN) - vp.RiverSize
		valley := valleyD * (1 - math.Exp(-(river/valleyProfile)*(river/valleyProfile)))

		mount := base + valley
		slope := valley * interValleySlope

		if river < 0 {
			ratio := river/vp.RiverSize + 1
			depth := vp.RiverDepth*math.Sqrt(math.Max(0, 1-ratio*ratio)) + 1
			floor := base - depth
			if floor < float64(waterLevel)-2 {
				floor = float64(waterLevel) - 2
			}
			if floor < mount {
				mount = floor
			}
			slope = 0
		}

		delta := math.Sin(interValleyFill) * slope
		mount += delta * 0.66

		return mount
	}

	density := func(x, y, z int32) float64 {
		return mountAt(x, z) - float64(y)
	}
	return Variant{Density: density}
}
