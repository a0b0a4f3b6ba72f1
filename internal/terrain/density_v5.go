package terrain

import "mapgencore/internal/noise"

// NewV5 builds the v5 density function: a 3-D ground-noise field
// scaled by a clamped 2-D factor field, offset from a water-level-
// relative 2-D height field.
// D(x,y,z) = ground_noise3D(x,y,z)·factor2D(x,z) - (y - height2D(x,z))
func NewV5(seed uint64, waterLevel int32, factorParams, heightParams, groundParams noise.Params) Variant {
	density := func(x, y, z int32) float64 {
		f := 0.55 + noise.Fractal2D(float64(x), float64(z), seed+920381, factorParams)
		if f < 0.01 {
			f = 0.01
		} else if f >= 1.0 {
			f *= 1.6
		}

		h := float64(waterLevel) + noise.Fractal2D(float64(x), float64(z), seed+84174, heightParams)
		ground := noise.Fractal3D(float64(x), float64(y), float64(z), seed+983240, groundParams)

		return ground*f - (float64(y) - h)
	}
	return Variant{Density: density}
}
