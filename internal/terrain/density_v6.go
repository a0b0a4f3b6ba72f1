package terrain

import "mapgencore/internal/noise"

// NewV6 builds the v6 density function. Two 2-D fractal fields (base,
// higher) bound the possible surface height; a steepness field
// raised to the 7th power and rescaled selects how sharply a third
// field blends base toward higher; D = height(x,z) - y.
func NewV6(seed uint64, waterLevel int32, baseParams, higherParams, steepnessParams, selectParams noise.Params) Variant {
	heightAt := func(x, z int32) float64 {
		base := float64(waterLevel) + noise.Fractal2D(float64(x), float64(z), seed+82341, baseParams)
		higher := float64(waterLevel) + noise.Fractal2D(float64(x), float64(z), seed+85039, higherParams)
		if higher < base {
			higher = base
		}

		b := noise.Fractal2D(float64(x), float64(z), seed-932, steepnessParams)
		b = clampF(b, 0, 1000)
		b = pow7(b) * 5
		b = clampF(b, 0.5, 1000)
		if b > 1.5 && b < 100.0 {
			if b < 10.0 {
				b = 1.5
			} else {
				b = 100.0
			}
		}

		const aOff = -0.20
		a := 0.5 + b*(aOff+noise.Fractal2D(float64(x), float64(z), seed+4213, selectParams))
		a = clampF(a, 0, 1)

		return base*(1.0-a) + higher*a
	}

	density := func(x, y, z int32) float64 {
		return heightAt(x, z) - float64(y)
	}
	return Variant{Density: density}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pow7(b float64) float64 {
	b2 := b * b
	b4 := b2 * b2
	return b4 * b2 * b
}
