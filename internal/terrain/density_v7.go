package terrain

import "mapgencore/internal/noise"

// NewV7 builds the v7 density function: the v6-style base/alt height
// pair, blended by a height-select field instead of a steepness/select
// pair, plus an optional mountain density field gated by a per-column
// mountain-height noise sample.
func NewV7(seed uint64, baseParams, altParams, persistParams, heightSelectParams, mountHeightParams, mountainParams noise.Params, mountains bool) Variant {
	heightAt := func(x, z int32) float64 {
		hselect := clampF(noise.Fractal2D(float64(x), float64(z), seed+4213, heightSelectParams), 0, 1)
		persist := noise.Fractal2D(float64(x), float64(z), seed+539, persistParams)

		base := baseParams
		base.Persistence = float32(persist)
		heightBase := noise.Fractal2D(float64(x), float64(z), seed+82341, base)

		alt := altParams
		alt.Persistence = float32(persist)
		heightAlt := noise.Fractal2D(float64(x), float64(z), seed+5934, alt)

		if heightAlt > heightBase {
			return heightAlt
		}
		return heightBase*hselect + heightAlt*(1.0-hselect)
	}

	density := func(x, y, z int32) float64 {
		h := heightAt(x, z)
		d := h - float64(y)

		if mountains {
			mountHeight := noise.Fractal2D(float64(x), float64(z), seed+72449, mountHeightParams)
			if mountHeight != 0 {
				gradient := -(float64(y) / mountHeight)
				mountainN := noise.Fractal3D(float64(x), float64(y), float64(z), seed+5333, mountainParams)
				if mountainN+gradient >= 0.0 {
					return 1
				}
			}
		}

		return d
	}
	return Variant{Density: density}
}
