package terrain

import (
	"fmt"

	"mapgencore/internal/mapgenconfig"
	"mapgencore/internal/voxel"
)

// Build constructs the Variant named by p.Variant from its noise
// recipes. ridgeHeightmap is only consulted for v7 when
// FlagRidges is set — callers that never select v7 may pass nil.
// An unrecognized variant name is a caller-contract violation (the
// set of supported names is fixed), so Build panics rather than
// silently falling back.
func Build(p mapgenconfig.Params, seed uint64, water voxel.Content, ridgeHeightmap []int16) Variant {
	switch p.Variant {
	case "v5":
		return NewV5(seed, p.WaterLevel, p.NoiseFactor, p.NoiseTerrain, p.NoiseMountain)
	case "v6":
		return NewV6(seed, p.WaterLevel, p.NoiseTerrain, p.NoiseTerrainHigher, p.NoiseSteepness, p.NoiseHeightSelect)
	case "v7":
		v := NewV7(seed, p.NoiseTerrain, p.NoiseTerrainAlt, p.NoiseTerrainPersist, p.NoiseHeightSelect, p.NoiseMountainHeight, p.NoiseMountain, p.Flags.Has(mapgenconfig.FlagMountains))
		if p.Flags.Has(mapgenconfig.FlagRidges) {
			v.Post = NewV7RidgePost(seed, p.WaterLevel, p.NoiseUnderwater, p.NoiseRidge, water, ridgeHeightmap)
		}
		return v
	case "flat":
		return NewFlat()
	case "fractal":
		fp := FractalParams{
			Scale: p.FractalScale, Offset: p.FractalOffset, SliceW: p.FractalSliceW,
			Julia: p.FractalJulia, JuliaC: p.FractalJuliaC, Iterations: p.FractalIterations,
		}
		return NewFractal(seed, fp, p.NoiseSeabed)
	case "valleys":
		vp := ValleysParams{RiverSize: p.RiverSize, RiverDepth: p.RiverDepth}
		return NewValleys(seed, p.WaterLevel, vp, p.NoiseTerrain, p.NoiseValleysRiver, p.NoiseValleysDepth, p.NoiseValleysProfile, p.NoiseValleysSlope, p.NoiseValleysFill)
	case "watershed":
		return NewWatershed(seed, p.NoiseRidge, p.NoiseWatershedValleyBase, p.NoiseWatershedValley, p.NoiseWatershedValleyAmp, p.NoiseWatershedPlateau, p.NoiseWatershedMountainAmp, p.NoiseMountain)
	default:
		panic(fmt.Sprintf("terrain: unknown variant %q", p.Variant))
	}
}
