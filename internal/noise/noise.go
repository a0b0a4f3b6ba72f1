// Package noise implements the value-noise lattice and the fractal
// ("Perlin") summation built on top of it. Per-point queries and bulk
// rectangular map evaluation are both exposed; bulk evaluation is
// implemented as a per-point loop.
package noise

import (
	"math"

	"mapgencore/internal/rng"
)

// Flag bits of NoiseParams.Flags.
const (
	FlagEased       uint8 = 1 << 0
	FlagAbsValue    uint8 = 1 << 1
	FlagPointBuffer uint8 = 1 << 2
)

// Params is a fractal-noise recipe plus the wire-layout fields needed
// for the binary round trip of a noise configuration.
type Params struct {
	Offset      float32
	Scale       float32
	Spread      [3]float32
	SeedOffset  int32
	Octaves     uint16
	Persistence float32
	Lacunarity  float32
	Flags       uint8
}

// DefaultLacunarity is used whenever Params.Lacunarity is zero.
const DefaultLacunarity = 2.0

func (p Params) lacunarity() float64 {
	if p.Lacunarity == 0 {
		return DefaultLacunarity
	}
	return float64(p.Lacunarity)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func floorFade(eased bool, t float64) (float64, float64) {
	f0 := math.Floor(t)
	frac := t - f0
	if eased {
		return f0, fade(frac)
	}
	return f0, frac
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lattice returns the signed value-noise scalar at an integer lattice
// point, derived from the position-hash PRNG so it never needs state
// carried between calls — adjacent mapchunks sample the same lattice
// point to the same value with no seam correction required.
func lattice(seed uint64, x, y, z int64) float64 {
	return rng.NodeSeedSigned(seed, int16(x), int16(y), int16(z))
}

// Value2D evaluates the quintic- or linear-faded bilinear value noise at
// a single 2-D point.
func Value2D(x, z float64, seed uint64, eased bool) float64 {
	x0, fx := floorFade(eased, x)
	z0, fz := floorFade(eased, z)
	xi, zi := int64(x0), int64(z0)

	v00 := lattice(seed, xi, 0, zi)
	v10 := lattice(seed, xi+1, 0, zi)
	v01 := lattice(seed, xi, 0, zi+1)
	v11 := lattice(seed, xi+1, 0, zi+1)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fz)
}

// Value3D evaluates trilinear value noise at a single 3-D point.
func Value3D(x, y, z float64, seed uint64, eased bool) float64 {
	x0, fx := floorFade(eased, x)
	y0, fy := floorFade(eased, y)
	z0, fz := floorFade(eased, z)
	xi, yi, zi := int64(x0), int64(y0), int64(z0)

	v000 := lattice(seed, xi, yi, zi)
	v100 := lattice(seed, xi+1, yi, zi)
	v010 := lattice(seed, xi, yi+1, zi)
	v110 := lattice(seed, xi+1, yi+1, zi)
	v001 := lattice(seed, xi, yi, zi+1)
	v101 := lattice(seed, xi+1, yi, zi+1)
	v011 := lattice(seed, xi, yi+1, zi+1)
	v111 := lattice(seed, xi+1, yi+1, zi+1)

	x00 := lerp(v000, v100, fx)
	x10 := lerp(v010, v110, fx)
	x01 := lerp(v001, v101, fx)
	x11 := lerp(v011, v111, fx)

	y0v := lerp(x00, x10, fy)
	y1v := lerp(x01, x11, fy)
	return lerp(y0v, y1v, fz)
}

// Fractal2D sums octaves of Value2D per Params' recipe.
func Fractal2D(x, z float64, seed uint64, p Params) float64 {
	eased := p.Flags&FlagEased != 0
	lac := p.lacunarity()
	persist := float64(p.Persistence)
	sx := float64(p.Spread[0])
	sz := float64(p.Spread[2])
	if sx == 0 {
		sx = 1
	}
	if sz == 0 {
		sz = 1
	}

	var sum, amp float64 = 0, 1
	freq := 1.0
	for i := uint16(0); i < p.Octaves; i++ {
		octSeed := seed + uint64(int64(p.SeedOffset)+int64(i))
		sum += amp * Value2D(x*freq/sx, z*freq/sz, octSeed, eased)
		amp *= persist
		freq *= lac
	}
	return float64(p.Offset) + float64(p.Scale)*sum
}

// Fractal3D sums octaves of Value3D per Params' recipe.
func Fractal3D(x, y, z float64, seed uint64, p Params) float64 {
	eased := p.Flags&FlagEased != 0
	lac := p.lacunarity()
	persist := float64(p.Persistence)
	sx := float64(p.Spread[0])
	sy := float64(p.Spread[1])
	sz := float64(p.Spread[2])
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}

	var sum, amp float64 = 0, 1
	freq := 1.0
	for i := uint16(0); i < p.Octaves; i++ {
		octSeed := seed + uint64(int64(p.SeedOffset)+int64(i))
		sum += amp * Value3D(x*freq/sx, y*freq/sy, z*freq/sz, octSeed, eased)
		amp *= persist
		freq *= lac
	}
	return float64(p.Offset) + float64(p.Scale)*sum
}

// Perlin2D is a convenience entry point for the common case: unit
// spread, zero offset, default lacunarity, eased fade.
func Perlin2D(x, z float64, seed uint64, octaves int, persistence float64) float64 {
	p := Params{
		Offset:      0,
		Scale:       1,
		Spread:      [3]float32{1, 1, 1},
		Octaves:     uint16(octaves),
		Persistence: float32(persistence),
		Lacunarity:  DefaultLacunarity,
		Flags:       FlagEased,
	}
	return Fractal2D(x, z, seed, p)
}
