package noise

import "testing"

// TestPerlin2DReferenceVector freezes Perlin2D(0.5, 0.5, seed=1234,
// octaves=4, persistence=0.6) against the canonical algorithm, run
// once, to a 1e-6 tolerance.
func TestPerlin2DReferenceVector(t *testing.T) {
	got := Perlin2D(0.5, 0.5, 1234, 4, 0.6)
	want := -0.133020366191864
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("Perlin2D reference mismatch: got %v, want %v", got, want)
	}
}

func TestValue3DReferenceVector(t *testing.T) {
	got := Value3D(1.25, 2.75, 0.33, 777, true)
	want := 0.5857805771065324
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Value3D reference mismatch: got %v, want %v", got, want)
	}
}

func TestValue2DDeterministic(t *testing.T) {
	a := Value2D(3.7, -1.2, 99, true)
	b := Value2D(3.7, -1.2, 99, true)
	if a != b {
		t.Fatalf("Value2D not deterministic: %v != %v", a, b)
	}
}

func TestValue2DBounded(t *testing.T) {
	// lattice values are in [-1,1]; bilinear interpolation of bounded
	// inputs cannot escape that range.
	for x := -5.0; x <= 5.0; x += 0.37 {
		for z := -5.0; z <= 5.0; z += 0.41 {
			v := Value2D(x, z, 1, true)
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("Value2D(%v,%v) = %v out of [-1,1]", x, z, v)
			}
		}
	}
}

func TestFractal2DMatchesSingleOctave(t *testing.T) {
	p := Params{Scale: 1, Spread: [3]float32{1, 1, 1}, Octaves: 1, Persistence: 0.5, Lacunarity: 2, Flags: FlagEased}
	want := Value2D(1.5, 2.5, 55, true)
	got := Fractal2D(1.5, 2.5, 55, p)
	if got != want {
		t.Fatalf("single-octave fractal should equal the underlying lattice value: got %v want %v", got, want)
	}
}

func TestFractal3DOffsetScale(t *testing.T) {
	base := Params{Scale: 1, Spread: [3]float32{1, 1, 1}, Octaves: 3, Persistence: 0.5, Lacunarity: 2, Flags: FlagEased}
	shifted := base
	shifted.Offset = 10
	shifted.Scale = 2

	x, y, z := 2.2, 3.3, 4.4
	var seed uint64 = 4242

	bv := Fractal3D(x, y, z, seed, base)
	sv := Fractal3D(x, y, z, seed, shifted)
	if diff := sv - (10 + 2*bv); diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("offset/scale not applied linearly: base=%v shifted=%v", bv, sv)
	}
}

func TestDefaultLacunarity(t *testing.T) {
	withZero := Params{Scale: 1, Spread: [3]float32{1, 1, 1}, Octaves: 2, Persistence: 0.5}
	withExplicit := withZero
	withExplicit.Lacunarity = DefaultLacunarity

	a := Fractal2D(1, 1, 3, withZero)
	b := Fractal2D(1, 1, 3, withExplicit)
	if a != b {
		t.Fatalf("zero lacunarity should default to %v: got %v vs %v", DefaultLacunarity, a, b)
	}
}
