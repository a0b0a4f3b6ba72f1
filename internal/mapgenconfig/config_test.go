package mapgenconfig

import (
	"path/filepath"
	"testing"

	"mapgencore/internal/noise"
)

func TestYAMLRoundTrip(t *testing.T) {
	p := Default("v7")
	p.NoiseTerrain = noise.Params{Offset: 4, Scale: 20, Spread: [3]float32{350, 350, 350}, Octaves: 5, Persistence: 0.6, Lacunarity: 2, Flags: noise.FlagEased}

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Variant != p.Variant || got.ChunkSize != p.ChunkSize || got.NoiseTerrain != p.NoiseTerrain {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestNoiseParamsBinaryRoundTrip(t *testing.T) {
	p := noise.Params{
		Offset: -1.5, Scale: 12.25, Spread: [3]float32{100, 200, 300},
		SeedOffset: -7, Octaves: 6, Persistence: 0.55, Lacunarity: 2.5, Flags: noise.FlagEased | noise.FlagAbsValue,
	}
	buf := EncodeNoiseParams(p)
	if len(buf) != NoiseParamsWireSize {
		t.Fatalf("wire size = %d, want %d", len(buf), NoiseParamsWireSize)
	}
	got, err := DecodeNoiseParams(buf)
	if err != nil {
		t.Fatalf("DecodeNoiseParams: %v", err)
	}
	if got != p {
		t.Fatalf("binary round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestDecodeNoiseParamsRejectsShortBuffer(t *testing.T) {
	_, err := DecodeNoiseParams(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}

func TestFlagsHasAndString(t *testing.T) {
	f := FlagCaves | FlagDungeons
	if !f.Has(FlagCaves) || !f.Has(FlagDungeons) {
		t.Fatal("Has should report set bits")
	}
	if f.Has(FlagLight) {
		t.Fatal("Has should not report an unset bit")
	}
	if f.String() != "caves|dungeons" {
		t.Fatalf("String() = %q", f.String())
	}
}

func TestRuntimeSettingsDefaults(t *testing.T) {
	if GetProfilingActive() {
		t.Fatal("profiling should default to off")
	}
	SetProfilingActive(true)
	defer SetProfilingActive(false)
	if !GetProfilingActive() {
		t.Fatal("SetProfilingActive did not take effect")
	}
}
