package schematic

import (
	"bytes"
	"testing"

	"mapgencore/internal/nodedef"
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

func sampleSchematic() *Schematic {
	// 2x2x1 schematic: a stone floor with an always-placed cobble pillar.
	return &Schematic{
		Size:      voxel.Pos{X: 2, Y: 2, Z: 1},
		SliceProb: []uint8{ProbAlways, ProbAlways},
		Names:     []string{"mapgen_stone", "mapgen_cobble"},
		Nodes: []Node{
			{NameIndex: 0, Param1: ProbAlways}, // (0,0,0)
			{NameIndex: 0, Param1: ProbAlways}, // (1,0,0)
			{NameIndex: 1, Param1: ProbAlways}, // (0,1,0)
			{NameIndex: 1, Param1: ProbNever},  // (1,1,0) never placed
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := sampleSchematic()

	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Size != s.Size {
		t.Fatalf("size = %+v, want %+v", got.Size, s.Size)
	}
	if len(got.Names) != len(s.Names) || got.Names[0] != s.Names[0] || got.Names[1] != s.Names[1] {
		t.Fatalf("names = %v, want %v", got.Names, s.Names)
	}
	for i := range s.Nodes {
		if got.Nodes[i] != s.Nodes[i] {
			t.Fatalf("node %d = %+v, want %+v", i, got.Nodes[i], s.Nodes[i])
		}
	}
}

func TestReadRejectsBadSignature(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0, 0, 0, 0, 0, 0})
	if _, err := Read(buf); err == nil {
		t.Fatal("expected an error for a bad signature")
	}
}

func TestResolveContentFallsBackToAir(t *testing.T) {
	s := sampleSchematic()
	ndef := nodedef.New([]nodedef.Def{
		{ID: 10, Name: "mapgen_stone"},
	})

	resolved := ResolveContent(s, ndef)
	if resolved[0] != 10 {
		t.Fatalf("mapgen_stone resolved to %d, want 10", resolved[0])
	}
	if resolved[1] != voxel.Air {
		t.Fatalf("unregistered mapgen_cobble should fall back to air, got %d", resolved[1])
	}
}

func TestBlitPlacesOnlyOverAirAndSkipsNever(t *testing.T) {
	s := sampleSchematic()
	ndef := nodedef.New([]nodedef.Def{
		{ID: 10, Name: "mapgen_stone"},
		{ID: 20, Name: "mapgen_cobble"},
	})
	resolved := ResolveContent(s, ndef)

	area := voxel.NewArea(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 3, Y: 3, Z: 3})
	vm := voxel.NewManipulator(area)
	for z := area.Min.Z; z <= area.Max.Z; z++ {
		for y := area.Min.Y; y <= area.Max.Y; y++ {
			for x := area.Min.X; x <= area.Max.X; x++ {
				vm.Set(voxel.Pos{X: x, Y: y, Z: z}, voxel.Voxel{Content: voxel.Air})
			}
		}
	}

	r := rng.New(7)
	Blit(s, resolved, vm, voxel.Pos{X: 1, Y: 1, Z: 1}, Rotate0, false, r)

	if got := vm.Get(voxel.Pos{X: 1, Y: 1, Z: 1}).Content; got != 10 {
		t.Fatalf("(0,0,0) cell = %d, want stone (10)", got)
	}
	if got := vm.Get(voxel.Pos{X: 2, Y: 1, Z: 1}).Content; got != 10 {
		t.Fatalf("(1,0,0) cell = %d, want stone (10)", got)
	}
	if got := vm.Get(voxel.Pos{X: 1, Y: 2, Z: 1}).Content; got != 20 {
		t.Fatalf("(0,1,0) cell = %d, want cobble (20)", got)
	}
	if got := vm.Get(voxel.Pos{X: 2, Y: 2, Z: 1}).Content; got != voxel.Air {
		t.Fatalf("ProbNever cell should stay air, got %d", got)
	}
}

func TestBlitDoesNotOverwriteSolidGroundUnlessForced(t *testing.T) {
	s := sampleSchematic()
	ndef := nodedef.New([]nodedef.Def{
		{ID: 10, Name: "mapgen_stone"},
		{ID: 20, Name: "mapgen_cobble"},
	})
	resolved := ResolveContent(s, ndef)

	area := voxel.NewArea(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 3, Y: 3, Z: 3})
	vm := voxel.NewManipulator(area)
	existing := voxel.Content(99)
	vm.Set(voxel.Pos{X: 1, Y: 1, Z: 1}, voxel.Voxel{Content: existing})

	r := rng.New(7)
	Blit(s, resolved, vm, voxel.Pos{X: 1, Y: 1, Z: 1}, Rotate0, false, r)

	if got := vm.Get(voxel.Pos{X: 1, Y: 1, Z: 1}).Content; got != existing {
		t.Fatalf("non-air destination should be preserved without forcePlacement, got %d", got)
	}

	Blit(s, resolved, vm, voxel.Pos{X: 1, Y: 1, Z: 1}, Rotate0, true, r)
	if got := vm.Get(voxel.Pos{X: 1, Y: 1, Z: 1}).Content; got != 10 {
		t.Fatalf("forcePlacement should overwrite, got %d", got)
	}
}

func TestResolveRotationPicksFixedRotation(t *testing.T) {
	r := rng.New(1)
	got := ResolveRotation(Rotate90, r)
	if got != Rotate90 {
		t.Fatalf("fixed rotation should pass through unchanged, got %v", got)
	}

	got = ResolveRotation(RotateRandom, r)
	if got < Rotate0 || got > Rotate270 {
		t.Fatalf("RotateRandom should resolve to one of the four fixed rotations, got %v", got)
	}
}
