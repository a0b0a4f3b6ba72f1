package cave

import (
	"testing"

	"mapgencore/internal/biome"
	"mapgencore/internal/nodedef"
	"mapgencore/internal/noise"
	"mapgencore/internal/voxel"
)

const (
	contentStone voxel.Content = 10
)

func testNodeRegistry() *nodedef.Registry {
	return nodedef.New([]nodedef.Def{
		{ID: contentStone, Name: "mapgen_stone", IsGround: true},
	})
}

func stoneColumnManipulator(size int32) *voxel.Manipulator {
	area := voxel.NewArea(voxel.Pos{}, voxel.Pos{X: size - 1, Y: size - 1, Z: size - 1})
	vm := voxel.NewManipulator(area)
	for z := area.Min.Z; z <= area.Max.Z; z++ {
		for y := area.Min.Y; y <= area.Max.Y; y++ {
			for x := area.Min.X; x <= area.Max.X; x++ {
				vm.Set(voxel.Pos{X: x, Y: y, Z: z}, voxel.Voxel{Content: contentStone})
			}
		}
	}
	return vm
}

func wideCaveParams() noise.Params {
	return noise.Params{Offset: 0, Scale: 1, Octaves: 3, Persistence: 0.6, Lacunarity: 2, Spread: [3]float32{12, 12, 12}, Flags: noise.FlagEased}
}

func TestNoiseCaveCarvesSomeAir(t *testing.T) {
	size := int32(16)
	vm := stoneColumnManipulator(size)
	table := biome.NewTable(nil)
	nc := NewNoiseCave(1, wideCaveParams(), wideCaveParams(), 16, 17, 16, testNodeRegistry(), table, 0.05, contentStone)

	heightmap := make([]int16, 16*16)
	biomemap := make([]uint8, 16*16)
	nc.Carve(vm, voxel.Pos{0, 0, 0}, voxel.Pos{15, 15, 15}, 16, 16, heightmap, biomemap, 15)

	air := 0
	for z := int32(0); z < size; z++ {
		for y := int32(0); y < size; y++ {
			for x := int32(0); x < size; x++ {
				if vm.Get(voxel.Pos{X: x, Y: y, Z: z}).Content == voxel.Air {
					air++
				}
			}
		}
	}
	if air == 0 {
		t.Fatal("expected some carved air with a low cave_width threshold")
	}
}

func TestNoiseCaveSkippedAboveMaxStoneY(t *testing.T) {
	size := int32(8)
	vm := stoneColumnManipulator(size)
	table := biome.NewTable(nil)
	nc := NewNoiseCave(1, wideCaveParams(), wideCaveParams(), 8, 9, 8, testNodeRegistry(), table, 0.0, contentStone)

	heightmap := make([]int16, 8*8)
	biomemap := make([]uint8, 8*8)
	nc.Carve(vm, voxel.Pos{0, 100, 0}, voxel.Pos{7, 107, 7}, 8, 8, heightmap, biomemap, -1)

	for z := int32(0); z < size; z++ {
		for y := int32(0); y < size; y++ {
			for x := int32(0); x < size; x++ {
				if vm.Get(voxel.Pos{X: x, Y: y, Z: z}).Content != contentStone {
					t.Fatal("pass should have been skipped entirely when maxStoneY < node_min.y")
				}
			}
		}
	}
}

func TestNoiseCaveDeterministic(t *testing.T) {
	run := func() []voxel.Voxel {
		size := int32(16)
		vm := stoneColumnManipulator(size)
		table := biome.NewTable(nil)
		nc := NewNoiseCave(42, wideCaveParams(), wideCaveParams(), 16, 17, 16, testNodeRegistry(), table, 0.05, contentStone)
		heightmap := make([]int16, 16*16)
		biomemap := make([]uint8, 16*16)
		nc.Carve(vm, voxel.Pos{0, 0, 0}, voxel.Pos{15, 15, 15}, 16, 16, heightmap, biomemap, 15)

		out := make([]voxel.Voxel, 0, size*size*size)
		for z := int32(0); z < size; z++ {
			for y := int32(0); y < size; y++ {
				for x := int32(0); x < size; x++ {
					out = append(out, vm.Get(voxel.Pos{X: x, Y: y, Z: z}))
				}
			}
		}
		return out
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("voxel %d differs between runs", i)
		}
	}
}
