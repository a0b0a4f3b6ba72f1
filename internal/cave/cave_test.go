package cave

import (
	"testing"

	"mapgencore/internal/biome"
	"mapgencore/internal/mapgenconfig"
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

func TestGeneratorSkipsNoiseCaveForV6(t *testing.T) {
	p := mapgenconfig.Default("v6")
	g := New(p, 1, 16, 16, 16, testNodeRegistry(), biome.NewTable(nil), contentStone, contentWaterSource, contentLavaSource, nil)
	if g.noiseCave != nil {
		t.Fatal("mapgen_v6 should carry no noise-cave pass")
	}
}

func TestGeneratorRunsBothPassesForOtherVariants(t *testing.T) {
	p := mapgenconfig.Default("v7")
	p.NoiseCave1 = wideCaveParams()
	p.NoiseCave2 = wideCaveParams()
	p.CaveWidth = 0.05
	g := New(p, 1, 16, 16, 16, testNodeRegistry(), biome.NewTable(nil), contentStone, contentWaterSource, contentLavaSource, nil)
	if g.noiseCave == nil {
		t.Fatal("non-v6 variants should carry a noise-cave pass")
	}

	vm := stoneColumnManipulator(16)
	r := rng.New(3)
	heightmap := make([]int16, 16*16)
	biomemap := make([]uint8, 16*16)
	g.Carve(vm, r, voxel.Pos{0, 0, 0}, voxel.Pos{15, 15, 15}, 16, 16, heightmap, biomemap, 15, false)
}
