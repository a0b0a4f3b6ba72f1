// Package cave implements the two cave-carving passes: a dual-noise
// "contour" pass that produces fine tunnel networks, and a
// PseudoRandom-driven random-walk pass that produces a small number of
// large tunnels. Carving order between the two passes is part of the
// stability contract for variants whose only cave algorithm is the
// random walk.
package cave

import (
	"math"

	"mapgencore/internal/biome"
	"mapgencore/internal/nodedef"
	"mapgencore/internal/noise"
	"mapgencore/internal/voxel"
)

// contour is the ridged absolute-value function the noise-cave pass
// builds its tunnel mask from.
func contour(v float64) float64 {
	c := 1 - 2*math.Abs(v)
	if c < 0 {
		return 0
	}
	return c
}

// NoiseCave carves the dual-noise tunnel network into vm over
// [nodeMin, nodeMax], reading and writing ground-content stone only.
// caveWidth is the d1*d2 threshold above which a voxel is carved.
type NoiseCave struct {
	cave1, cave2 *noise.Map
	ndef         *nodedef.Registry
	biomes       *biome.Table
	caveWidth    float64

	stone, air, filler, top voxel.Content
}

// NewNoiseCave allocates the two per-mapchunk 3-D noise buffers. sy
// must be the chunk's node height plus one, to cover the extra row of
// noise evaluated below node_min that Carve's top-down walk reads.
func NewNoiseCave(seed uint64, p1, p2 noise.Params, sx, sy, sz int, ndef *nodedef.Registry, biomes *biome.Table, caveWidth float64, stone voxel.Content) *NoiseCave {
	return &NoiseCave{
		cave1:     noise.NewMap3D(seed, p1, sx, sy, sz),
		cave2:     noise.NewMap3D(seed, p2, sx, sy, sz),
		ndef:      ndef,
		biomes:    biomes,
		caveWidth: caveWidth,
		stone:     stone,
		air:       voxel.Air,
	}
}

// Carve runs the pass. nodeMin/nodeMax is the requested region (the
// noise buffers must be sized sx × (sy+1) × sz, covering one extra y
// below nodeMin to support the top-down per-column walk); biomemap
// gives each column's biome for the tunnel-entrance floor transition
// (heightmap is accepted but not read); maxStoneY is the highest
// column height in the request, used to skip the pass entirely when
// there is no stone for it to carve.
func (c *NoiseCave) Carve(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, sx, sz int, heightmap []int16, biomemap []uint8, maxStoneY int32) {
	if maxStoneY < nodeMin.Y {
		return
	}

	minY := nodeMin.Y - 1 // noise is additionally evaluated one row below node_min
	c.cave1.PerlinMap3D(int(nodeMin.X), int(minY), int(nodeMin.Z))
	c.cave2.PerlinMap3D(int(nodeMin.X), int(minY), int(nodeMin.Z))
	r1 := c.cave1.Result()
	r2 := c.cave2.Result()

	sy := int(nodeMax.Y-nodeMin.Y) + 2 // rows minY .. nodeMax.Y, indexed by noise

	for zi := 0; zi < sz; zi++ {
		for xi := 0; xi < sx; xi++ {
			col := xi + zi*sx
			b := c.biomeFor(biomemap[col])

			columnIsOpen := false
			isTunnel := false

			// The row at node_max.y+1 is walked first but never carved
			// by noise — it is the overgeneration-margin roof voxel
			// that hides tunnels until the chunk above is generated.
			roof := voxel.Pos{X: nodeMin.X + int32(xi), Y: nodeMax.Y + 1, Z: nodeMin.Z + int32(zi)}
			if vm.Area.Contains(roof) && vm.Get(roof).Content == voxel.Air {
				columnIsOpen = true
			}

			for yi := sy - 1; yi >= 0; yi-- {
				y := minY + int32(yi)
				p := voxel.Pos{X: nodeMin.X + int32(xi), Y: y, Z: nodeMin.Z + int32(zi)}
				if !vm.Area.Contains(p) {
					continue
				}

				idx := xi + yi*sx + zi*sx*sy
				d1 := contour(r1[idx])
				d2 := contour(r2[idx])

				v := vm.Get(p)
				d, known := c.ndef.ByID(v.Content)
				isGround := known && d.IsGround

				if d1*d2 > c.caveWidth && isGround {
					vm.Set(p, voxel.Voxel{Content: voxel.Air})
					vm.SetFlags(p, voxel.FlagCheckedCave)
					isTunnel = true
					continue
				}

				if isTunnel && columnIsOpen && (v.Content == b.Filler || v.Content == b.Stone) {
					vm.Set(p, voxel.Voxel{Content: b.Top})
				}
				if v.Content == voxel.Air || v.Content == b.Water {
					columnIsOpen = true
				}
				isTunnel = false
			}
		}
	}
}

func (c *NoiseCave) biomeFor(id uint8) biome.Biome {
	b := c.biomes.ByID(id)
	if b.ID == biome.NoBiome {
		// BIOME_NONE defaults to plain stone everywhere.
		return biome.Biome{Stone: c.stone, Filler: c.stone, Top: c.stone}
	}
	return b
}
