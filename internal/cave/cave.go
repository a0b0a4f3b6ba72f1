package cave

import (
	"mapgencore/internal/biome"
	"mapgencore/internal/mapgenconfig"
	"mapgencore/internal/nodedef"
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

// Generator wires the two carving passes together in the order the
// configured variant expects. Only mapgen_v6 omits the noise-cave
// pass entirely; every other variant runs both, noise-cave first.
type Generator struct {
	noiseCave  *NoiseCave
	randomWalk *RandomWalk
	skipNoise  bool
}

// New builds a Generator from a resolved configuration. stone/air/
// water/lava are the node ids both passes read and write; sy is the
// chunk's node height (NewNoiseCave's +1 row is added internally).
// ridgeHeightmap is the mapgen's v7 ridge-pass output buffer, consulted
// by the large-cave random walk to avoid carving floating caves above
// a carved river bed — pass nil for every variant but v7.
func New(p mapgenconfig.Params, seed uint64, sx, sy, sz int, ndef *nodedef.Registry, biomes *biome.Table, stone, water, lava voxel.Content, ridgeHeightmap []int16) *Generator {
	g := &Generator{
		randomWalk: NewRandomWalk(seed, ndef, stone, voxel.Air, water, lava, p.WaterLevel, p.NoiseCaveLiquids, ridgeHeightmap),
		skipNoise:  p.Variant == "v6",
	}
	if !g.skipNoise {
		g.noiseCave = NewNoiseCave(seed, p.NoiseCave1, p.NoiseCave2, sx, sy+1, sz, ndef, biomes, p.CaveWidth, stone)
	}
	return g
}

// Carve runs the configured passes over vm. r is the cave-specific
// PseudoRandom stream (blockseed-derived, distinct from the dungeon
// stream) that the random-walk pass consumes in a fixed draw order.
// biomemap gives the noise-cave pass per-column biome context
// (heightmap is passed through to it but not read);
// maxStoneY gates the noise-cave pass, flooded gates liquid placement
// in the random-walk pass's large tunnels.
func (g *Generator) Carve(vm *voxel.Manipulator, r *rng.PseudoRandom, nodeMin, nodeMax voxel.Pos, sx, sz int, heightmap []int16, biomemap []uint8, maxStoneY int32, flooded bool) {
	if g.noiseCave != nil {
		g.noiseCave.Carve(vm, nodeMin, nodeMax, sx, sz, heightmap, biomemap, maxStoneY)
	}
	g.randomWalk.Carve(vm, r, nodeMin, nodeMax, sx, maxStoneY, flooded)
}
