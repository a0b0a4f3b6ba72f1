// Package mapgen is the top-level generation entry point: it sequences
// the terrain, biome, cave, and dungeon passes over one mapchunk per
// §6.1's control flow and exposes the resulting heightmap/biomemap to
// the caller.
package mapgen

import (
	"fmt"
	"strings"

	"mapgencore/internal/biome"
	"mapgencore/internal/cave"
	"mapgencore/internal/dungeon"
	"mapgencore/internal/mapgenconfig"
	"mapgencore/internal/mglog"
	"mapgencore/internal/nodedef"
	"mapgencore/internal/profiling"
	"mapgencore/internal/rng"
	"mapgencore/internal/terrain"
	"mapgencore/internal/voxel"
)

// maxMapGenerationLimit bounds the node coordinates a request may
// name; a request outside it is a caller-contract violation.
const maxMapGenerationLimit = 31000

// PostPass is the hook external ore, decoration, and lighting passes
// implement to run after Generate's core work, without the core
// importing or implementing their algorithms.
type PostPass interface {
	Run(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, heightmap []int16, biomemap []uint8)
}

// LiquidQueue receives every water_source/lava_source position the
// core finds bordering AIR vertically. Duplicates are permitted —
// the consumer is expected to be idempotent.
type LiquidQueue interface {
	Push(p voxel.Pos)
}

// SliceQueue is the simplest LiquidQueue: an in-memory, duplicate-
// permitting slice, suitable for tests and the demo CLI.
type SliceQueue struct {
	Items []voxel.Pos
}

func (q *SliceQueue) Push(p voxel.Pos) { q.Items = append(q.Items, p) }

// Generator is one configured, seeded mapchunk generator. It is not
// safe for concurrent use: Generate writes into the generator's own
// biome and noise-cave noise buffers and its ridge-heightmap buffer,
// so concurrent calls need one Generator each.
type Generator struct {
	p    mapgenconfig.Params
	seed uint64

	ndef   *nodedef.Registry
	biomes *biome.Table
	log    *mglog.Logger

	stone, water, lava voxel.Content

	bgen       *biome.Gen
	terrainGen *terrain.Generator
	caveGen    *cave.Generator
	dungeonGen *dungeon.Generator

	defaultMat, desertMat, sandstoneMat dungeon.Materials

	ridgeHeightmap []int16
	postPasses     []PostPass
}

// New constructs a Generator from a resolved variant configuration, a
// node registry (resolved once here, with degraded fallbacks logged
// via log), and a biome table. log may be nil (a no-op logger is
// used). Panics if ndef is nil — a nil registry is a programmer
// contract violation, not a recoverable condition.
func New(p mapgenconfig.Params, seed uint64, ndef *nodedef.Registry, biomes *biome.Table, log *mglog.Logger) *Generator {
	if ndef == nil {
		panic("mapgen: nil node registry")
	}
	if log == nil {
		log = mglog.NoOp()
	}

	stone := resolveLogged(ndef, log, "mapgen_stone")
	water := resolveLogged(ndef, log, "mapgen_water_source")
	lava := resolveLogged(ndef, log, "mapgen_lava_source")
	cobble := resolveLogged(ndef, log, "mapgen_cobble")
	mossyCobble := resolveLogged(ndef, log, "mapgen_mossycobble", nodedef.MossyCobbleFallback...)
	stairCobble := resolveLogged(ndef, log, "mapgen_stair_cobble", nodedef.StairCobbleFallback...)
	desertStone := resolveLogged(ndef, log, "mapgen_desert_stone")
	stairDesertStone := resolveLogged(ndef, log, "mapgen_stair_desert_stone", nodedef.StairDesertStoneBlock...)
	sandstone := resolveLogged(ndef, log, "mapgen_sandstone")
	sandstoneBrick := resolveLogged(ndef, log, "mapgen_sandstonebrick", nodedef.SandstoneBrickFallback...)

	sx := int(p.ChunkSize)
	sz := int(p.ChunkSize)

	bgen := biome.NewGen(seed, p.NoiseHeat, p.NoiseHeatBlend, p.NoiseHumidity, p.NoiseHumidityBlend, sx, sz, biomes)

	ridgeHeightmap := make([]int16, sx*sz)
	variant := terrain.Build(p, seed, water, ridgeHeightmap)
	terrainGen := terrain.New(p, biomes, variant, stone, water)

	var caveRidgeHeightmap []int16
	if p.Variant == "v7" && p.Flags.Has(mapgenconfig.FlagRidges) {
		caveRidgeHeightmap = ridgeHeightmap
	}
	caveGen := cave.New(p, seed, sx, int(p.ChunkSize), sz, ndef, biomes, stone, water, lava, caveRidgeHeightmap)

	dungeonGen := dungeon.New(seed, p.WaterLevel, p.NoiseDungeonRarity, p.NoiseDungeonWetness, p.NoiseDungeonDensity, log)

	return &Generator{
		p: p, seed: seed, ndef: ndef, biomes: biomes, log: log,
		stone: stone, water: water, lava: lava,
		bgen: bgen, terrainGen: terrainGen, caveGen: caveGen, dungeonGen: dungeonGen,
		defaultMat:     dungeon.DefaultMaterials(cobble, mossyCobble, stairCobble, water),
		desertMat:      dungeon.DesertMaterials(desertStone, stairDesertStone, water),
		sandstoneMat:   dungeon.SandstoneMaterials(sandstoneBrick, stairCobble, water),
		ridgeHeightmap: ridgeHeightmap,
	}
}

// AddPostPass registers an external pass (ore, decoration, lighting)
// to run after Generate's core work, in registration order.
func (g *Generator) AddPostPass(pass PostPass) {
	g.postPasses = append(g.postPasses, pass)
}

// Generate runs the full C1-C5 pipeline over [nodeMin, nodeMax] of vm:
// fill columns, classify biomes from the resulting heightmap, layer
// surfaces, carve caves, place a dungeon, append liquid-queue entries,
// and run any registered post-passes. It returns the heightmap and
// biomemap, borrowed and valid until the next Generate call on this
// Generator.
//
// Panics on a caller-contract violation: vm too small for the
// requested region, or a region outside the supported coordinate
// range or the generator's configured chunk size.
func (g *Generator) Generate(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, queue LiquidQueue) (heightmap []int16, biomemap []uint8) {
	defer profiling.Track("mapgen.Generate")()

	g.validate(vm, nodeMin, nodeMax)

	blockseed := rng.BlockSeed(g.seed, nodeMin.X, nodeMin.Y, nodeMin.Z)

	heightmap, maxStoneY := g.timedFillColumns(vm, nodeMin, nodeMax)

	sx := int(nodeMax.X-nodeMin.X) + 1
	sz := int(nodeMax.Z-nodeMin.Z) + 1
	biomemap = make([]uint8, sx*sz)
	func() {
		defer profiling.Track("mapgen.CalcBiomes")()
		g.bgen.CalcBiomes(int(nodeMin.X), int(nodeMin.Z), heightmap, biomemap)
	}()

	func() {
		defer profiling.Track("mapgen.FinishSurfaces")()
		g.terrainGen.FinishSurfaces(vm, nodeMin, nodeMax, heightmap, biomemap)
	}()

	if g.p.Flags.Has(mapgenconfig.FlagCaves) {
		func() {
			defer profiling.Track("mapgen.Carve")()
			flooded := nodeMax.Y < g.p.WaterLevel
			caveRNG := rng.New(blockseed)
			g.caveGen.Carve(vm, caveRNG, nodeMin, nodeMax, sx, sz, heightmap, biomemap, maxStoneY, flooded)
		}()
	}

	if g.p.Flags.Has(mapgenconfig.FlagDungeons) {
		func() {
			defer profiling.Track("mapgen.DungeonGenerate")()
			mat := g.dungeonMaterialsFor(biomemap)
			g.dungeonGen.Generate(vm, blockseed, nodeMin, nodeMax, mat)
		}()
	}

	func() {
		defer profiling.Track("mapgen.LiquidQueue")()
		g.appendLiquidQueue(vm, nodeMin, nodeMax, queue)
	}()

	for _, pass := range g.postPasses {
		pass.Run(vm, nodeMin, nodeMax, heightmap, biomemap)
	}

	return heightmap, biomemap
}

func (g *Generator) timedFillColumns(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos) (heightmap []int16, maxStoneY int32) {
	defer profiling.Track("mapgen.FillColumns")()
	return g.terrainGen.FillColumns(vm, nodeMin, nodeMax)
}

func (g *Generator) validate(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos) {
	if !vm.Area.Contains(nodeMin) || !vm.Area.Contains(nodeMax) {
		panic("mapgen: vm area too small for requested region")
	}
	for _, p := range [2]voxel.Pos{nodeMin, nodeMax} {
		if p.X < -maxMapGenerationLimit || p.X > maxMapGenerationLimit ||
			p.Y < -maxMapGenerationLimit || p.Y > maxMapGenerationLimit ||
			p.Z < -maxMapGenerationLimit || p.Z > maxMapGenerationLimit {
			panic("mapgen: requested region outside the supported coordinate range")
		}
	}
	sx := nodeMax.X - nodeMin.X + 1
	sz := nodeMax.Z - nodeMin.Z + 1
	if sx != g.p.ChunkSize || sz != g.p.ChunkSize {
		panic(fmt.Sprintf("mapgen: requested region %dx%d does not match configured chunk size %d", sx, sz, g.p.ChunkSize))
	}
}

func (g *Generator) dungeonMaterialsFor(biomemap []uint8) dungeon.Materials {
	if len(biomemap) == 0 {
		return g.defaultMat
	}
	b := g.biomes.ByID(biomemap[0])
	switch {
	case strings.Contains(b.Name, "desert"):
		return g.desertMat
	case strings.Contains(b.Name, "sandstone"):
		return g.sandstoneMat
	default:
		return g.defaultMat
	}
}

func (g *Generator) appendLiquidQueue(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, queue LiquidQueue) {
	if queue == nil {
		return
	}
	for z := nodeMin.Z; z <= nodeMax.Z; z++ {
		for y := nodeMin.Y; y <= nodeMax.Y; y++ {
			for x := nodeMin.X; x <= nodeMax.X; x++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				c := vm.Get(p).Content
				if c != g.water && c != g.lava {
					continue
				}
				above := voxel.Pos{X: x, Y: y + 1, Z: z}
				below := voxel.Pos{X: x, Y: y - 1, Z: z}
				bordersAir := (vm.Area.Contains(above) && vm.Get(above).Content == voxel.Air) ||
					(vm.Area.Contains(below) && vm.Get(below).Content == voxel.Air)
				if bordersAir {
					queue.Push(p)
				}
			}
		}
	}
}

// resolveLogged resolves preferred against ndef, trying fallbacks in
// order, and logs once (at construction, unless fallback logging is
// switched off via mapgenconfig.SetLogFallbacks) whenever the direct
// name wasn't available — including the final degrade-to-AIR case.
func resolveLogged(ndef *nodedef.Registry, log *mglog.Logger, preferred string, fallbacks ...string) voxel.Content {
	if d, ok := ndef.Lookup(preferred); ok {
		return d.ID
	}
	logOn := mapgenconfig.GetLogFallbacks()
	for _, fb := range fallbacks {
		if d, ok := ndef.Lookup(fb); ok {
			if logOn {
				log.FallbackUsed(preferred, fb)
			}
			return d.ID
		}
	}
	if logOn {
		log.FallbackUsed(preferred, "air")
	}
	return voxel.Air
}
