// Package dungeon builds cobble room-and-corridor dungeons inside
// already-generated stone, using a PseudoRandom-driven walker state
// machine.
package dungeon

import (
	"mapgencore/internal/mglog"
	"mapgencore/internal/noise"
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

// Materials names the node ids a dungeon is built from. Distinct
// presets let the schematic-dungeon extension swap in desert or
// sandstone materials without touching the state machine.
type Materials struct {
	Wall        voxel.Content
	MossyWall   voxel.Content
	Stair       voxel.Content
	WaterSource voxel.Content

	HoleSize    voxel.Pos // interior hole carved per corridor step (width, height, depth)
	SmallRoomMin, SmallRoomMax voxel.Pos
	LargeRoomMin, LargeRoomMax voxel.Pos

	// DiagonalDirs lets the walker's ortho-direction draw also land on
	// a diagonal (desert dungeons only).
	DiagonalDirs bool
}

// DefaultMaterials is the plain-cobble preset.
func DefaultMaterials(wall, mossy, stair, water voxel.Content) Materials {
	return Materials{
		Wall: wall, MossyWall: mossy, Stair: stair, WaterSource: water,
		HoleSize:     voxel.Pos{X: 1, Y: 2, Z: 1},
		SmallRoomMin: voxel.Pos{X: 4, Y: 4, Z: 4},
		SmallRoomMax: voxel.Pos{X: 8, Y: 6, Z: 8},
		LargeRoomMin: voxel.Pos{X: 8, Y: 8, Z: 8},
		LargeRoomMax: voxel.Pos{X: 16, Y: 16, Z: 16},
	}
}

// DesertMaterials is the desert-stone preset: solid desert-stone walls,
// diagonal walker directions, a larger 2x3x2 hole, and 2x5x2 rooms.
func DesertMaterials(wall, stair, water voxel.Content) Materials {
	return Materials{
		Wall: wall, MossyWall: wall, Stair: stair, WaterSource: water,
		HoleSize:     voxel.Pos{X: 2, Y: 3, Z: 2},
		SmallRoomMin: voxel.Pos{X: 2, Y: 5, Z: 2},
		SmallRoomMax: voxel.Pos{X: 2, Y: 5, Z: 2},
		LargeRoomMin: voxel.Pos{X: 2, Y: 5, Z: 2},
		LargeRoomMax: voxel.Pos{X: 2, Y: 5, Z: 2},
		DiagonalDirs: true,
	}
}

// SandstoneMaterials is the sandstone-brick preset: 2x2x2 holes and
// 2x0x2 rooms (no mossy ageing — sandstone brick has no mossy variant).
func SandstoneMaterials(wall, stair, water voxel.Content) Materials {
	return Materials{
		Wall: wall, MossyWall: wall, Stair: stair, WaterSource: water,
		HoleSize:     voxel.Pos{X: 2, Y: 2, Z: 2},
		SmallRoomMin: voxel.Pos{X: 2, Y: 0, Z: 2},
		SmallRoomMax: voxel.Pos{X: 2, Y: 0, Z: 2},
		LargeRoomMin: voxel.Pos{X: 2, Y: 0, Z: 2},
		LargeRoomMax: voxel.Pos{X: 2, Y: 0, Z: 2},
	}
}

// Generator places one dungeon per call against an already-filled
// voxel buffer, per the generate() entry point.
type Generator struct {
	seed       uint64
	waterLevel int32
	rarity     noise.Params
	wetness    noise.Params
	density    noise.Params
	log        *mglog.Logger
}

// New constructs a dungeon generator. The three noise recipes drive
// the trigger threshold, the mossy-cobble wetness field, and the
// mossy-cobble density field respectively.
func New(seed uint64, waterLevel int32, rarity, wetness, density noise.Params, log *mglog.Logger) *Generator {
	if log == nil {
		log = mglog.NoOp()
	}
	return &Generator{seed: seed, waterLevel: waterLevel, rarity: rarity, wetness: wetness, density: density, log: log}
}

const startPadding = 16

// Generate attempts to place one dungeon inside [nodeMin, nodeMax] of
// vm. It returns false if the trigger condition isn't met or if the
// walker state machine hits a geometry dead end — both are routine,
// not errors, per the core's silent-abandonment error class.
func (g *Generator) Generate(vm *voxel.Manipulator, blockseed uint32, nodeMin, nodeMax voxel.Pos, mat Materials) bool {
	approxGroundLevel := 10 + g.waterLevel
	if (int32(nodeMin.Y)+int32(nodeMax.Y))/2 >= approxGroundLevel {
		return false
	}
	if noise.Fractal3D(float64(nodeMin.X), float64(nodeMin.Y), float64(nodeMin.Z), g.seed, g.rarity) < 0.2 {
		return false
	}

	w := &walk{
		vm:   vm,
		rng:  rng.New(blockseed + 2),
		mat:  mat,
		area: vm.Area,
	}

	for z := vm.Area.Min.Z; z <= vm.Area.Max.Z; z++ {
		for y := vm.Area.Min.Y; y <= vm.Area.Max.Y; y++ {
			for x := vm.Area.Min.X; x <= vm.Area.Max.X; x++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				v := vm.Get(p)
				if v.Content == voxel.Air || v.Content == mat.WaterSource {
					vm.SetFlags(p, voxel.FlagDungeonPreserve)
				}
			}
		}
	}

	ok := w.makeDungeon(vm.Area.Min.Add(voxel.Pos{X: startPadding, Y: startPadding, Z: startPadding}))
	if !ok {
		g.log.DungeonAbandoned("geometry dead end", nodeMin.X, nodeMin.Y, nodeMin.Z)
	}

	for z := nodeMin.Z; z <= nodeMax.Z; z++ {
		for y := nodeMin.Y; y <= nodeMax.Y; y++ {
			for x := nodeMin.X; x <= nodeMax.X; x++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				if vm.Get(p).Content != mat.Wall {
					continue
				}
				wetness := noise.Fractal3D(float64(x), float64(y), float64(z), g.seed, g.wetness)
				density := noise.Fractal3D(float64(x), float64(y), float64(z), uint64(blockseed), g.density)
				if density < wetness/3.0 {
					vm.Set(p, voxel.Voxel{Content: mat.MossyWall})
				}
			}
		}
	}

	return ok
}
