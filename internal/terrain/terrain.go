// Package terrain implements the shared column-fill scaffold and the
// per-variant ground-density functions that drive it: v5, v6, v7,
// flat, fractal, valleys, and watershed.
package terrain

import (
	"mapgencore/internal/biome"
	"mapgencore/internal/mapgenconfig"
	"mapgencore/internal/voxel"
)

// HeightSentinel is the heightmap value for a column where the
// terrain pass placed no stone.
const HeightSentinel int16 = -32768

// DensityFunc evaluates the signed ground density at a lattice point;
// positive means stone, with the seabed/water-level rule handling the
// non-positive case.
type DensityFunc func(x, y, z int32) float64

// Variant is a constructed, ready-to-run terrain generator: a bound
// density function plus whatever per-variant post-passes it runs
// after the shared scaffold.
type Variant struct {
	Density DensityFunc
	Post    func(g *Generator, vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, heightmap []int16)
}

// Generator runs the shared column-fill scaffold, surface layering,
// and dust-topping pass against a constructed Variant.
type Generator struct {
	p       mapgenconfig.Params
	biomes  *biome.Table
	variant Variant

	stone, air, water voxel.Content
}

// New builds a Generator bound to a variant's density function.
func New(p mapgenconfig.Params, biomes *biome.Table, variant Variant, stone, water voxel.Content) *Generator {
	return &Generator{p: p, biomes: biomes, variant: variant, stone: stone, air: voxel.Air, water: water}
}

// FillColumns runs the column-fill scaffold over vm's column range
// [nodeMin.Y-1, nodeMax.Y+1] for every column in [nodeMin.XZ,
// nodeMax.XZ]. It returns the heightmap the caller must feed to
// biome.Gen.CalcBiomes before calling FinishSurfaces — surface
// layering depends on biome classification, which in turn depends on
// the heightmap this pass produces.
func (g *Generator) FillColumns(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos) (heightmap []int16, maxStoneY int32) {
	sx := int(nodeMax.X-nodeMin.X) + 1
	sz := int(nodeMax.Z-nodeMin.Z) + 1
	heightmap = make([]int16, sx*sz)
	maxStoneY = HeightSentinel32

	seabed := int32(g.p.WaterLevel) - 4

	for zi := 0; zi < sz; zi++ {
		z := nodeMin.Z + int32(zi)
		for xi := 0; xi < sx; xi++ {
			x := nodeMin.X + int32(xi)
			col := xi + zi*sx

			surfaceStoneY := HeightSentinel32
			for y := nodeMin.Y - 1; y <= nodeMax.Y+1; y++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				if !vm.Area.Contains(p) {
					continue
				}
				if vm.Get(p).Content != voxel.Ignore {
					continue
				}

				density := g.variant.Density(x, y, z)
				switch {
				case density > 0 || y <= seabed:
					vm.Set(p, voxel.Voxel{Content: g.stone})
					if y > surfaceStoneY {
						surfaceStoneY = y
					}
				case y <= g.p.WaterLevel:
					vm.Set(p, voxel.Voxel{Content: g.water})
				default:
					vm.Set(p, voxel.Voxel{Content: voxel.Air})
				}
			}

			heightmap[col] = clampHeight(surfaceStoneY)
			if surfaceStoneY > maxStoneY {
				maxStoneY = surfaceStoneY
			}
		}
	}

	return heightmap, maxStoneY
}

// FinishSurfaces runs the surface-layering pass (top/filler/stone and
// water_top/water, keyed by the already-classified biomemap), any
// variant-specific post-pass (ridges/rivers), and dust-topping. Call
// after biome.Gen.CalcBiomes has classified heightmap into biomemap.
func (g *Generator) FinishSurfaces(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, heightmap []int16, biomemap []uint8) {
	g.layerSurfaces(vm, nodeMin, nodeMax, biomemap)

	if g.variant.Post != nil {
		g.variant.Post(g, vm, nodeMin, nodeMax, heightmap)
	}

	g.dustTop(vm, nodeMin, nodeMax, biomemap)
}

// HeightSentinel32 is HeightSentinel widened to the int32 domain the
// column scaffold computes in before narrowing to the heightmap.
const HeightSentinel32 = int32(HeightSentinel)

func clampHeight(y int32) int16 {
	if y < int32(HeightSentinel) {
		return HeightSentinel
	}
	if y > 32767 {
		return 32767
	}
	return int16(y)
}

// layerSurfaces walks each column top-down, restarting its layer counts
// at every air voxel, and lays down top/filler or water_top using the
// column's already-classified biome; stone below the filler is kept.
func (g *Generator) layerSurfaces(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, biomemap []uint8) {
	sx := int(nodeMax.X-nodeMin.X) + 1
	sz := int(nodeMax.Z-nodeMin.Z) + 1

	for zi := 0; zi < sz; zi++ {
		z := nodeMin.Z + int32(zi)
		for xi := 0; xi < sx; xi++ {
			x := nodeMin.X + int32(xi)
			col := xi + zi*sx
			b := g.biomes.ByID(biomemap[col])

			topCount, fillerCount, waterTopCount := 0, 0, 0

			for y := nodeMax.Y + 1; y >= nodeMin.Y-1; y-- {
				p := voxel.Pos{X: x, Y: y, Z: z}
				if !vm.Area.Contains(p) {
					continue
				}
				v := vm.Get(p)

				switch v.Content {
				case voxel.Air:
					topCount, fillerCount, waterTopCount = 0, 0, 0
				case g.water:
					if waterTopCount < int(b.DepthWaterTop) {
						vm.Set(p, voxel.Voxel{Content: pick(b.WaterTop, g.water)})
						waterTopCount++
					}
				case g.stone:
					below := voxel.Pos{X: x, Y: y - 1, Z: z}
					unsupported := vm.Area.Contains(below) &&
						(vm.Get(below).Content == voxel.Air || vm.Get(below).Content == g.water)

					switch {
					case topCount < int(b.DepthTop):
						vm.Set(p, voxel.Voxel{Content: pick(b.Top, g.stone)})
						topCount++
						if unsupported {
							topCount = int(b.DepthTop)
						}
					case fillerCount < int(b.DepthFiller):
						vm.Set(p, voxel.Voxel{Content: pick(b.Filler, g.stone)})
						fillerCount++
						if unsupported {
							fillerCount = int(b.DepthFiller)
						}
					}
				}
			}
		}
	}
}

func pick(preferred, fallback voxel.Content) voxel.Content {
	if preferred == 0 {
		return fallback
	}
	return preferred
}

// dustTop walks each column down from the top margin looking for the
// first non-air voxel; if the owning biome wants dust and the voxel
// isn't already dust, places one dust voxel above it when that spot is
// air. The voxel's buildable-to property is not consulted.
func (g *Generator) dustTop(vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, biomemap []uint8) {
	sx := int(nodeMax.X-nodeMin.X) + 1
	sz := int(nodeMax.Z-nodeMin.Z) + 1

	for zi := 0; zi < sz; zi++ {
		z := nodeMin.Z + int32(zi)
		for xi := 0; xi < sx; xi++ {
			x := nodeMin.X + int32(xi)
			col := xi + zi*sx
			b := g.biomes.ByID(biomemap[col])
			if b.Dust == voxel.Ignore || b.Dust == 0 {
				continue
			}

			for y := nodeMax.Y + 1; y >= nodeMin.Y-1; y-- {
				p := voxel.Pos{X: x, Y: y, Z: z}
				if !vm.Area.Contains(p) {
					continue
				}
				v := vm.Get(p)
				if v.Content == voxel.Air {
					continue
				}
				if v.Content == b.Dust {
					break
				}

				above := voxel.Pos{X: x, Y: y + 1, Z: z}
				if vm.Area.Contains(above) && vm.Get(above).Content == voxel.Air {
					vm.Set(above, voxel.Voxel{Content: b.Dust})
				}
				break
			}
		}
	}
}
