package cave

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mapgencore/internal/nodedef"
	"mapgencore/internal/noise"
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

// RandomWalk carves a small number of large tunnels by walking a
// PseudoRandom-driven route through the chunk and cutting a tapered
// cross-section at each step. Its draw order against the stream is a
// stability contract: reordering these calls reshapes every existing
// cave.
type RandomWalk struct {
	ndef *nodedef.Registry

	stone, air, water, lava voxel.Content
	waterLevel              int32
	liquids                 noise.Params
	seed                    uint64

	// ridgeHeightmap is the v7 ridge/river pass's per-column carved-down-to
	// height, nil for every other variant. Large tunnels probe it to avoid
	// surfacing as a floating cave; see floatsAboveGround.
	ridgeHeightmap []int16
}

// NewRandomWalk constructs a pass bound to the node ids it reads and
// writes. ndef is consulted to decide what counts as ground (stone and
// dirt alike) rather than hardcoding stone equality. liquids is the
// caveliquids point-query noise used to choose lava vs water for
// flooded large-cave floors. ridgeHeightmap is the v7 ridge pass's
// output buffer — pass nil for every variant but v7.
func NewRandomWalk(seed uint64, ndef *nodedef.Registry, stone, air, water, lava voxel.Content, waterLevel int32, liquids noise.Params, ridgeHeightmap []int16) *RandomWalk {
	return &RandomWalk{ndef: ndef, stone: stone, air: air, water: water, lava: lava, waterLevel: waterLevel, liquids: liquids, seed: seed, ridgeHeightmap: ridgeHeightmap}
}

// Carve runs one tunnel for each of large and small cave counts drawn
// from r. nodeMin/nodeMax bound the chunk; sx is the column stride
// ridgeHeightmap is indexed by; maxStoneY is the request's highest
// terrain column, used to bound small-cave start heights.
func (rw *RandomWalk) Carve(vm *voxel.Manipulator, r *rng.PseudoRandom, nodeMin, nodeMax voxel.Pos, sx int, maxStoneY int32, flooded bool) {
	largeCaveCount := 1 + r.Range(0, 2)
	for i := 0; i < largeCaveCount; i++ {
		rw.carveOneTunnel(vm, r, nodeMin, nodeMax, sx, maxStoneY, flooded, true)
	}
	smallCaveCount := r.Range(0, 3)
	for i := 0; i < smallCaveCount; i++ {
		rw.carveOneTunnel(vm, r, nodeMin, nodeMax, sx, maxStoneY, flooded, false)
	}
}

// floatsAboveGround is the v7-only "no floating large caves" guard: it
// probes ridgeHeightmap at a route segment's two endpoints (each offset
// by half the segment's radius, matching the original's sampling point)
// and reports whether either one sits above the recorded ground height.
// A nil ridgeHeightmap (every non-v7 variant) always reports false.
func (rw *RandomWalk) floatsAboveGround(orp, vec mgl32.Vec3, rs float64, nodeMin, nodeMax voxel.Pos, sx int) bool {
	if rw.ridgeHeightmap == nil {
		return false
	}
	half := float32(rs / 2)
	for _, pt := range [2]mgl32.Vec3{orp.Add(vec), orp} {
		px := int32(math.Round(float64(pt[0] + half)))
		py := int32(math.Round(float64(pt[1] + half)))
		pz := int32(math.Round(float64(pt[2] + half)))
		if px >= nodeMin.X && px <= nodeMax.X && pz >= nodeMin.Z && pz <= nodeMax.Z {
			col := int(pz-nodeMin.Z)*sx + int(px-nodeMin.X)
			if int32(rw.ridgeHeightmap[col]) < py {
				return true
			}
		} else if py > rw.waterLevel {
			return true
		}
	}
	return false
}

func (rw *RandomWalk) carveOneTunnel(vm *voxel.Manipulator, r *rng.PseudoRandom, nodeMin, nodeMax voxel.Pos, sx int, maxStoneY int32, flooded, largeCave bool) {
	var minD, maxD int
	var partMaxLen int
	var routepoints int
	if largeCave {
		minD, maxD = 5, 7+r.Range(0, r.Range(8, 24)-7)
		partMaxLen = r.Range(2, 4)
		routepoints = r.Range(5, r.Range(15, 30))
	} else {
		minD, maxD = 2, r.Range(2, 6)
		partMaxLen = r.Range(2, 9)
		routepoints = r.Range(10, r.Range(15, 30))
	}
	dswitchint := r.Range(1, 14)
	largeCaveIsFlat := r.Range(0, 1) == 0

	maxSpread := float64(nodeMax.X - nodeMin.X)
	areaMinX := float64(nodeMin.X) - (maxSpread - float64(maxD)/2 - 10)
	areaMaxX := float64(nodeMax.X) + (maxSpread - float64(maxD)/2 - 10)
	areaMinZ := float64(nodeMin.Z) - (maxSpread - float64(maxD)/2 - 10)
	areaMaxZ := float64(nodeMax.Z) + (maxSpread - float64(maxD)/2 - 10)

	orp := mgl32.Vec3{
		float32(areaMinX + r.Range(0, int(areaMaxX-areaMinX))*1.0),
		0,
		float32(areaMinZ + r.Range(0, int(areaMaxZ-areaMinZ))*1.0),
	}
	if largeCave {
		yMin, yMax := float64(nodeMin.Y), float64(nodeMax.Y)
		if float64(rw.waterLevel) >= yMin && float64(rw.waterLevel) <= yMax {
			orp[1] = float32(rw.waterLevel)
		} else {
			orp[1] = float32(r.Range(int(yMin), int(yMax)))
		}
	} else {
		hi := int(float64(maxStoneY) + float64(maxD)/2 + 7)
		if hi < 1 {
			hi = 1
		}
		orp[1] = float32(r.Range(0, hi))
	}

	mainDirection := mgl32.Vec3{0, 0, 0}

	for i := 0; i < routepoints; i++ {
		if !largeCave && i%dswitchint == 0 {
			mainDirection = mgl32.Vec3{
				float32(r.Range(-1, 1)) / 10,
				float32(r.Range(-1, 1)) / 30,
				float32(r.Range(-1, 1)) / 10,
			}
			mainDirection = mainDirection.Mul(float32(r.Range(0, 10)) / 10)
		}

		rs := r.Range(minD, maxD)

		var maxLen mgl32.Vec3
		if largeCave {
			maxLen = mgl32.Vec3{float32(rs * partMaxLen), float32(rs*partMaxLen) / 2, float32(rs * partMaxLen)}
		} else {
			maxLen = mgl32.Vec3{float32(rs * partMaxLen), float32(r.Range(1, rs*partMaxLen)), float32(rs * partMaxLen)}
		}

		vec := mgl32.Vec3{
			float32(r.Range(0, int(maxLen[0]))) - maxLen[0]/2,
			float32(r.Range(0, int(maxLen[1]))) - maxLen[1]/2,
			float32(r.Range(0, int(maxLen[2]))) - maxLen[2]/2,
		}

		if largeCave && rw.floatsAboveGround(orp, vec, float64(rs), nodeMin, nodeMax, sx) {
			continue
		}

		if !largeCave && r.Range(0, 12) == 0 {
			vec[1] += maxLen[1]
			vec[1] = -vec[1]
		}

		vec = vec.Add(mainDirection)

		rp := orp.Add(vec)
		rp[0] = clamp32(rp[0], float32(areaMinX), float32(areaMaxX))
		rp[1] = clamp32(rp[1], float32(nodeMin.Y), float32(nodeMax.Y))
		rp[2] = clamp32(rp[2], float32(areaMinZ), float32(areaMaxZ))
		vec = rp.Sub(orp)

		randomizeXZ := r.Range(1, 2) == 1

		veclen := vec.Len()
		if veclen < 0.0001 {
			orp = rp
			continue
		}
		steps := int(veclen) + 1
		for s := 0; s <= steps; s++ {
			t := float32(s) / float32(steps)
			cp := orp.Add(vec.Mul(t))
			rw.carveCrossSection(vm, r, cp, float64(rs), randomizeXZ, largeCave, largeCaveIsFlat, flooded, nodeMin, nodeMax)
		}
		orp = rp
	}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (rw *RandomWalk) carveCrossSection(vm *voxel.Manipulator, r *rng.PseudoRandom, cp mgl32.Vec3, rs float64, randomizeXZ, largeCave, largeCaveIsFlat, flooded bool, nodeMin, nodeMax voxel.Pos) {
	d0 := -rs / 2
	d1 := d0 + rs
	if randomizeXZ {
		d0 += float64(r.Range(0, 1))
		d1 += float64(r.Range(0, 1))
	}

	startpY := cp[1]

	for z0 := d0; z0 <= d1; z0++ {
		si := rs/2 - math.Max(0, math.Abs(z0)-rs/7-1)
		loX := -si - float64(r.Range(0, 1))
		hiX := si - 1 + float64(r.Range(0, 1))
		for x0 := loX; x0 <= hiX; x0++ {
			si2 := rs/2 - math.Max(0, math.Max(math.Abs(x0), math.Abs(z0))-rs/7-1)
			for y0 := -si2; y0 <= si2; y0++ {
				if largeCaveIsFlat && rs > 7 && math.Abs(y0) >= rs/3 {
					continue
				}

				p := voxel.Pos{
					X: int32(math.Round(float64(cp[0]) + x0)),
					Y: int32(math.Round(float64(cp[1]) + y0)),
					Z: int32(math.Round(float64(cp[2]) + z0)),
				}
				if !vm.Area.Contains(p) {
					continue
				}

				v := vm.Get(p)
				d, known := rw.ndef.ByID(v.Content)
				if !known || !d.IsGround {
					continue
				}

				if !largeCave {
					vm.Set(p, voxel.Voxel{Content: voxel.Air})
					vm.SetFlags(p, voxel.FlagCheckedCave)
					continue
				}

				fill := rw.largeCaveFill(p, startpY, flooded, nodeMin, nodeMax)
				vm.Set(p, voxel.Voxel{Content: fill})
				if fill == voxel.Air {
					vm.SetFlags(p, voxel.FlagCheckedCave)
				}
			}
		}
	}
}

// largeCaveFill picks the large-cave floor content at p. Unflooded
// tunnels get air. Where the tunnel straddles the water table, p gets
// water at/below water level and air above it. Where the chunk lies
// entirely below the water table, p gets liquid only more than 2 below
// the tunnel start (lava where the caveliquids point sample clears the
// 0.40 threshold, water otherwise) and air elsewhere.
func (rw *RandomWalk) largeCaveFill(p voxel.Pos, startpY float32, flooded bool, nodeMin, nodeMax voxel.Pos) voxel.Content {
	if !flooded {
		return voxel.Air
	}

	straddles := int32(startpY) < rw.waterLevel && nodeMax.Y >= rw.waterLevel
	entirelyBelow := nodeMax.Y < rw.waterLevel

	switch {
	case straddles:
		if p.Y <= rw.waterLevel {
			return rw.water
		}
		return voxel.Air
	case entirelyBelow:
		if p.Y < int32(startpY)-2 {
			liquid := noise.Fractal3D(float64(p.X), float64(p.Y), float64(p.Z), rw.seed, rw.liquids)
			if liquid > 0.40 {
				return rw.lava
			}
			return rw.water
		}
		return voxel.Air
	default:
		return voxel.Air
	}
}
