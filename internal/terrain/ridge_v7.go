package terrain

import (
	"math"

	"mapgencore/internal/noise"
	"mapgencore/internal/voxel"
)

// NewV7RidgePost builds the v7 ridge/river post-pass: for columns
// whose base heightmap clears water_level-16, it carves a river band
// wherever a 3-D ridge field combined with the column's distance from
// the river centerline clears a 0.6 threshold, replacing stone with
// air above water level or water at/below it. ridgeHeightmap is reset
// to heightmap on every call, then lowered in place to one below the
// lowest y carved per column.
func NewV7RidgePost(seed uint64, waterLevel int32, uwaterParams, ridgeParams noise.Params, water voxel.Content, ridgeHeightmap []int16) func(g *Generator, vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, heightmap []int16) {
	const width = 0.2

	return func(g *Generator, vm *voxel.Manipulator, nodeMin, nodeMax voxel.Pos, heightmap []int16) {
		copy(ridgeHeightmap, heightmap)
		if nodeMax.Y < waterLevel-16 {
			return
		}

		sx := int(nodeMax.X-nodeMin.X) + 1
		sz := int(nodeMax.Z-nodeMin.Z) + 1

		for zi := 0; zi < sz; zi++ {
			z := nodeMin.Z + int32(zi)
			for xi := 0; xi < sx; xi++ {
				x := nodeMin.X + int32(xi)
				col := xi + zi*sx
				if int32(heightmap[col]) < waterLevel-16 {
					continue
				}

				uwater := noise.Fractal2D(float64(x), float64(z), seed+85039, uwaterParams) * 2
				if math.Abs(uwater) > width {
					continue
				}
				widthMod := width - math.Abs(uwater)

				for y := nodeMin.Y - 1; y <= nodeMax.Y+1; y++ {
					p := voxel.Pos{X: x, Y: y, Z: z}
					if !vm.Area.Contains(p) {
						continue
					}

					altitude := float64(y - waterLevel)
					heightMod := (altitude + 17) / 2.5
					nridge := noise.Fractal3D(float64(x), float64(y), float64(z), seed+6467, ridgeParams) * math.Max(altitude, 0) / 7.0

					if nridge+widthMod*heightMod < 0.6 {
						continue
					}

					if y <= waterLevel {
						vm.Set(p, voxel.Voxel{Content: water})
					} else {
						vm.Set(p, voxel.Voxel{Content: voxel.Air})
					}

					if ridgeHeightmap != nil && int32(ridgeHeightmap[col]) > y-1 {
						ridgeHeightmap[col] = clampHeight(y - 1)
					}
				}
			}
		}
	}
}
