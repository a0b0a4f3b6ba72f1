package schematic

import (
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

// Rotation is one of the four Y-axis rotations a schematic can be
// placed under, or RotateRandom to pick one per placement.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
	RotateRandom
)

// ResolveRotation turns RotateRandom into one of the four fixed
// rotations using r; any other value passes through unchanged.
func ResolveRotation(rot Rotation, r *rng.PseudoRandom) Rotation {
	if rot != RotateRandom {
		return rot
	}
	return Rotation(r.Range(0, 3))
}

// Blit writes s into vm at p under rotation rot, sampling placement
// probabilities from r. forcePlacement bypasses the "only AIR/IGNORE
// destination" rule so schematics can overwrite solid ground.
// resolved is the per-name content id table from ResolveContent.
func Blit(s *Schematic, resolved []voxel.Content, vm *voxel.Manipulator, p voxel.Pos, rot Rotation, forcePlacement bool, r *rng.PseudoRandom) {
	sx, sy, sz := int(s.Size.X), int(s.Size.Y), int(s.Size.Z)
	xStride := 1
	yStride := sx
	zStride := sx * sy

	iterSX, iterSZ := sx, sz
	var iStart, iStepX, iStepZ int
	switch rot {
	case Rotate90:
		iStart, iStepX, iStepZ = sx-1, zStride, -xStride
		iterSX, iterSZ = sz, sx
	case Rotate180:
		iStart, iStepX, iStepZ = zStride*(sz-1)+sx-1, -xStride, -zStride
	case Rotate270:
		iStart, iStepX, iStepZ = zStride*(sz-1), -zStride, xStride
		iterSX, iterSZ = sz, sx
	default:
		iStart, iStepX, iStepZ = 0, xStride, zStride
	}

	yMap := p.Y
	for y := 0; y < sy; y++ {
		if s.SliceProb[y] != ProbAlways && r.Range(1, 255) > int(s.SliceProb[y]) {
			yMap++
			continue
		}

		for z := 0; z < iterSZ; z++ {
			i := z*iStepZ + y*yStride + iStart
			for x := 0; x < iterSX; x++ {
				dst := voxel.Pos{X: p.X + int32(x), Y: yMap, Z: p.Z + int32(z)}
				if vm.Area.Contains(dst) {
					placeOne(s, resolved, &s.Nodes[i], vm, dst, rot, forcePlacement, r)
				}
				i += iStepX
			}
		}
		yMap++
	}
}

func placeOne(s *Schematic, resolved []voxel.Content, n *Node, vm *voxel.Manipulator, dst voxel.Pos, rot Rotation, forcePlacement bool, r *rng.PseudoRandom) {
	content := resolved[n.NameIndex]
	if s.Names[n.NameIndex] == "ignore" {
		return
	}
	if n.Param1 == ProbNever {
		return
	}
	if !forcePlacement {
		c := vm.Get(dst).Content
		if c != voxel.Air && c != voxel.Ignore {
			return
		}
	}
	if n.Param1 != ProbAlways && r.Range(1, 255) > int(n.Param1) {
		return
	}

	out := voxel.Voxel{Content: content, Param1: 0, Param2: rotateParam2(n.Param2, rot)}
	vm.Set(dst, out)
}

// rotateParam2 advances a facedir-encoded param2 by the schematic's Y
// rotation. Only the low two bits (the four Y-axis facedir states)
// are rotated; higher bits (wallmounted axis, etc.) pass through.
func rotateParam2(param2 uint8, rot Rotation) uint8 {
	if rot == Rotate0 {
		return param2
	}
	facedir := param2 & 0x03
	rest := param2 &^ 0x03
	steps := uint8(0)
	switch rot {
	case Rotate90:
		steps = 1
	case Rotate180:
		steps = 2
	case Rotate270:
		steps = 3
	}
	return rest | ((facedir + steps) & 0x03)
}
