// Package voxel implements the core data model: the Voxel triple, the
// Area linear indexing scheme, and the mutable Manipulator buffer every
// generation pass reads and writes.
package voxel

// Pos is an inclusive integer voxel (node) coordinate.
type Pos struct {
	X, Y, Z int32
}

// Add returns the component-wise sum of two positions.
func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Area is an axis-aligned inclusive integer box, spec.md's VoxelArea.
type Area struct {
	Min, Max Pos
}

// NewArea normalizes min/max so Min <= Max component-wise regardless of
// the order the caller supplied them in.
func NewArea(a, b Pos) Area {
	area := Area{}
	area.Min.X, area.Max.X = minmax(a.X, b.X)
	area.Min.Y, area.Max.Y = minmax(a.Y, b.Y)
	area.Min.Z, area.Max.Z = minmax(a.Z, b.Z)
	return area
}

func minmax(a, b int32) (int32, int32) {
	if a <= b {
		return a, b
	}
	return b, a
}

// StrideY is the linear-index step for one unit of Y.
func (a Area) StrideY() int64 {
	return int64(a.Max.X-a.Min.X) + 1
}

// StrideZ is the linear-index step for one unit of Z.
func (a Area) StrideZ() int64 {
	return a.StrideY() * (int64(a.Max.Y-a.Min.Y) + 1)
}

// Volume is the total voxel count of the area.
func (a Area) Volume() int64 {
	return a.StrideZ() * (int64(a.Max.Z-a.Min.Z) + 1)
}

// Contains reports whether p lies inside the inclusive box.
func (a Area) Contains(p Pos) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Index computes the linear buffer index of p within the area. The
// caller must ensure Contains(p); Index does not bounds-check, matching
// the teacher's hot-path indexing convention of trusting pre-validated
// callers.
func (a Area) Index(p Pos) int64 {
	return int64(p.X-a.Min.X) + int64(p.Y-a.Min.Y)*a.StrideY() + int64(p.Z-a.Min.Z)*a.StrideZ()
}

// SizeX, SizeY, SizeZ return the per-axis voxel extents.
func (a Area) SizeX() int32 { return a.Max.X - a.Min.X + 1 }
func (a Area) SizeY() int32 { return a.Max.Y - a.Min.Y + 1 }
func (a Area) SizeZ() int32 { return a.Max.Z - a.Min.Z + 1 }
