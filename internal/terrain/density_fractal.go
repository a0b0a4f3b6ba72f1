package terrain

import "mapgencore/internal/noise"

// FractalParams configures the fractal variant's escape-time test:
// scale/offset map voxel coordinates into fractal space, juliaC fixes
// the Julia-set constant (ignored for Mandelbrot), and iterations
// bounds the escape-time loop. Only the 4-D "Roundy" formula is
// wired; the original offers nine interchangeable formulas of the
// same escape-time shape.
type FractalParams struct {
	Scale      [3]float64
	Offset     [3]float64
	SliceW     float64
	Julia      bool
	JuliaC     [4]float64
	Iterations int
}

// NewFractal builds the fractal variant's density function: positive
// (stone) where the point lies inside the configured Mandelbrot or
// Julia set (its orbit does not escape within Iterations steps), or
// where it lies at/below the 2-D seabed height.
func NewFractal(seed uint64, fp FractalParams, seabedParams noise.Params) Variant {
	density := func(x, y, z int32) float64 {
		seabed := noise.Fractal2D(float64(x), float64(z), seed+359, seabedParams)
		if float64(y) <= seabed {
			return 1
		}
		if fractalEscapes(fp, x, y, z) {
			return 1
		}
		return -1
	}
	return Variant{Density: density}
}

func fractalEscapes(fp FractalParams, x, y, z int32) bool {
	var cx, cy, cz, cw, ox, oy, oz, ow float64

	fx := float64(x) / fp.Scale[0]
	fy := float64(y) / fp.Scale[1]
	fz := float64(z) / fp.Scale[2]

	if fp.Julia {
		cx, cy, cz, cw = fp.JuliaC[0], fp.JuliaC[1], fp.JuliaC[2], fp.JuliaC[3]
		ox = fx - fp.Offset[0]
		oy = fy - fp.Offset[1]
		oz = fz - fp.Offset[2]
		ow = fp.SliceW
	} else {
		cx = fx - fp.Offset[0]
		cy = fy - fp.Offset[1]
		cz = fz - fp.Offset[2]
		cw = fp.SliceW
	}

	for i := 0; i < fp.Iterations; i++ {
		nx := ox*ox - oy*oy - oz*oz - ow*ow + cx
		ny := 2.0*(ox*oy+oz*ow) + cy
		nz := 2.0*(ox*oz+oy*ow) + cz
		nw := 2.0*(ox*ow+oy*oz) + cw

		if nx*nx+ny*ny+nz*nz+nw*nw > 4.0 {
			return false
		}
		ox, oy, oz, ow = nx, ny, nz, nw
	}
	return true
}
