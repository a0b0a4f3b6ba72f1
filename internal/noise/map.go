package noise

// Map owns a pre-sized rectangular result buffer and fills it in place,
// so a generator's hot path allocates noise buffers once at
// construction and reuses them for every mapchunk call.
type Map struct {
	seed       uint64
	params     Params
	sx, sy, sz int
	result     []float64
}

// NewMap2D allocates a 2-D bulk-evaluation buffer of size sx*sz.
func NewMap2D(seed uint64, p Params, sx, sz int) *Map {
	return &Map{seed: seed, params: p, sx: sx, sy: 1, sz: sz, result: make([]float64, sx*sz)}
}

// NewMap3D allocates a 3-D bulk-evaluation buffer of size sx*sy*sz.
func NewMap3D(seed uint64, p Params, sx, sy, sz int) *Map {
	return &Map{seed: seed, params: p, sx: sx, sy: sy, sz: sz, result: make([]float64, sx*sy*sz)}
}

// Result returns the buffer filled by the most recent PerlinMap* call.
// The slice is owned by the Map and is overwritten on the next call.
func (m *Map) Result() []float64 { return m.result }

// At indexes Result() using the same (x + y*sx + z*sx*sy) linear scheme
// voxel.Area uses, so callers can share index arithmetic between the
// noise map and the voxel buffer it feeds.
func (m *Map) At(x, y, z int) float64 {
	return m.result[x+y*m.sx+z*m.sx*m.sy]
}

// PerlinMap2D fills the buffer with Fractal2D evaluated at every point
// of the sx*sz rectangle whose minimum corner is (minX, minZ).
func (m *Map) PerlinMap2D(minX, minZ int) {
	idx := 0
	for z := 0; z < m.sz; z++ {
		for x := 0; x < m.sx; x++ {
			m.result[idx] = Fractal2D(float64(minX+x), float64(minZ+z), m.seed, m.params)
			idx++
		}
	}
}

// PerlinMap2DWithPersistMap is PerlinMap2D with a per-column persistence
// override, for variants whose persistence is itself a noise field.
func (m *Map) PerlinMap2DWithPersistMap(minX, minZ int, persistAt func(x, z int) float64) {
	idx := 0
	for z := 0; z < m.sz; z++ {
		for x := 0; x < m.sx; x++ {
			p := m.params
			p.Persistence = float32(persistAt(x, z))
			m.result[idx] = Fractal2D(float64(minX+x), float64(minZ+z), m.seed, p)
			idx++
		}
	}
}

// PerlinMap3D fills the buffer with Fractal3D evaluated at every point
// of the sx*sy*sz box whose minimum corner is (minX, minY, minZ).
func (m *Map) PerlinMap3D(minX, minY, minZ int) {
	idx := 0
	for z := 0; z < m.sz; z++ {
		for y := 0; y < m.sy; y++ {
			for x := 0; x < m.sx; x++ {
				m.result[idx] = Fractal3D(float64(minX+x), float64(minY+y), float64(minZ+z), m.seed, m.params)
				idx++
			}
		}
	}
}
