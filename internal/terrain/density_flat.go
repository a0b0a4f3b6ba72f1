package terrain

// NewFlat builds the flat variant's density function: a fixed
// three-band profile independent of any noise field.
// y ≤ -3 → stone, -3 < y ≤ -1 → dirt (via surface layering), y = 0 →
// grass (via surface layering), else air.
func NewFlat() Variant {
	density := func(x, y, z int32) float64 {
		if y <= 0 {
			return 1
		}
		return -1
	}
	return Variant{Density: density}
}
