package biome

import "mapgencore/internal/noise"

// Gen evaluates four noise fields per column — heat, humidity, and a
// blend field for each — and classifies the result against a Table.
// The blend fields are added to their primary field before
// classification, giving the climate map a second, independently
// shaped layer of variation.
type Gen struct {
	table *Table

	heat          *noise.Map
	heatBlend     *noise.Map
	humidity      *noise.Map
	humidityBlend *noise.Map
}

// NewGen allocates the four per-mapchunk noise buffers sized sx*sz and
// binds them to table for classification.
func NewGen(seed uint64, heatParams, heatBlendParams, humidityParams, humidityBlendParams noise.Params, sx, sz int, table *Table) *Gen {
	return &Gen{
		table:         table,
		heat:          noise.NewMap2D(seed+5349, heatParams, sx, sz),
		heatBlend:     noise.NewMap2D(seed+13, heatBlendParams, sx, sz),
		humidity:      noise.NewMap2D(seed+842, humidityParams, sx, sz),
		humidityBlend: noise.NewMap2D(seed+90003, humidityBlendParams, sx, sz),
	}
}

// CalcBiomes fills the noise buffers for the mapchunk whose minimum
// corner is (minX, minZ) and classifies every column using heightmap
// as the altitude, writing one biome id per column into biomemap
// (length sx*sz, column-major the same way the noise buffers are).
func (g *Gen) CalcBiomes(minX, minZ int, heightmap []int16, biomemap []uint8) {
	g.heat.PerlinMap2D(minX, minZ)
	g.heatBlend.PerlinMap2D(minX, minZ)
	g.humidity.PerlinMap2D(minX, minZ)
	g.humidityBlend.PerlinMap2D(minX, minZ)

	hr := g.heat.Result()
	hbr := g.heatBlend.Result()
	qr := g.humidity.Result()
	qbr := g.humidityBlend.Result()

	for i := range biomemap {
		heat := hr[i] + hbr[i]
		humidity := qr[i] + qbr[i]
		b := g.table.GetBiome(heat, humidity, int32(heightmap[i]))
		biomemap[i] = b.ID
	}
}

// BiomeAt returns the classified biome for a single column without
// consulting the bulk buffers, for callers that already have the
// column's climate values.
func (g *Gen) BiomeAt(heat, humidity float64, y int32) Biome {
	return g.table.GetBiome(heat, humidity, y)
}
