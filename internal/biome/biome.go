// Package biome maps a column's climate (heat, humidity) and altitude
// to a registered biome descriptor.
package biome

import "mapgencore/internal/voxel"

// NoBiome is the sentinel returned when no registered biome claims a
// given (heat, humidity, y) — its node ids default to plain stone
// everywhere a pass consults it.
const NoBiome uint8 = 0

// Biome is the external-defined descriptor the generation core
// consumes: surface node ids, layer depths, an altitude band, and a
// climate point.
type Biome struct {
	ID   uint8
	Name string

	Top        voxel.Content
	Filler     voxel.Content
	Stone      voxel.Content
	WaterTop   voxel.Content
	Water      voxel.Content
	RiverWater voxel.Content
	Riverbed   voxel.Content
	Dust       voxel.Content

	DepthTop       uint16
	DepthFiller    uint16
	DepthWaterTop  uint16
	DepthRiverbed  uint16

	YMin, YMax int32

	HeatPoint     float32
	HumidityPoint float32
}

// None is the BIOME_NONE descriptor: no layering, plain stone surface.
var None = Biome{ID: NoBiome, Name: "none", YMin: -31000, YMax: 31000}

// Table is the read-only set of registered biomes a generator is
// constructed with, searched by GetBiome.
type Table struct {
	biomes []Biome
	byID   map[uint8]Biome
}

// NewTable builds a lookup table from the owner's registered biome
// list. GetBiome returns the minimum-distance match; order matters
// only on ties, where the earliest registered biome wins.
func NewTable(biomes []Biome) *Table {
	byID := make(map[uint8]Biome, len(biomes))
	for _, b := range biomes {
		byID[b.ID] = b
	}
	return &Table{biomes: biomes, byID: byID}
}

// ByID returns the biome registered under id, or None if id is
// unknown (including the BIOME_NONE sentinel itself).
func (t *Table) ByID(id uint8) Biome {
	if id == NoBiome {
		return None
	}
	if b, ok := t.byID[id]; ok {
		return b
	}
	return None
}

// GetBiome returns the registered biome minimising squared climate
// distance to (heat, humidity) among those whose altitude band
// contains y, or None if no biome's band contains y.
func (t *Table) GetBiome(heat, humidity float64, y int32) Biome {
	best := None
	bestDist := -1.0
	found := false
	for _, b := range t.biomes {
		if y < b.YMin || y > b.YMax {
			continue
		}
		dh := heat - float64(b.HeatPoint)
		dq := humidity - float64(b.HumidityPoint)
		dist := dh*dh + dq*dq
		if !found || dist < bestDist {
			best, bestDist, found = b, dist, true
		}
	}
	return best
}
