// Package mapgenconfig holds the per-variant configuration object: the
// flag word, shared tunables, variant-specific noise recipes, and the
// two serialized forms a deployment needs — a human-editable YAML
// preset and a fixed-layout binary NoiseParams round trip.
package mapgenconfig

import "mapgencore/internal/noise"

// Params is the single configuration object a generator is
// constructed from: chunk geometry, water level, the flag word, the
// variant-specific floats, and every NoiseParams the variant needs.
type Params struct {
	Variant string `yaml:"variant"`

	ChunkSize  int32 `yaml:"chunk_size"`
	WaterLevel int32 `yaml:"water_level"`
	Flags      Flags `yaml:"flags"`

	CaveWidth     float64 `yaml:"cave_width"`
	RiverSize     float64 `yaml:"river_size"`
	AltitudeChill float64 `yaml:"altitude_chill"`
	LargeCaveDepth float64 `yaml:"large_cave_depth"`
	CaveWaterHeight float64 `yaml:"cave_water_height"`
	LavaMaxHeight   float64 `yaml:"lava_max_height"`
	DungeonYMin     int32   `yaml:"dungeon_y_min"`
	DungeonYMax     int32   `yaml:"dungeon_y_max"`

	NoiseTerrain      noise.Params `yaml:"noise_terrain"`
	NoiseTerrainHigher noise.Params `yaml:"noise_terrain_higher"`
	NoiseTerrainPersist noise.Params `yaml:"noise_terrain_persist"`
	NoiseFillerDepth  noise.Params `yaml:"noise_filler_depth"`
	NoiseMountain     noise.Params `yaml:"noise_mountain"`
	NoiseRidge        noise.Params `yaml:"noise_ridge"`
	NoiseSeabed       noise.Params `yaml:"noise_seabed"`
	NoiseCave1        noise.Params `yaml:"noise_cave1"`
	NoiseCave2        noise.Params `yaml:"noise_cave2"`
	NoiseCaveLiquids  noise.Params `yaml:"noise_cave_liquids"`
	NoiseHeat         noise.Params `yaml:"noise_heat"`
	NoiseHeatBlend    noise.Params `yaml:"noise_heat_blend"`
	NoiseHumidity     noise.Params `yaml:"noise_humidity"`
	NoiseHumidityBlend noise.Params `yaml:"noise_humidity_blend"`

	// Dungeon trigger and mossy-cobble ageing fields (shared by every
	// variant's DungeonGen pass).
	NoiseDungeonRarity  noise.Params `yaml:"noise_dungeon_rarity"`
	NoiseDungeonWetness noise.Params `yaml:"noise_dungeon_wetness"`
	NoiseDungeonDensity noise.Params `yaml:"noise_dungeon_density"`

	// v5-only: the stretch factor blended against NoiseTerrain's height
	// field and NoiseMountain's ground-density field.
	NoiseFactor noise.Params `yaml:"noise_factor"`

	// v6-only: base_rock_level_2d's steepness and base/higher selector
	// fields (NoiseTerrain/NoiseTerrainHigher double as base/higher).
	NoiseSteepness   noise.Params `yaml:"noise_steepness"`
	NoiseHeightSelect noise.Params `yaml:"noise_height_select"` // shared with v7

	// v7-only: the alternate height field paired with NoiseTerrain, and
	// the per-column 2-D mountain-height field (NoiseMountain is the 3-D
	// mountain density field, shared with watershed).
	NoiseTerrainAlt   noise.Params `yaml:"noise_terrain_alt"`
	NoiseMountainHeight noise.Params `yaml:"noise_mountain_height"`

	// v7 ridge/river post-pass.
	NoiseUnderwater noise.Params `yaml:"noise_underwater"`

	// fractal variant: the escape-time formula's fixed parameters plus
	// the 2-D seabed height field (NoiseSeabed is shared).
	FractalScale      [3]float64 `yaml:"fractal_scale"`
	FractalOffset     [3]float64 `yaml:"fractal_offset"`
	FractalSliceW     float64    `yaml:"fractal_slicew"`
	FractalJulia      bool       `yaml:"fractal_julia"`
	FractalJuliaC     [4]float64 `yaml:"fractal_julia_c"`
	FractalIterations int        `yaml:"fractal_iterations"`

	// valleys variant (NoiseTerrain doubles as terrain_height).
	NoiseValleysRiver   noise.Params `yaml:"noise_valleys_river"`
	NoiseValleysDepth   noise.Params `yaml:"noise_valleys_depth"`
	NoiseValleysProfile noise.Params `yaml:"noise_valleys_profile"`
	NoiseValleysSlope   noise.Params `yaml:"noise_valleys_slope"`
	NoiseValleysFill    noise.Params `yaml:"noise_valleys_fill"`
	RiverDepth          float64      `yaml:"river_depth"`

	// watershed variant (NoiseRidge and NoiseMountain are shared).
	NoiseWatershedValleyBase noise.Params `yaml:"noise_watershed_valley_base"`
	NoiseWatershedValley     noise.Params `yaml:"noise_watershed_valley"`
	NoiseWatershedValleyAmp  noise.Params `yaml:"noise_watershed_valley_amp"`
	NoiseWatershedPlateau    noise.Params `yaml:"noise_watershed_plateau"`
	NoiseWatershedMountainAmp noise.Params `yaml:"noise_watershed_mountain_amp"`
}

// Default returns a Params with sane defaults for the given variant
// name, ready to be overridden field-by-field or via YAML.
func Default(variant string) Params {
	return Params{
		Variant:         variant,
		ChunkSize:       16,
		WaterLevel:      1,
		Flags:           FlagCaves | FlagDungeons | FlagDecorations | FlagLight,
		CaveWidth:       0.09,
		RiverSize:       0.05,
		AltitudeChill:   1.0,
		LargeCaveDepth:  -33,
		CaveWaterHeight: 0,
		LavaMaxHeight:   -256,
		DungeonYMin:     -31000,
		DungeonYMax:     31000,
	}
}
