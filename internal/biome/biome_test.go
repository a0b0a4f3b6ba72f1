package biome

import "testing"

func TestGetBiomeNearestClimateMatch(t *testing.T) {
	tundra := Biome{ID: 1, Name: "tundra", YMin: -100, YMax: 100, HeatPoint: 0, HumidityPoint: 50}
	desert := Biome{ID: 2, Name: "desert", YMin: -100, YMax: 100, HeatPoint: 90, HumidityPoint: 10}
	table := NewTable([]Biome{tundra, desert})

	got := table.GetBiome(5, 45, 0)
	if got.ID != tundra.ID {
		t.Fatalf("expected tundra (closer climate point), got %+v", got)
	}

	got = table.GetBiome(85, 15, 0)
	if got.ID != desert.ID {
		t.Fatalf("expected desert, got %+v", got)
	}
}

func TestGetBiomeRespectsAltitudeBand(t *testing.T) {
	lowland := Biome{ID: 1, Name: "lowland", YMin: -50, YMax: 20, HeatPoint: 50, HumidityPoint: 50}
	alpine := Biome{ID: 2, Name: "alpine", YMin: 21, YMax: 200, HeatPoint: 50, HumidityPoint: 50}
	table := NewTable([]Biome{lowland, alpine})

	if got := table.GetBiome(50, 50, 10); got.ID != lowland.ID {
		t.Fatalf("y=10 should fall in lowland band, got %+v", got)
	}
	if got := table.GetBiome(50, 50, 100); got.ID != alpine.ID {
		t.Fatalf("y=100 should fall in alpine band, got %+v", got)
	}
}

func TestGetBiomeNoneWhenNoBandMatches(t *testing.T) {
	highOnly := Biome{ID: 1, Name: "peak", YMin: 500, YMax: 1000, HeatPoint: 0, HumidityPoint: 0}
	table := NewTable([]Biome{highOnly})

	got := table.GetBiome(0, 0, 0)
	if got.ID != NoBiome {
		t.Fatalf("expected BIOME_NONE sentinel, got %+v", got)
	}
}
