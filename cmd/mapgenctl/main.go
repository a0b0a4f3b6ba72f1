// Command mapgenctl drives the generation core over a grid of
// mapchunks and prints a short per-chunk summary: height range, the
// dominant biome, and the liquid-queue length. It exists to exercise
// mapgen.Generator end to end, not as a playable client.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"mapgencore/internal/biome"
	"mapgencore/internal/mapgen"
	"mapgencore/internal/mapgenconfig"
	"mapgencore/internal/mglog"
	"mapgencore/internal/nodedef"
	"mapgencore/internal/profiling"
	"mapgencore/internal/voxel"
)

func main() {
	configPath := flag.String("config", "", "YAML Params preset (defaults to the built-in preset for -variant)")
	variant := flag.String("variant", "v6", "terrain variant when -config is not given")
	seed := flag.Uint64("seed", 1, "world seed")
	gridRadius := flag.Int("grid", 2, "grid radius in chunks, centered on the origin (a (2*grid+1)^2 grid on X/Z, Y fixed at 0)")
	verbose := flag.Bool("v", false, "enable structured logging instead of a no-op logger")
	profile := flag.Bool("profile", false, "print a pass-timing summary across the whole grid after generation")
	flag.Parse()

	if *profile {
		profiling.ResetFrame()
	}

	p, err := loadParams(*configPath, *variant)
	if err != nil {
		log.Fatalf("mapgenctl: %v", err)
	}

	var zlog *zap.Logger
	if *verbose {
		zlog, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("mapgenctl: building logger: %v", err)
		}
		defer zlog.Sync()
	}

	ndef := demoRegistry()
	table := demoBiomes()
	logger := mglog.New(zlog)

	type chunkCoord struct{ cx, cz int32 }
	var coords []chunkCoord
	for cz := -int32(*gridRadius); cz <= int32(*gridRadius); cz++ {
		for cx := -int32(*gridRadius); cx <= int32(*gridRadius); cx++ {
			coords = append(coords, chunkCoord{cx, cz})
		}
	}

	pool := pond.NewPool(runtime.NumCPU())
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	var mu sync.Mutex
	summaries := make([]string, len(coords))

	for i, c := range coords {
		i, c := i, c
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()

			nodeMin := voxel.Pos{X: c.cx * p.ChunkSize, Y: 0, Z: c.cz * p.ChunkSize}
			nodeMax := voxel.Pos{X: nodeMin.X + p.ChunkSize - 1, Y: p.ChunkSize - 1, Z: nodeMin.Z + p.ChunkSize - 1}
			area := voxel.NewArea(
				voxel.Pos{X: nodeMin.X - 16, Y: nodeMin.Y - 48, Z: nodeMin.Z - 16},
				voxel.Pos{X: nodeMax.X + 16, Y: nodeMax.Y + 16, Z: nodeMax.Z + 16},
			)
			vm := voxel.NewManipulator(area)
			queue := &mapgen.SliceQueue{}

			gen := mapgen.New(p, *seed, ndef, table, logger)
			heightmap, biomemap := gen.Generate(vm, nodeMin, nodeMax, queue)

			minH, maxH := heightmap[0], heightmap[0]
			for _, h := range heightmap {
				if h < minH {
					minH = h
				}
				if h > maxH {
					maxH = h
				}
			}
			counts := make(map[uint8]int)
			dominantID := biomemap[0]
			for _, id := range biomemap {
				counts[id]++
				if counts[id] > counts[dominantID] {
					dominantID = id
				}
			}
			dominant := table.ByID(dominantID)

			summary := fmt.Sprintf("chunk(%d,%d): height=[%d,%d] biome=%s liquid_queue=%d",
				c.cx, c.cz, minH, maxH, dominant.Name, len(queue.Items))

			mu.Lock()
			summaries[i] = summary
			mu.Unlock()
		})
	}
	wg.Wait()

	for _, s := range summaries {
		fmt.Println(s)
	}

	if *profile {
		fmt.Printf("profile (%d chunks): %s\n", len(coords), profiling.TopN(6))
	}
}

func loadParams(configPath, variant string) (mapgenconfig.Params, error) {
	if configPath == "" {
		return mapgenconfig.Default(variant), nil
	}
	p, err := mapgenconfig.Load(configPath)
	if err != nil {
		return mapgenconfig.Params{}, err
	}
	return p, nil
}

func demoRegistry() *nodedef.Registry {
	return nodedef.New([]nodedef.Def{
		{ID: 1, Name: "mapgen_stone", IsGround: true},
		{ID: 2, Name: "mapgen_water_source", IsLiquid: true},
		{ID: 3, Name: "mapgen_lava_source", IsLiquid: true},
		{ID: 4, Name: "mapgen_cobble", IsGround: true},
		{ID: 5, Name: "mapgen_mossycobble", IsGround: true},
		{ID: 6, Name: "mapgen_stair_cobble", IsGround: true},
		{ID: 7, Name: "mapgen_desert_stone", IsGround: true},
		{ID: 8, Name: "mapgen_sandstone", IsGround: true},
		{ID: 9, Name: "mapgen_sandstonebrick", IsGround: true},
		{ID: 10, Name: "mapgen_dirt", IsGround: true},
		{ID: 11, Name: "mapgen_dirt_with_grass", IsGround: true},
		{ID: 12, Name: "mapgen_sand", IsGround: true},
	})
}

func demoBiomes() *biome.Table {
	return biome.NewTable([]biome.Biome{
		{
			ID: 1, Name: "plains",
			Top: 11, Filler: 10, Stone: 1, WaterTop: 2, Water: 2,
			DepthTop: 1, DepthFiller: 3,
			YMin: -31000, YMax: 31000,
			HeatPoint: 50, HumidityPoint: 50,
		},
		{
			ID: 2, Name: "desert",
			Top: 12, Filler: 12, Stone: 7, WaterTop: 2, Water: 2,
			DepthTop: 1, DepthFiller: 2,
			YMin: -31000, YMax: 31000,
			HeatPoint: 90, HumidityPoint: 10,
		},
		{
			ID: 3, Name: "tundra",
			Top: 12, Filler: 10, Stone: 1, WaterTop: 2, Water: 2,
			DepthTop: 1, DepthFiller: 1,
			YMin: -31000, YMax: 31000,
			HeatPoint: 5, HumidityPoint: 40,
		},
	})
}
