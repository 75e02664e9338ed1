package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"burn/internal/burn"
	"burn/internal/logger"
)

type paramSet struct {
	spread float64
	ttlMin int
	ttlMax int
	smoke  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("spread=%.3f ttl=[%d,%d] smoke=%.2f", p.spread, p.ttlMin, p.ttlMax, p.smoke)
}

type scenarioResult struct {
	params    paramSet
	runs      int
	saturated int
	meanTicks float64
	meanBurnt float64
	peakSmoke int
}

func main() {
	preset := flag.String("preset", burn.PresetClassic, "base tuning to sweep around")
	rows := flag.Int("rows", 24, "grid rows")
	cols := flag.Int("cols", 80, "grid columns")
	runs := flag.Int("runs", 8, "seeded runs per parameter set")
	limit := flag.Int("limit", 5000, "tick limit per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verbose := flag.Bool("v", false, "verbose development logging")
	flag.Parse()

	l, err := logger.New(logger.Options{Verbose: *verbose})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync()

	base, ok := burn.PresetParams(*preset)
	if !ok {
		l.Fatal("unknown preset", zap.String("preset", *preset))
	}
	baseCfg := burn.DefaultConfig()
	baseCfg.Rows = *rows
	baseCfg.Cols = *cols
	baseCfg.Preset = *preset
	baseCfg.Params = base
	if err := baseCfg.Validate(); err != nil {
		l.Fatal("invalid grid", zap.Error(err))
	}

	spreadOptions := []float64{1.0 / 9, 1.0 / 7, 1.0 / 5, 1.0 / 3}
	ttlOptions := []struct{ min, max int }{
		{min: 3, max: 12},
		{min: 3, max: 25},
		{min: 8, max: 25},
	}
	smokeOptions := []float64{0.1, 1.0 / 3}

	var sets []paramSet
	for _, spread := range spreadOptions {
		for _, ttl := range ttlOptions {
			for _, smoke := range smokeOptions {
				sets = append(sets, paramSet{spread: spread, ttlMin: ttl.min, ttlMax: ttl.max, smoke: smoke})
			}
		}
	}

	l.Info("sweeping",
		zap.Int("sets", len(sets)),
		zap.Int("workers", *workers),
		zap.Int("runs", *runs),
		zap.String("preset", *preset))

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *runs, *limit)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		l.Debug("scenario done",
			zap.Stringer("params", res.params),
			zap.Float64("ticks", res.meanTicks),
			zap.Int("saturated", res.saturated))
	}

	// Sets that reliably saturate first, then the quickest.
	sort.Slice(all, func(i, j int) bool {
		if all[i].saturated != all[j].saturated {
			return all[i].saturated > all[j].saturated
		}
		return all[i].meanTicks < all[j].meanTicks
	})

	fmt.Printf("Results for %dx%d, %d runs each (elapsed %s):\n",
		*rows, *cols, *runs, time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) saturated=%d/%d ticks=%.1f burnt=%.1f%% smokePeak=%d %s\n",
			i+1, res.saturated, res.runs, res.meanTicks, 100*res.meanBurnt, res.peakSmoke, res.params)
	}
}

func runScenario(base burn.Config, params paramSet, runs, limit int) scenarioResult {
	cfg := base
	cfg.Params.SpreadChance = params.spread
	cfg.Params.TTLMin = params.ttlMin
	cfg.Params.TTLMax = params.ttlMax
	cfg.Params.SmokeChance = params.smoke

	res := scenarioResult{params: params, runs: runs}
	var ticks, burnt float64
	for run := 0; run < runs; run++ {
		cfg.Seed = int64(run + 1)
		sim := burn.New(cfg)
		for i := 0; i < limit && !sim.Done(); i++ {
			sim.Step()
			if total := sim.State().Smoke().Total(); total > res.peakSmoke {
				res.peakSmoke = total
			}
		}
		if sim.Saturated() {
			res.saturated++
		}
		ticks += float64(sim.Tick())
		burnt += sim.BurntFraction()
	}
	if runs > 0 {
		res.meanTicks = ticks / float64(runs)
		res.meanBurnt = burnt / float64(runs)
	}
	return res
}
