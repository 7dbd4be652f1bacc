package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"glpi-insights/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "mild", "Scenario to generate: mild, chaos, drift")
	distribution := flag.String("distribution", "uniform", "Resolution time distribution: uniform, weibull")
	out := flag.String("out", "./.cache/glpi.csv", "Output file (gzip when ending in .gz)")
	count := flag.Int("count", 500, "Number of tickets to generate")
	months := flag.Int("months", 6, "Months of history")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario:     *scenario,
		Distribution: *distribution,
		Count:        *count,
		Months:       *months,
		Seed:         *seed,
		Now:          time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (Distribution: %s, Count: %d) to %s...\n", cfg.Scenario, cfg.Distribution, cfg.Count, *out)

	if err := engine.Save(*out, engine.Generate(cfg)); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
