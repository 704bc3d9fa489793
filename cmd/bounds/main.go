// Package main searches for the largest noise magnitudes reachable in each
// dimension, as an empirical check of the [-1, 1] output range.
//
// Usage: go run ./cmd/bounds -output results/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/noise"
)

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	starts := flag.Int("starts", 0, "Random starting points per dimension (0 = use config)")
	maxEvals := flag.Int("max-evals", 0, "Function evaluations per start (0 = use config)")
	seed := flag.Int64("seed", 0, "Permutation seed (0 = use config)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	bounds := cfg.Bounds
	if *starts > 0 {
		bounds.Starts = *starts
	}
	if *maxEvals > 0 {
		bounds.MaxEvals = *maxEvals
	}
	tableSeed := cfg.Noise.Seed
	if *seed != 0 {
		tableSeed = *seed
	}

	searcher := NewSearcher(noise.TableFor(tableSeed), bounds, cfg.Derived.UseFloat32)

	fmt.Printf("Searching %d starts per dimension, max_evals=%d, precision=%s, seed=%d\n",
		bounds.Starts, bounds.MaxEvals, cfg.Noise.Precision, tableSeed)

	startTime := time.Now()
	var all []Result
	for dim := 1; dim <= 3; dim++ {
		results, err := searcher.Search(dim)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		all = append(all, results...)

		if best, ok := Best(results); ok {
			fmt.Printf("%dD: max |noise| = %.6f at (%.4f, %.4f, %.4f) | elapsed: %s\n",
				dim, best.Abs, best.X, best.Y, best.Z, formatDuration(time.Since(startTime)))
		}
	}

	outPath := filepath.Join(*outputDir, "bounds.csv")
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create results file: %v", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&all, f); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}

	configOutPath := filepath.Join(*outputDir, "config.yaml")
	if err := cfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write config: %v", err)
	}

	fmt.Printf("\nSearch complete in %s, results saved to: %s\n", formatDuration(time.Since(startTime)), outPath)
}
