package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/headless"
	"github.com/pthm-cable/perlin/preview"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headlessMode := flag.Bool("headless", false, "Render the still image and surveys without a window")
	output := flag.String("output", "", "Image path, .bmp or .png (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config snapshot and saved frames")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	seed := flag.Int64("seed", 0, "Permutation seed (0 = use config)")
	maxFrames := flag.Int("max-frames", 0, "Close the preview after N frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *headlessMode {
		report, err := headless.Run(cfg, headless.Options{
			Output:    *output,
			OutputDir: *outputDir,
			Seed:      *seed,
			LogStats:  *logStats,
		})
		if err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		slog.Info("done", "image", report.ImagePath, "seed", report.Seed)
		return
	}

	// Graphical mode
	w, h := preview.WindowSize(cfg)
	rl.InitWindow(w, h, "Perlin Noise")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Preview.TargetFPS))

	v, err := preview.NewViewer(cfg, preview.Options{
		Seed:      *seed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	})
	if err != nil {
		slog.Error("failed to start preview", "error", err)
		return
	}
	defer v.Unload()

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()

		if *maxFrames > 0 && v.Frame() >= *maxFrames {
			slog.Info("max frames reached", "frame", v.Frame())
			break
		}
	}
}
