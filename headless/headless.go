// Package headless renders the configured image and surveys the field
// without opening a window.
package headless

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/noise"
	"github.com/pthm-cable/perlin/render"
	"github.com/pthm-cable/perlin/telemetry"
)

// Options override configuration for a single run.
type Options struct {
	Output    string // Image path; empty = config image.output
	OutputDir string // CSV and config snapshot directory; empty = disabled
	Seed      int64  // Non-zero overrides noise.seed
	LogStats  bool
}

// Report describes what a run produced.
type Report struct {
	ImagePath string
	Seed      int64
	Stats     []telemetry.FieldStats // One per dimension, 1 to 3
	Perf      telemetry.PerfStats
}

// Run renders the image, surveys 1D, 2D and 3D statistics and writes outputs.
func Run(cfg *config.Config, opts Options) (*Report, error) {
	seed := cfg.Noise.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}
	table := noise.TableFor(seed)

	field, err := render.NewField(table, cfg.Image.Layers)
	if err != nil {
		return nil, fmt.Errorf("building field: %w", err)
	}

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	path := opts.Output
	if path == "" {
		path = cfg.Image.Output
	}

	precision := cfg.Noise.Precision
	perf := telemetry.NewPerfCollector(1)
	perf.StartFrame()

	perf.StartPhase(telemetry.PhaseRender)
	img := render.Grayscale(field, cfg.Image.Width, cfg.Image.Height, cfg.Derived.UseFloat32)

	perf.StartPhase(telemetry.PhaseEncode)
	if err := render.WriteImage(path, img); err != nil {
		return nil, err
	}
	slog.Info("image written",
		"path", path,
		"width", cfg.Image.Width,
		"height", cfg.Image.Height,
		"layers", len(cfg.Image.Layers),
		"precision", precision,
		"seed", seed,
	)

	report := &Report{ImagePath: path, Seed: seed}

	for dim := 1; dim <= 3; dim++ {
		perf.StartPhase(telemetry.PhaseFor(dim))
		values, err := telemetry.Survey(table, dim, cfg.Derived.UseFloat32, surveyGrid(cfg, dim), cfg.Telemetry.SurveySpan)
		if err != nil {
			return nil, err
		}

		s := telemetry.ComputeFieldStats(values)
		s.Dimension = dim
		s.Precision = precision
		s.Seed = seed
		report.Stats = append(report.Stats, s)

		if opts.LogStats {
			s.LogStats()
		}
		if err := out.WriteStats(s); err != nil {
			return nil, err
		}
	}

	perf.EndFrame()
	report.Perf = perf.Stats()
	if opts.LogStats {
		slog.Info("perf", "stats", report.Perf)
	}
	if err := out.WritePerf(report.Perf, 1); err != nil {
		return nil, err
	}

	return report, nil
}

// surveyGrid keeps the 3D survey near the sample count of the 2D one.
func surveyGrid(cfg *config.Config, dim int) int {
	g := cfg.Telemetry.SurveyGrid
	switch dim {
	case 1:
		return g * g
	case 3:
		if g > 48 {
			return 48
		}
	}
	return g
}
