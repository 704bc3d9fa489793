package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Image.Width != 600 || cfg.Image.Height != 300 {
		t.Errorf("expected 600x300 image, got %dx%d", cfg.Image.Width, cfg.Image.Height)
	}
	if len(cfg.Image.Layers) != 3 {
		t.Fatalf("expected 3 image layers, got %d", len(cfg.Image.Layers))
	}
	if cfg.Derived.ImageWeight != 1.75 {
		t.Errorf("expected image weight 1.75, got %v", cfg.Derived.ImageWeight)
	}
	if cfg.Derived.PreviewWeight != 1.5 {
		t.Errorf("expected preview weight 1.5, got %v", cfg.Derived.PreviewWeight)
	}
	if cfg.Derived.UseFloat32 {
		t.Error("expected float64 precision by default")
	}
	if cfg.Noise.Seed != 0 {
		t.Errorf("expected reference table seed 0, got %d", cfg.Noise.Seed)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	data := []byte(`
noise:
  precision: float32
image:
  width: 128
  layers:
    - scale: 8
      weight: 2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Image.Width != 128 {
		t.Errorf("expected width override 128, got %d", cfg.Image.Width)
	}
	if cfg.Image.Height != 300 {
		t.Errorf("expected default height 300, got %d", cfg.Image.Height)
	}
	if len(cfg.Image.Layers) != 1 || cfg.Image.Layers[0].Scale != 8 {
		t.Errorf("expected layers replaced by user list, got %+v", cfg.Image.Layers)
	}
	if cfg.Derived.ImageWeight != 2 {
		t.Errorf("expected image weight 2, got %v", cfg.Derived.ImageWeight)
	}
	if !cfg.Derived.UseFloat32 {
		t.Error("expected float32 precision")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"precision", "noise:\n  precision: half\n", ErrPrecision},
		{"size", "image:\n  width: 0\n", ErrSize},
		{"texture", "preview:\n  texture_size: -1\n", ErrSize},
		{"empty layers", "image:\n  layers: []\n", ErrLayers},
		{"zero scale", "preview:\n  layers:\n    - scale: 0\n      weight: 1\n", ErrLayers},
		{"zero weight", "image:\n  layers:\n    - scale: 4\n      weight: 0\n", ErrLayers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Noise.Seed = 99

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.Noise.Seed != 99 {
		t.Errorf("expected seed 99, got %d", loaded.Noise.Seed)
	}
	if len(loaded.Preview.Layers) != len(cfg.Preview.Layers) {
		t.Errorf("expected %d preview layers, got %d", len(cfg.Preview.Layers), len(loaded.Preview.Layers))
	}
}

func TestCfgAfterInit(t *testing.T) {
	MustInit("")
	if Cfg().Telemetry.SurveyGrid <= 0 {
		t.Error("expected positive survey grid")
	}
}
