// Package config provides configuration loading and access for the noise tools.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Precision names accepted in configuration.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

var (
	ErrPrecision = errors.New("config: unknown precision")
	ErrSize      = errors.New("config: dimensions must be positive")
	ErrLayers    = errors.New("config: invalid layers")
)

// Config holds all tool configuration parameters.
type Config struct {
	Noise     NoiseConfig     `yaml:"noise"`
	Image     ImageConfig     `yaml:"image"`
	Preview   PreviewConfig   `yaml:"preview"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bounds    BoundsConfig    `yaml:"bounds"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// NoiseConfig selects the permutation table and evaluation precision.
type NoiseConfig struct {
	Seed      int64  `yaml:"seed"`      // 0 = reference permutation
	Precision string `yaml:"precision"` // float32 or float64
}

// LayerConfig is one weighted sampling of the field.
// Pixel coordinates are divided by Scale; z advances at TimeSpeed per second.
type LayerConfig struct {
	Scale     float64 `yaml:"scale"`
	Weight    float64 `yaml:"weight"`
	TimeSpeed float64 `yaml:"time_speed"`
}

// ImageConfig holds still image rendering settings.
type ImageConfig struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Output string        `yaml:"output"` // .bmp or .png
	Layers []LayerConfig `yaml:"layers"`
}

// PreviewConfig holds interactive viewer settings.
type PreviewConfig struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	TargetFPS   int           `yaml:"target_fps"`
	TextureSize int           `yaml:"texture_size"` // Field resolution, stretched to the preview area
	Layers      []LayerConfig `yaml:"layers"`
}

// TelemetryConfig holds field survey and perf parameters.
type TelemetryConfig struct {
	SurveyGrid          int     `yaml:"survey_grid"`           // Samples per axis
	SurveySpan          float64 `yaml:"survey_span"`           // Lattice units covered per axis
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames averaged
}

// BoundsConfig holds the empirical bound search parameters.
type BoundsConfig struct {
	Starts   int     `yaml:"starts"`    // Random starting points per dimension
	MaxEvals int     `yaml:"max_evals"` // Function evaluations per start
	Span     float64 `yaml:"span"`      // Starting points drawn from [0, span)
	Seed     int64   `yaml:"seed"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ImageWeight   float64 // Sum of image layer weights
	PreviewWeight float64 // Sum of preview layer weights
	UseFloat32    bool
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file; a layers list replaces the default list
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Noise.Precision {
	case PrecisionFloat32, PrecisionFloat64:
	default:
		return fmt.Errorf("%w: %q", ErrPrecision, c.Noise.Precision)
	}

	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return fmt.Errorf("%w: image %dx%d", ErrSize, c.Image.Width, c.Image.Height)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 || c.Preview.TextureSize <= 0 {
		return fmt.Errorf("%w: preview %dx%d texture %d", ErrSize, c.Preview.Width, c.Preview.Height, c.Preview.TextureSize)
	}
	if c.Telemetry.SurveyGrid <= 0 {
		return fmt.Errorf("%w: survey grid %d", ErrSize, c.Telemetry.SurveyGrid)
	}

	if err := validateLayers("image", c.Image.Layers); err != nil {
		return err
	}
	return validateLayers("preview", c.Preview.Layers)
}

func validateLayers(name string, layers []LayerConfig) error {
	if len(layers) == 0 {
		return fmt.Errorf("%w: %s has no layers", ErrLayers, name)
	}
	var total float64
	for i, l := range layers {
		if l.Scale <= 0 {
			return fmt.Errorf("%w: %s layer %d scale %v", ErrLayers, name, i, l.Scale)
		}
		total += l.Weight
	}
	if total == 0 {
		return fmt.Errorf("%w: %s weights sum to zero", ErrLayers, name)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ImageWeight = sumWeights(c.Image.Layers)
	c.Derived.PreviewWeight = sumWeights(c.Preview.Layers)
	c.Derived.UseFloat32 = c.Noise.Precision == PrecisionFloat32
}

func sumWeights(layers []LayerConfig) float64 {
	var total float64
	for _, l := range layers {
		total += l.Weight
	}
	return total
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
