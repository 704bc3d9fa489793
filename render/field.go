// Package render samples the noise field onto pixel grids and writes images.
package render

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/noise"
)

// Errors returned when building or editing a field.
var (
	ErrNoLayers   = errors.New("render: no layers")
	ErrBadScale   = errors.New("render: layer scale must be positive")
	ErrZeroWeight = errors.New("render: layer weights sum to zero")
)

// Field is a weighted sum of noise samples at several scales, normalised by
// the total weight. Layering is done here, by the caller of the evaluator.
type Field struct {
	table  *noise.Table
	layers []config.LayerConfig
	total  float64
}

// NewField creates a field over table. A nil table selects the reference permutation.
func NewField(table *noise.Table, layers []config.LayerConfig) (*Field, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	var total float64
	for i, l := range layers {
		if l.Scale <= 0 {
			return nil, fmt.Errorf("%w: layer %d has scale %v", ErrBadScale, i, l.Scale)
		}
		total += l.Weight
	}
	if total == 0 {
		return nil, ErrZeroWeight
	}
	if table == nil {
		table = noise.TableFor(0)
	}

	own := make([]config.LayerConfig, len(layers))
	copy(own, layers)

	return &Field{table: table, layers: own, total: total}, nil
}

// Layers returns the field's layers.
func (f *Field) Layers() []config.LayerConfig {
	return f.layers
}

// SetLayer replaces layer i. Used by the preview sliders.
func (f *Field) SetLayer(i int, l config.LayerConfig) error {
	if i < 0 || i >= len(f.layers) {
		return fmt.Errorf("render: layer %d out of range", i)
	}
	if l.Scale <= 0 {
		return fmt.Errorf("%w: layer %d has scale %v", ErrBadScale, i, l.Scale)
	}
	total := f.total - f.layers[i].Weight + l.Weight
	if total == 0 {
		return ErrZeroWeight
	}
	f.layers[i] = l
	f.total = total
	return nil
}

// SetTable swaps the permutation table.
func (f *Field) SetTable(table *noise.Table) {
	f.table = table
}

// Line returns the 1D field at x.
func (f *Field) Line(x float64) float64 {
	var sum float64
	for _, l := range f.layers {
		n := noise.Eval1(f.table, x/l.Scale)
		sum += float64(n * l.Weight)
	}
	return sum / f.total
}

// At returns the 2D field at pixel (x, y) in double precision.
func (f *Field) At(x, y float64) float64 {
	return at2(f, x, y)
}

// At32 returns the 2D field at pixel (x, y) in single precision.
func (f *Field) At32(x, y float32) float32 {
	return at2(f, x, y)
}

// AtTime returns the animated field: 3D noise with z = t * TimeSpeed.
func (f *Field) AtTime(x, y, t float32) float32 {
	var sum float32
	for _, l := range f.layers {
		s := float32(l.Scale)
		n := noise.Eval3(f.table, x/s, y/s, t*float32(l.TimeSpeed))
		sum += float32(n * float32(l.Weight))
	}
	return sum / float32(f.total)
}

func at2[T noise.Float](f *Field, x, y T) T {
	var sum T
	for _, l := range f.layers {
		s := T(l.Scale)
		n := noise.Eval2(f.table, x/s, y/s)
		sum += T(n * T(l.Weight))
	}
	return sum / T(f.total)
}
