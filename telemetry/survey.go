package telemetry

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/perlin/noise"
)

// ErrDimension is returned for dimensions other than 1, 2 and 3.
var ErrDimension = errors.New("telemetry: dimension must be 1, 2 or 3")

// Survey evaluates noise on a regular grid of grid points per axis covering
// span lattice units, sampling at cell centres. The returned slice has
// grid^dim values in row-major order.
func Survey(table *noise.Table, dim int, useFloat32 bool, grid int, span float64) ([]float64, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dim)
	}
	if grid <= 0 {
		return nil, fmt.Errorf("telemetry: survey grid must be positive, got %d", grid)
	}
	if useFloat32 {
		return survey[float32](table, dim, grid, span), nil
	}
	return survey[float64](table, dim, grid, span), nil
}

func survey[T noise.Float](table *noise.Table, dim, grid int, span float64) []float64 {
	step := span / float64(grid)
	coord := func(i int) T {
		return T((float64(i) + 0.5) * step)
	}

	switch dim {
	case 1:
		out := make([]float64, 0, grid)
		for i := 0; i < grid; i++ {
			out = append(out, float64(noise.Eval1(table, coord(i))))
		}
		return out
	case 2:
		out := make([]float64, 0, grid*grid)
		for j := 0; j < grid; j++ {
			for i := 0; i < grid; i++ {
				out = append(out, float64(noise.Eval2(table, coord(i), coord(j))))
			}
		}
		return out
	default:
		out := make([]float64, 0, grid*grid*grid)
		for k := 0; k < grid; k++ {
			for j := 0; j < grid; j++ {
				for i := 0; i < grid; i++ {
					out = append(out, float64(noise.Eval3(table, coord(i), coord(j), coord(k))))
				}
			}
		}
		return out
	}
}

// PhaseFor returns the perf phase name for a noise dimension.
func PhaseFor(dim int) string {
	switch dim {
	case 1:
		return PhaseNoise1
	case 2:
		return PhaseNoise2
	default:
		return PhaseNoise3
	}
}
