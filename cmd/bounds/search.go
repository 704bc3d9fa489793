package main

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/noise"
)

// Result is one local search for the largest |noise| value.
type Result struct {
	Dimension int     `csv:"dim"`
	Start     int     `csv:"start"`
	StartAbs  float64 `csv:"start_abs"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Z         float64 `csv:"z"`
	Value     float64 `csv:"value"`
	Abs       float64 `csv:"abs"`
	Evals     int     `csv:"evals"`
}

// Searcher runs Nelder-Mead from random starting points, maximising |noise|.
type Searcher struct {
	table      *noise.Table
	cfg        config.BoundsConfig
	useFloat32 bool
}

// NewSearcher creates a searcher over table.
func NewSearcher(table *noise.Table, cfg config.BoundsConfig, useFloat32 bool) *Searcher {
	return &Searcher{table: table, cfg: cfg, useFloat32: useFloat32}
}

// Eval returns the noise value at x, whose length selects the dimension.
func (s *Searcher) Eval(x []float64) float64 {
	if s.useFloat32 {
		return eval[float32](s.table, x)
	}
	return eval[float64](s.table, x)
}

func eval[T noise.Float](table *noise.Table, x []float64) float64 {
	switch len(x) {
	case 1:
		return float64(noise.Eval1(table, T(x[0])))
	case 2:
		return float64(noise.Eval2(table, T(x[0]), T(x[1])))
	default:
		return float64(noise.Eval3(table, T(x[0]), T(x[1]), T(x[2])))
	}
}

// Search runs cfg.Starts local searches in dim dimensions. Starting points
// are drawn from [0, span) with a generator seeded by cfg.Seed and dim.
func (s *Searcher) Search(dim int) ([]Result, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("dimension must be 1, 2 or 3, got %d", dim)
	}

	rng := rand.New(rand.NewSource(s.cfg.Seed + int64(dim)))
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -math.Abs(s.Eval(x))
		},
	}

	results := make([]Result, 0, s.cfg.Starts)
	for i := 0; i < s.cfg.Starts; i++ {
		x0 := make([]float64, dim)
		for j := range x0 {
			x0[j] = rng.Float64() * s.cfg.Span
		}

		settings := &optimize.Settings{FuncEvaluations: s.cfg.MaxEvals}
		res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
		if err != nil && res == nil {
			return nil, fmt.Errorf("search %d in %dD: %w", i, dim, err)
		}

		r := Result{
			Dimension: dim,
			Start:     i,
			StartAbs:  math.Abs(s.Eval(x0)),
			Value:     s.Eval(res.X),
			Evals:     res.FuncEvaluations,
		}
		r.Abs = math.Abs(r.Value)
		coords := []*float64{&r.X, &r.Y, &r.Z}
		for j, v := range res.X {
			*coords[j] = v
		}
		results = append(results, r)
	}
	return results, nil
}

// Best returns the result with the largest Abs.
func Best(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Abs > best.Abs {
			best = r
		}
	}
	return best, true
}
