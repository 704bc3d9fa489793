package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FieldStats summarises a set of noise samples.
type FieldStats struct {
	Dimension int    `csv:"dim"`
	Precision string `csv:"precision"`
	Seed      int64  `csv:"seed"`
	Samples   int    `csv:"samples"`

	Min    float64 `csv:"min"`
	Max    float64 `csv:"max"`
	MaxAbs float64 `csv:"max_abs"`
	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"std"` // Sample standard deviation

	P10 float64 `csv:"p10"`
	P50 float64 `csv:"p50"`
	P90 float64 `csv:"p90"`
}

// ComputeFieldStats calculates range, moments and percentiles of values.
// values is not modified. Returns a zero FieldStats if values is empty.
func ComputeFieldStats(values []float64) FieldStats {
	n := len(values)
	if n == 0 {
		return FieldStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := FieldStats{
		Samples: n,
		Min:     floats.Min(sorted),
		Max:     floats.Max(sorted),
		Mean:    stat.Mean(sorted, nil),
		P10:     stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:     stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:     stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	s.MaxAbs = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	if n > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s FieldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("dim", s.Dimension),
		slog.String("precision", s.Precision),
		slog.Int64("seed", s.Seed),
		slog.Int("samples", s.Samples),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("max_abs", s.MaxAbs),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.StdDev),
		slog.Float64("p10", s.P10),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
	)
}

// LogStats logs the field stats using slog.
func (s FieldStats) LogStats() {
	slog.Info("field stats", "stats", s)
}
