package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// PopStdDev returns the population standard deviation (divisor n, not n-1).
// Risk aggregation wants the spread of the simulated set itself, not an
// estimator for a larger population.
func PopStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := stat.Mean(xs, nil)
	return math.Sqrt(stat.MomentAbout(2, xs, m, nil))
}

// Percentile returns the q-th percentile (q in [0,1]) by sorted-array
// indexing: idx = floor(n*q) clamped to [0, n-1]. The input is not modified.
func Percentile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	idx := int(float64(len(sorted)) * q)
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
