package telemetry

import (
	"math"
	"slices"
)

// Mean returns 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Percentile95 is a nearest-rank estimate: the value at index
// floor(0.95*(n-1)) of the ascending sample, no interpolation.
func Percentile95(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	idx := int(math.Floor(0.95 * float64(len(sorted)-1)))
	return sorted[idx]
}

func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values)
}
