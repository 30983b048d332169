// Package stats provides the numeric kernels behind series analysis.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of all values, accumulated left to right.
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean: the sum of values divided by their count.
// Returns NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return Sum(values) / float64(len(values))
}

// PopStdDev calculates the population standard deviation, the square root of
// the mean squared deviation from the mean (divisor n, not n-1).
// Returns NaN for an empty slice.
func PopStdDev(values []float64) float64 {
	return PopStdDevAround(values, Mean(values))
}

// PopStdDevAround is PopStdDev with the mean already known.
func PopStdDevAround(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Min returns the minimum value. Returns NaN for an empty slice.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Min(values)
}

// Max returns the maximum value. Returns NaN for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Max(values)
}
