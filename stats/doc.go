// Package stats provides the numeric kernels used by package analysis.
//
// All functions take a plain []float64 and never modify it. Scalar results
// are NaN for empty input; slice results are empty and non-nil.
//
// # Descriptive Statistics
//
//	sum := stats.Sum(values)         // left to right
//	mean := stats.Mean(values)       // Sum / n
//	dev := stats.PopStdDev(values)   // divisor n
//	dev = stats.PopStdDevAround(values, mean)
//	lo, hi := stats.Min(values), stats.Max(values)
//
// # Nearest Value
//
// Nearest treats distances within TieTolerance as equal and then prefers the
// larger value:
//
//	stats.Nearest([]float64{-1, 1}, 0) // 1
//
// # Filters
//
//	below := stats.Below(values, 4)    // v < 4
//	atLeast := stats.AtLeast(values, 4) // v >= 4
package stats
