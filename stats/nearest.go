package stats

import "math"

// TieTolerance is the largest difference between two distances that Nearest
// still treats as a tie.
const TieTolerance = 1e-7

// Nearest returns the value closest to target. When two values are equally
// close (within TieTolerance) the larger one wins, so Nearest(x, 0) prefers
// 1 over -1. Returns NaN for an empty slice.
func Nearest(values []float64, target float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	best := values[0]
	bestDiff := math.Abs(target - best)
	for _, v := range values[1:] {
		diff := math.Abs(target - v)
		switch {
		case math.Abs(diff-bestDiff) <= TieTolerance:
			if v > best {
				best = v
				bestDiff = diff
			}
		case diff < bestDiff:
			best = v
			bestDiff = diff
		}
	}
	return best
}
