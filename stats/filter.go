package stats

// Below returns the values strictly less than threshold, in their original order.
// The result is sized exactly and never aliases values.
func Below(values []float64, threshold float64) []float64 {
	n := 0
	for _, v := range values {
		if v < threshold {
			n++
		}
	}

	result := make([]float64, 0, n)
	for _, v := range values {
		if v < threshold {
			result = append(result, v)
		}
	}
	return result
}

// AtLeast returns the values greater than or equal to threshold, in their
// original order. Equality is inclusive.
func AtLeast(values []float64, threshold float64) []float64 {
	n := 0
	for _, v := range values {
		if v >= threshold {
			n++
		}
	}

	result := make([]float64, 0, n)
	for _, v := range values {
		if v >= threshold {
			result = append(result, v)
		}
	}
	return result
}
