package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sample = []float64{3.0, -5.0, 1.0, 5.0}

func TestSum(t *testing.T) {
	assert.Equal(t, 4.0, Sum(sample))
	assert.Equal(t, 0.0, Sum(nil))
}

func TestSumAccumulatesInOrder(t *testing.T) {
	// Each 1 is lost against 1e16 when added one at a time.
	assert.Equal(t, 1e16, Sum([]float64{1e16, 1, 1, 1}))
	assert.Equal(t, 152.10000000000002, Sum([]float64{55.2, 33.1, 15, 13.9, 34.9}))
}

func TestMeanIsSumOverCount(t *testing.T) {
	values := []float64{55.2, 33.1, 15, 13.9, 34.9}
	assert.Equal(t, 30.420000000000005, Mean(values))
	assert.Equal(t, Sum(values)/5, Mean(values))
}

func TestPopStdDevAround(t *testing.T) {
	values := []float64{55.2, 33.1, 15, 13.9, 34.9}
	assert.Equal(t, 15.178853711660839, PopStdDevAround(values, Mean(values)))
	assert.Equal(t, PopStdDev(values), PopStdDevAround(values, Mean(values)))
	assert.Equal(t, 2.0, PopStdDevAround([]float64{1, 5}, 3))
	assert.True(t, math.IsNaN(PopStdDevAround(nil, 0)))
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"sample", sample, 1.0},
		{"single", []float64{-1.0}, -1.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.values), 1e-10)
		})
	}
}

func TestPopStdDev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"sample", sample, 3.7416573867739413},
		{"textbook", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2.0},
		{"single", []float64{12.5}, 0.0},
		{"identical", []float64{21.5, 21.5, 21.5}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PopStdDev(tt.values), 1e-10)
		})
	}
}

func TestMinMax(t *testing.T) {
	values := []float64{5, 2, 8, 1, 9, 3}
	assert.Equal(t, 1.0, Min(values))
	assert.Equal(t, 9.0, Max(values))

	assert.Equal(t, -5.0, Min(sample))
	assert.Equal(t, 5.0, Max(sample))
}

func TestEmptyScalarsAreNaN(t *testing.T) {
	for name, fn := range map[string]func([]float64) float64{
		"Mean":      Mean,
		"PopStdDev": PopStdDev,
		"Min":       Min,
		"Max":       Max,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, math.IsNaN(fn(nil)), "%s of empty input should be NaN", name)
		})
	}
	assert.True(t, math.IsNaN(Nearest(nil, 0)))
}
