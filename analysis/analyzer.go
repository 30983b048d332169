// Package analysis provides a growable series of temperature readings and the
// aggregate queries over it.
package analysis

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/sartorproj/tempseries/stats"
)

// MinTemp is absolute zero in degrees Celsius. No stored reading is ever below it.
const MinTemp = -273.15

// Analyzer owns an ordered series of temperature readings. Insertion order is
// kept and duplicates are allowed.
//
// An Analyzer is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Analyzer struct {
	readings []float64
	log      *zap.Logger
}

// New creates an empty analyzer.
func New() *Analyzer {
	return &Analyzer{readings: []float64{}, log: zap.NewNop()}
}

// FromReadings creates an analyzer holding a private copy of readings.
// Later changes to the caller's slice do not affect the analyzer.
func FromReadings(readings []float64) (*Analyzer, error) {
	return NewWithConfig(readings, nil)
}

// NewWithConfig creates an analyzer from readings using config. A nil config
// means DefaultConfig. If any reading is invalid no analyzer is returned.
func NewWithConfig(readings []float64, config *Config) (*Analyzer, error) {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validate(readings); err != nil {
		logRejected(logger, "construct", err)
		return nil, err
	}

	capacity := max(config.Capacity, len(readings))
	owned := make([]float64, len(readings), capacity)
	copy(owned, readings)

	logger.Debug("created temperature series",
		zap.Int("count", len(owned)),
		zap.Int("capacity", cap(owned)))

	return &Analyzer{readings: owned, log: logger}, nil
}

// validate checks a whole batch before anything is stored.
func validate(batch []float64) error {
	for i, v := range batch {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < MinTemp {
			return &InvalidValueError{Index: i, Value: v}
		}
	}
	return nil
}

func logRejected(logger *zap.Logger, op string, err error) {
	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	var ive *InvalidValueError
	if errors.As(err, &ive) {
		fields = append(fields, zap.Int("index", ive.Index), zap.Float64("value", ive.Value))
	}
	logger.Debug("rejected temperature batch", fields...)
}

// Len returns the number of stored readings.
func (a *Analyzer) Len() int {
	return len(a.readings)
}

// Cap returns the current storage capacity, which may exceed Len.
func (a *Analyzer) Cap() int {
	return cap(a.readings)
}

// Readings returns a copy of the stored readings in insertion order.
func (a *Analyzer) Readings() []float64 {
	out := make([]float64, len(a.readings))
	copy(out, a.readings)
	return out
}

// Average returns the arithmetic mean of the readings.
func (a *Analyzer) Average() (float64, error) {
	if len(a.readings) == 0 {
		return 0, emptyError("average")
	}
	return stats.Mean(a.readings), nil
}

// StdDev returns the population standard deviation of the readings.
func (a *Analyzer) StdDev() (float64, error) {
	mean, err := a.Average()
	if err != nil {
		return 0, emptyError("standard deviation")
	}
	return stats.PopStdDevAround(a.readings, mean), nil
}

// Min returns the lowest reading.
func (a *Analyzer) Min() (float64, error) {
	if len(a.readings) == 0 {
		return 0, emptyError("min")
	}
	return stats.Min(a.readings), nil
}

// Max returns the highest reading.
func (a *Analyzer) Max() (float64, error) {
	if len(a.readings) == 0 {
		return 0, emptyError("max")
	}
	return stats.Max(a.readings), nil
}

// ClosestToZero is ClosestTo(0).
func (a *Analyzer) ClosestToZero() (float64, error) {
	return a.ClosestTo(0)
}

// ClosestTo returns the reading nearest to target. Ties go to the larger reading.
func (a *Analyzer) ClosestTo(target float64) (float64, error) {
	if len(a.readings) == 0 {
		return 0, emptyError("closest to value")
	}
	return stats.Nearest(a.readings, target), nil
}

// LessThan returns every reading strictly below threshold, in insertion order.
func (a *Analyzer) LessThan(threshold float64) ([]float64, error) {
	if len(a.readings) == 0 {
		return nil, emptyError("less than")
	}
	return stats.Below(a.readings, threshold), nil
}

// GreaterOrEqual returns every reading at or above threshold, in insertion order.
//
// Readings equal to threshold are included. Older callers know this filter as
// "greater than"; the inclusive behavior is kept on purpose.
func (a *Analyzer) GreaterOrEqual(threshold float64) ([]float64, error) {
	if len(a.readings) == 0 {
		return nil, emptyError("greater or equal")
	}
	return stats.AtLeast(a.readings, threshold), nil
}

// Summary returns a snapshot of the aggregates at call time. The snapshot does
// not follow later appends.
func (a *Analyzer) Summary() (Summary, error) {
	if len(a.readings) == 0 {
		return Summary{}, emptyError("summary")
	}
	mean := stats.Mean(a.readings)
	return Summary{
		Average: mean,
		StdDev:  stats.PopStdDevAround(a.readings, mean),
		Min:     stats.Min(a.readings),
		Max:     stats.Max(a.readings),
	}, nil
}

// Append validates values as one batch and stores them after the existing
// readings. It returns the sum of all readings after the append.
//
// On error nothing is stored and the analyzer is unchanged.
func (a *Analyzer) Append(values ...float64) (float64, error) {
	if err := validate(values); err != nil {
		logRejected(a.log, "append", err)
		return 0, err
	}

	count := len(a.readings)
	if cap(a.readings)-count < len(values) {
		grown := make([]float64, count, 2*(count+len(values)))
		copy(grown, a.readings)
		a.log.Debug("grew temperature storage",
			zap.Int("old_capacity", cap(a.readings)),
			zap.Int("new_capacity", cap(grown)))
		a.readings = grown
	}
	a.readings = append(a.readings, values...)

	a.log.Debug("appended temperature readings",
		zap.Int("added", len(values)),
		zap.Int("count", len(a.readings)))

	return stats.Sum(a.readings), nil
}
