package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is matched by every *InvalidValueError.
	ErrInvalidValue = errors.New("invalid temperature reading")

	// ErrEmpty is returned by aggregate queries on an analyzer with no readings.
	ErrEmpty = errors.New("series holds no readings")
)

// InvalidValueError reports the first reading of a batch that failed validation.
type InvalidValueError struct {
	Index int     // Position within the rejected batch
	Value float64 // Offending reading
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("reading %d (%v) is below absolute zero (%v) or not a finite number",
		e.Index, e.Value, MinTemp)
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func emptyError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmpty)
}
