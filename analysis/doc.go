// Package analysis provides the temperature series Analyzer.
//
// # Creating an Analyzer
//
//	empty := analysis.New()
//
//	a, err := analysis.FromReadings([]float64{3.0, -5.0, 1.0, 5.0})
//	if errors.Is(err, analysis.ErrInvalidValue) {
//	    // a reading was below absolute zero; nothing was stored
//	}
//
// The input slice is copied, so the caller may reuse it freely.
//
// # Queries
//
// Every query returns ErrEmpty (wrapped with the operation name) when the
// analyzer holds no readings:
//
//	avg, err := a.Average()
//	dev, _ := a.StdDev()            // population standard deviation
//	lo, _ := a.Min()
//	hi, _ := a.Max()
//	near, _ := a.ClosestTo(4.0)     // ties go to the larger reading
//	zero, _ := a.ClosestToZero()
//
// Filters keep insertion order:
//
//	cold, err := a.LessThan(4.0)       // strictly below
//	warm, err := a.GreaterOrEqual(4.0) // inclusive of 4.0
//
// # Appending
//
// Append validates the whole batch first. Either every value is stored or
// none is:
//
//	total, err := a.Append(3.0, 4.0, 7.0, 12.0)
//
// # Logging
//
// Pass a *zap.Logger through Config to receive debug events for construction,
// storage growth, appends, and rejected batches:
//
//	a, err := analysis.NewWithConfig(readings, &analysis.Config{Logger: logger})
package analysis
