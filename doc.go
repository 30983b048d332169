// Package tempseries provides in-memory analysis of temperature series.
//
// A series is a growable, ordered collection of readings in degrees Celsius.
// Every reading is checked against absolute zero (-273.15) when it enters the
// series, so the aggregates never see a physically impossible value.
//
// # Features
//
//   - Mean and population standard deviation
//   - Minimum, maximum, and nearest-to-value lookup
//   - Threshold filters that keep insertion order
//   - Point-in-time summary snapshots
//   - Atomic, validated batch appends
//
// # Quick Start
//
//	a, err := analysis.FromReadings([]float64{3.0, -5.0, 1.0, 5.0})
//	if err != nil {
//	    return err
//	}
//	avg, _ := a.Average()           // 1.0
//	sum, _ := a.Append(3, 4, 7, 12) // 30.0
//	summary, _ := a.Summary()
//	fmt.Println(summary)
//
// # Packages
//
//   - analysis: the Analyzer type, its Summary snapshot, and its errors
//   - stats: numeric kernels over plain float64 slices
package tempseries
