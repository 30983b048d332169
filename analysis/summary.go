package analysis

import "fmt"

// Summary is a point-in-time snapshot of a series' aggregates.
type Summary struct {
	Average float64
	StdDev  float64
	Min     float64
	Max     float64
}

// String renders the snapshot as
// SummaryStatistics(avgTemp=<avg>, devTemp=<dev>, minTemp=<min>, maxTemp=<max>).
func (s Summary) String() string {
	return fmt.Sprintf("SummaryStatistics(avgTemp=%s, devTemp=%s, minTemp=%s, maxTemp=%s)",
		formatReading(s.Average), formatReading(s.StdDev),
		formatReading(s.Min), formatReading(s.Max))
}
