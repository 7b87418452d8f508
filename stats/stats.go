// Package stats derives the period-over-period figures shown on the
// dashboard stat cards from pre-sorted time series.
package stats

import "github.com/zabeliqbal/langkawi-data-hub/types"

// ChangeMode selects how the delta between the two most recent points is
// expressed.
type ChangeMode int

const (
	// Relative expresses the change as a percentage of the previous value.
	// Used for count and amount measures (visitors, spending, arrivals).
	Relative ChangeMode = iota
	// PercentagePoint expresses the change as a simple subtraction. Used
	// when the measure is already a percentage (occupancy rate), where a
	// ratio of ratios would mislead.
	PercentagePoint
)

// LatestAndChange returns the last value of a series and its change versus
// the preceding point. The series must already be sorted ascending by
// period; this function does not sort.
//
// Fewer than two points yields a change of 0. A previous value of zero in
// Relative mode also yields 0 rather than propagating Inf/NaN to the
// presentation layer.
func LatestAndChange(values []float64, mode ChangeMode) types.Derived {
	if len(values) == 0 {
		return types.Derived{}
	}
	latest := values[len(values)-1]
	if len(values) == 1 {
		return types.Derived{Latest: latest}
	}

	prev := values[len(values)-2]
	switch mode {
	case PercentagePoint:
		return types.Derived{Latest: latest, PercentChange: latest - prev}
	default:
		if prev == 0 {
			return types.Derived{Latest: latest}
		}
		return types.Derived{Latest: latest, PercentChange: (latest - prev) / prev * 100}
	}
}
