package weather

import "time"

// DefaultHourlyWindow is the number of upcoming hours shown by default
const DefaultHourlyWindow = 24

// SelectWindow filters the timeline to samples at or after now, preserving
// source order, and truncates the result to at most limit entries. The input
// is not re-sorted: for an out-of-order timeline "first limit" applies to
// filtered order, not chronological order. Always returns a non-nil slice.
func SelectWindow(timeline []HourSample, now time.Time, limit int) []HourSample {
	if limit < 0 {
		limit = 0
	}

	window := make([]HourSample, 0, limit)
	for _, sample := range timeline {
		if len(window) == limit {
			break
		}
		// Boundary is inclusive: a sample stamped exactly now qualifies.
		if sample.Time.Before(now) {
			continue
		}
		window = append(window, sample)
	}
	return window
}
