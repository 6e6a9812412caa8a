package leave

import (
	"math"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// CountDays returns the inclusive number of calendar days covered by the
// range [start, end]. Both endpoints are normalized to midnight in their own
// location first, so the time-of-day component never shifts the count. A
// single-day leave (start == end) counts as 1.
//
// The difference is measured in wall-clock milliseconds and rounded up, so
// a 23-hour spring-forward day still counts as a full day. A range spanning
// a 25-hour fall-back day rounds up past the calendar count and comes out
// one high.
//
// Callers must pass end >= start; a swapped range still yields a positive
// count from the absolute difference, which is semantically backwards.
// Surrounding form validation prevents it, the function does not.
func CountDays(start, end time.Time) int {
	startDay := atMidnight(start)
	endDay := atMidnight(end)

	diffMs := endDay.Sub(startDay).Milliseconds()
	if diffMs < 0 {
		diffMs = -diffMs
	}

	return int(math.Ceil(float64(diffMs)/float64(millisPerDay))) + 1
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
