package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
)

func TestExpectedHours(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		workStart string
		workEnd   string
		want      float64
	}{
		{"regular day shift", "09:00", "18:00", 9},
		{"short shift", "10:00", "14:30", 4.5},
		{"cross midnight", "14:00", "01:00", 11},
		{"night shift", "22:00", "06:00", 8},
		{"equal times is a full day", "09:00", "09:00", 24},
		{"midnight to midnight", "00:00", "00:00", 24},
		{"one minute shy of a day", "09:00", "08:59", 23.983333333333334},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExpectedHours(tt.workStart, tt.workEnd), 1e-9)
		})
	}
}

func TestIsCrossMidnight(t *testing.T) {
	t.Parallel()
	assert.False(t, IsCrossMidnight("09:00", "18:00"))
	assert.True(t, IsCrossMidnight("14:00", "01:00"))
	// end == start is cross-midnight by the same tie-break as ExpectedHours
	assert.True(t, IsCrossMidnight("09:00", "09:00"))
	assert.True(t, IsCrossMidnight("18:00", "09:00"))
}

func TestShiftEndInstant_SameDay(t *testing.T) {
	t.Parallel()
	clockIn := time.Date(2024, time.March, 10, 9, 12, 0, 0, time.Local)

	end := ShiftEndInstant(clockIn, "09:00", "18:00")

	assert.Equal(t, time.Date(2024, time.March, 10, 18, 0, 0, 0, time.Local), end)
}

func TestShiftEndInstant_CrossMidnight(t *testing.T) {
	t.Parallel()
	clockIn := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.Local)

	end := ShiftEndInstant(clockIn, "14:00", "01:00")

	assert.Equal(t, time.Date(2024, time.March, 11, 1, 0, 0, 0, time.Local), end)
}

// A late clock-in anchors the end instant to the actual clock-in date, not
// the configured start time.
func TestShiftEndInstant_LateClockIn(t *testing.T) {
	t.Parallel()
	clockIn := time.Date(2024, time.March, 10, 16, 45, 0, 0, time.Local)

	end := ShiftEndInstant(clockIn, "14:00", "01:00")

	assert.Equal(t, time.Date(2024, time.March, 11, 1, 0, 0, 0, time.Local), end)
}

func TestTotalBreakHours(t *testing.T) {
	t.Parallel()
	pause := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.Local)
	resume := pause.Add(15 * time.Minute)
	activePause := time.Date(2024, time.March, 10, 13, 0, 0, 0, time.Local)

	breaks := []attendance.AttendanceBreak{
		{PauseTime: pause, ResumeTime: &resume},
		{PauseTime: activePause, ResumeTime: nil}, // active break excluded
	}

	assert.InDelta(t, 0.25, TotalBreakHours(breaks), 1e-9)
}

func TestTotalBreakHours_Empty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, TotalBreakHours(nil))
	assert.Equal(t, 0.0, TotalBreakHours([]attendance.AttendanceBreak{}))
}

func TestShiftCalculator_Idempotent(t *testing.T) {
	t.Parallel()
	clockIn := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.Local)

	assert.Equal(t, ExpectedHours("14:00", "01:00"), ExpectedHours("14:00", "01:00"))
	assert.Equal(t, ShiftEndInstant(clockIn, "14:00", "01:00"), ShiftEndInstant(clockIn, "14:00", "01:00"))
}
