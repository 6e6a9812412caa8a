package attendance

import (
	"strconv"
	"strings"
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
)

const minutesPerDay = 24 * 60

// ExpectedHours returns the configured shift duration in hours for a pair of
// HH:MM clock times. A shift whose end is numerically less than or equal to
// its start is defined to cross midnight; equal times therefore mean a full
// 24-hour shift, not a zero-length one. That tie-break is policy and must
// hold everywhere cross-midnight shifts are handled.
// Malformed inputs are not validated here; the form layer owns that.
func ExpectedHours(workStart, workEnd string) float64 {
	startMinutes := toMinutes(workStart)
	endMinutes := toMinutes(workEnd)

	if endMinutes > startMinutes {
		return float64(endMinutes-startMinutes) / 60
	}
	return float64(minutesPerDay-startMinutes+endMinutes) / 60
}

// IsCrossMidnight reports whether the shift ends on the following calendar
// day, with the same tie-break as ExpectedHours (end <= start).
func IsCrossMidnight(workStart, workEnd string) bool {
	return toMinutes(workEnd) <= toMinutes(workStart)
}

// ShiftEndInstant resolves the absolute instant a shift is expected to end,
// anchored to the calendar date of the actual clock-in rather than the
// configured start time, so a late clock-in still resolves to a sane end.
// For cross-midnight shifts the date advances by exactly one day.
func ShiftEndInstant(clockIn time.Time, workStart, workEnd string) time.Time {
	endMinutes := toMinutes(workEnd)

	end := time.Date(
		clockIn.Year(), clockIn.Month(), clockIn.Day(),
		endMinutes/60, endMinutes%60, 0, 0,
		clockIn.Location(),
	)

	if IsCrossMidnight(workStart, workEnd) {
		end = end.AddDate(0, 0, 1)
	}

	return end
}

// TotalBreakHours sums the duration of all completed breaks in hours. An
// active break (nil ResumeTime) contributes zero; it is excluded, not
// treated as running until now.
func TotalBreakHours(breaks []attendance.AttendanceBreak) float64 {
	var total float64
	for _, brk := range breaks {
		if brk.ResumeTime == nil {
			continue
		}
		total += brk.ResumeTime.Sub(brk.PauseTime).Hours()
	}
	return total
}

// toMinutes converts an HH:MM clock time to minutes since midnight.
func toMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
