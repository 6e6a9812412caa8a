package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("no open attendance record")
	ErrAlreadyClockedOut  = errors.New("attendance record already closed")
	ErrBreakInProgress    = errors.New("a break is already in progress")
	ErrNoActiveBreak      = errors.New("no break in progress")
	ErrNoScheduleFound    = errors.New("no work schedule assigned")
)
