package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("work schedule not found")
	ErrInvalidClockTime = errors.New("clock time must be in HH:MM format")
)
