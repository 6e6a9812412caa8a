package schedule

import "time"

// WorkSchedule is a recurring daily schedule described by a pair of clock
// times. WorkEnd numerically less than or equal to WorkStart means the shift
// crosses midnight and ends on the following calendar day.
type WorkSchedule struct {
	ID                 string
	Name               string
	WorkStart          string // HH:MM
	WorkEnd            string // HH:MM
	GracePeriodMinutes int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
