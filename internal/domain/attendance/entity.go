package attendance

import "time"

type AttendanceStatus string

const (
	AttendanceStatusOpen   AttendanceStatus = "open"
	AttendanceStatusClosed AttendanceStatus = "closed"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       string // local calendar date, YYYY-MM-DD
	ClockIn    time.Time
	ClockOut   *time.Time

	// Snapshot of the schedule in effect at clock-in
	WorkStart string // HH:MM
	WorkEnd   string // HH:MM

	ExpectedHours float64
	WorkedHours   *float64
	BreakHours    *float64

	Status AttendanceStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
	Breaks       []AttendanceBreak
}

// AttendanceBreak is a pause/resume interval nested inside an attendance
// record. At most one break per attendance record may have a nil ResumeTime
// (the active break). A break with nil ResumeTime contributes zero duration.
type AttendanceBreak struct {
	ID           string
	AttendanceID string
	PauseTime    time.Time
	ResumeTime   *time.Time

	PauseLocation  *string
	ResumeLocation *string

	CreatedAt time.Time
}

// IsActive reports whether the break has been started but not yet resumed.
func (b *AttendanceBreak) IsActive() bool {
	return b.ResumeTime == nil
}
