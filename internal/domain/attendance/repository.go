package attendance

import (
	"context"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetOpenByEmployee returns the employee's open attendance record, if any.
	GetOpenByEmployee(ctx context.Context, employeeID string) (Attendance, error)

	// HasClockedIn reports whether the employee already has a record for the
	// given local calendar date.
	HasClockedIn(ctx context.Context, employeeID string, dateLocal string) (bool, error)

	Update(ctx context.Context, att Attendance) error
	GetByEmployee(ctx context.Context, employeeID string, from, to string) ([]Attendance, error)
	ListByMonth(ctx context.Context, month, year int) ([]Attendance, error)

	// Breaks
	CreateBreak(ctx context.Context, brk AttendanceBreak) (AttendanceBreak, error)
	GetActiveBreak(ctx context.Context, attendanceID string) (AttendanceBreak, error)
	CloseBreak(ctx context.Context, brk AttendanceBreak) error
	GetBreaks(ctx context.Context, attendanceID string) ([]AttendanceBreak, error)
}
