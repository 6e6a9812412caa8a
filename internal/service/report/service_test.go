package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
)

func ptr[T any](v T) *T { return &v }

func TestBuildAttendanceRows(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{
		{
			EmployeeID:    "emp-1",
			EmployeeName:  ptr("Dian Putri"),
			Status:        attendance.AttendanceStatusClosed,
			ExpectedHours: 8,
			WorkedHours:   ptr(8.5),
			BreakHours:    ptr(1.0),
		},
		{
			EmployeeID:    "emp-2",
			EmployeeName:  ptr("Raka Wijaya"),
			Status:        attendance.AttendanceStatusClosed,
			ExpectedHours: 8,
			WorkedHours:   ptr(7.75),
			BreakHours:    ptr(0.5),
		},
		{
			EmployeeID:    "emp-1",
			EmployeeName:  ptr("Dian Putri"),
			Status:        attendance.AttendanceStatusClosed,
			ExpectedHours: 8,
			WorkedHours:   ptr(8.0),
			BreakHours:    ptr(1.0),
		},
		{
			// still clocked in, no totals yet
			EmployeeID:    "emp-1",
			EmployeeName:  ptr("Dian Putri"),
			Status:        attendance.AttendanceStatusOpen,
			ExpectedHours: 8,
		},
	}

	rows := BuildAttendanceRows(records)
	require.Len(t, rows, 2)

	assert.Equal(t, "emp-1", rows[0].EmployeeID, "first seen employee comes first")
	assert.Equal(t, "Dian Putri", rows[0].EmployeeName)
	assert.Equal(t, 2, rows[0].DaysPresent)
	assert.InDelta(t, 16.0, rows[0].ExpectedHours, 1e-9)
	assert.InDelta(t, 16.5, rows[0].WorkedHours, 1e-9)
	assert.InDelta(t, 2.0, rows[0].BreakHours, 1e-9)

	assert.Equal(t, "emp-2", rows[1].EmployeeID)
	assert.Equal(t, 1, rows[1].DaysPresent)
	assert.InDelta(t, 7.75, rows[1].WorkedHours, 1e-9)
}

func TestBuildAttendanceRows_Empty(t *testing.T) {
	t.Parallel()

	rows := BuildAttendanceRows(nil)
	assert.Empty(t, rows)
}
