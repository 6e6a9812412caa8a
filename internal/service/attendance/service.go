package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/schedule"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository, workScheduleRepository schedule.WorkScheduleRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:                     db,
		AttendanceRepository:   attendanceRepository,
		EmployeeRepository:     employeeRepository,
		WorkScheduleRepository: workScheduleRepository,
	}
}

// ClockIn opens the attendance record for the employee's local calendar
// date, snapshotting the schedule clock times in effect at that moment.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.Attendance, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := time.Now()
	dateLocal := leave.FormatLocalDate(now)

	hasClockedIn, err := a.AttendanceRepository.HasClockedIn(ctx, employeeID, dateLocal)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if hasClockedIn {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}

	sched, err := a.WorkScheduleRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return attendance.Attendance{}, attendance.ErrNoScheduleFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	record := attendance.Attendance{
		EmployeeID:    employeeID,
		Date:          dateLocal,
		ClockIn:       now,
		WorkStart:     sched.WorkStart,
		WorkEnd:       sched.WorkEnd,
		ExpectedHours: ExpectedHours(sched.WorkStart, sched.WorkEnd),
		Status:        attendance.AttendanceStatusOpen,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// ClockOut closes the open attendance record. Worked hours are the elapsed
// time minus completed breaks; an unfinished break must be ended first.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.Attendance, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record, err := a.AttendanceRepository.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	_, err = a.AttendanceRepository.GetActiveBreak(ctx, record.ID)
	if err == nil {
		return attendance.Attendance{}, attendance.ErrBreakInProgress
	}
	if !errors.Is(err, attendance.ErrNoActiveBreak) {
		return attendance.Attendance{}, fmt.Errorf("failed to check active break: %w", err)
	}

	breaks, err := a.AttendanceRepository.GetBreaks(ctx, record.ID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get breaks: %w", err)
	}

	now := time.Now()
	breakHours := TotalBreakHours(breaks)
	workedHours := now.Sub(record.ClockIn).Hours() - breakHours

	record.ClockOut = &now
	record.BreakHours = &breakHours
	record.WorkedHours = &workedHours
	record.Status = attendance.AttendanceStatusClosed

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return record, nil
}

// StartBreak opens a break on the current attendance record. At most one
// break may be active at a time.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.BreakRequest) (attendance.AttendanceBreak, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceBreak{}, err
	}

	record, err := a.AttendanceRepository.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.AttendanceBreak{}, err
		}
		return attendance.AttendanceBreak{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	_, err = a.AttendanceRepository.GetActiveBreak(ctx, record.ID)
	if err == nil {
		return attendance.AttendanceBreak{}, attendance.ErrBreakInProgress
	}
	if !errors.Is(err, attendance.ErrNoActiveBreak) {
		return attendance.AttendanceBreak{}, fmt.Errorf("failed to check active break: %w", err)
	}

	brk := attendance.AttendanceBreak{
		AttendanceID:  record.ID,
		PauseTime:     time.Now(),
		PauseLocation: req.Location,
	}

	created, err := a.AttendanceRepository.CreateBreak(ctx, brk)
	if err != nil {
		return attendance.AttendanceBreak{}, fmt.Errorf("failed to create break: %w", err)
	}

	return created, nil
}

// EndBreak resumes the active break; the resume time is set exactly once.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context, req attendance.BreakRequest) (attendance.AttendanceBreak, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceBreak{}, err
	}

	record, err := a.AttendanceRepository.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.AttendanceBreak{}, err
		}
		return attendance.AttendanceBreak{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	brk, err := a.AttendanceRepository.GetActiveBreak(ctx, record.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveBreak) {
			return attendance.AttendanceBreak{}, err
		}
		return attendance.AttendanceBreak{}, fmt.Errorf("failed to get active break: %w", err)
	}

	now := time.Now()
	brk.ResumeTime = &now
	brk.ResumeLocation = req.Location

	if err := a.AttendanceRepository.CloseBreak(ctx, brk); err != nil {
		return attendance.AttendanceBreak{}, fmt.Errorf("failed to close break: %w", err)
	}

	return brk, nil
}

// ExpectedShiftEnd resolves when the current open shift should end, anchored
// to the clock-in date so cross-midnight shifts land on the next day.
func (a *AttendanceServiceImpl) ExpectedShiftEnd(ctx context.Context) (time.Time, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return time.Time{}, err
	}

	record, err := a.AttendanceRepository.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return time.Time{}, err
		}
		return time.Time{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return ShiftEndInstant(record.ClockIn, record.WorkStart, record.WorkEnd), nil
}

func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, from, to string) ([]attendance.Attendance, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.GetByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}
