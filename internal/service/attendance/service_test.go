package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/schedule"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	breaks  map[string]attendance.AttendanceBreak
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: map[string]attendance.Attendance{},
		breaks:  map[string]attendance.AttendanceBreak{},
	}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetOpenByEmployee(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Status == attendance.AttendanceStatusOpen {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNotClockedIn
}

func (f *fakeAttendanceRepo) HasClockedIn(ctx context.Context, employeeID string, dateLocal string) (bool, error) {
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Date == dateLocal {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployee(ctx context.Context, employeeID string, from, to string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByMonth(ctx context.Context, month, year int) ([]attendance.Attendance, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var out []attendance.Attendance
	for _, att := range f.records {
		if len(att.Date) >= len(prefix) && att.Date[:len(prefix)] == prefix {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CreateBreak(ctx context.Context, brk attendance.AttendanceBreak) (attendance.AttendanceBreak, error) {
	f.nextID++
	brk.ID = fmt.Sprintf("brk-%d", f.nextID)
	f.breaks[brk.ID] = brk
	return brk, nil
}

func (f *fakeAttendanceRepo) GetActiveBreak(ctx context.Context, attendanceID string) (attendance.AttendanceBreak, error) {
	for _, brk := range f.breaks {
		if brk.AttendanceID == attendanceID && brk.ResumeTime == nil {
			return brk, nil
		}
	}
	return attendance.AttendanceBreak{}, attendance.ErrNoActiveBreak
}

func (f *fakeAttendanceRepo) CloseBreak(ctx context.Context, brk attendance.AttendanceBreak) error {
	f.breaks[brk.ID] = brk
	return nil
}

func (f *fakeAttendanceRepo) GetBreaks(ctx context.Context, attendanceID string) ([]attendance.AttendanceBreak, error) {
	var out []attendance.AttendanceBreak
	for _, brk := range f.breaks {
		if brk.AttendanceID == attendanceID {
			out = append(out, brk)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	byEmployee map[string]schedule.WorkSchedule
}

func (f *fakeScheduleRepo) Create(ctx context.Context, sched schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	return sched, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	sched, ok := f.byEmployee[employeeID]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return sched, nil
}

func (f *fakeScheduleRepo) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, sched schedule.WorkSchedule) error {
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type stubEmployeeRepo struct{}

func (stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, Status: employee.EmployeeStatusActive}, nil
}

func (stubEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (stubEmployeeRepo) List(ctx context.Context, status string) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (stubEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.EmployeeStatus) error {
	return nil
}

func (stubEmployeeRepo) AssignSchedule(ctx context.Context, id string, workScheduleID string) error {
	return nil
}

func newTestAttendanceService(t *testing.T) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	t.Helper()

	attRepo := newFakeAttendanceRepo()
	schedRepo := &fakeScheduleRepo{byEmployee: map[string]schedule.WorkSchedule{
		"emp-1": {ID: "sched-1", Name: "Day Shift", WorkStart: "09:00", WorkEnd: "17:00"},
	}}

	return NewAttendanceService(nil, attRepo, stubEmployeeRepo{}, schedRepo), attRepo
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"employee_id": employeeID})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestClockIn(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	att, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, attendance.AttendanceStatusOpen, att.Status)
	assert.Equal(t, "09:00", att.WorkStart)
	assert.Equal(t, "17:00", att.WorkEnd)
	assert.InDelta(t, 8.0, att.ExpectedHours, 1e-9)
}

func TestClockIn_Twice(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_NoSchedule(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-without-schedule")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoScheduleFound)
}

func TestClockOut_NotClockedIn(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_ClosesRecord(t *testing.T) {
	t.Parallel()
	svc, repo := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	att, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	assert.Equal(t, attendance.AttendanceStatusClosed, closed.Status)
	require.NotNil(t, closed.ClockOut)
	require.NotNil(t, closed.WorkedHours)
	assert.Equal(t, repo.records[att.ID].Status, attendance.AttendanceStatusClosed)
}

func TestClockOut_BreakStillOpen(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrBreakInProgress)
}

func TestStartBreak_OnlyOneActive(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	first, err := svc.StartBreak(ctx, attendance.BreakRequest{})
	require.NoError(t, err)
	assert.Nil(t, first.ResumeTime)

	_, err = svc.StartBreak(ctx, attendance.BreakRequest{})
	assert.ErrorIs(t, err, attendance.ErrBreakInProgress)
}

func TestEndBreak(t *testing.T) {
	t.Parallel()
	svc, repo := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)
	started, err := svc.StartBreak(ctx, attendance.BreakRequest{})
	require.NoError(t, err)

	ended, err := svc.EndBreak(ctx, attendance.BreakRequest{})
	require.NoError(t, err)

	require.NotNil(t, ended.ResumeTime)
	assert.Equal(t, started.ID, ended.ID)
	assert.NotNil(t, repo.breaks[started.ID].ResumeTime)

	// a second break can start once the first has resumed
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{})
	assert.NoError(t, err)
}

func TestEndBreak_NoneActive(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx, attendance.BreakRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)
}

func TestExpectedShiftEnd(t *testing.T) {
	t.Parallel()
	svc, repo := newTestAttendanceService(t)
	ctx := authedContext(t, "emp-1")

	att, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	end, err := svc.ExpectedShiftEnd(ctx)
	require.NoError(t, err)

	clockIn := repo.records[att.ID].ClockIn
	want := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(), 17, 0, 0, 0, clockIn.Location())
	assert.True(t, end.Equal(want), "expected %s, got %s", want, end)
}
