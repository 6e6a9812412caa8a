package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
)

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	f.types[lt.ID] = lt
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLeaveTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range f.types {
		out = append(out, lt)
	}
	return out, nil
}

func (f *fakeLeaveTypeRepo) Update(ctx context.Context, lt leave.LeaveType) error {
	f.types[lt.ID] = lt
	return nil
}

func (f *fakeLeaveTypeRepo) Delete(ctx context.Context, id string) error {
	delete(f.types, id)
	return nil
}

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("req-%d", f.nextID)
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) List(ctx context.Context, status string) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if status == "" || string(request.Status) == status {
			out = append(out, request)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy *string, reviewedAt *time.Time) error {
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Status = status
	request.ReviewedBy = reviewedBy
	request.ReviewedAt = reviewedAt
	if status == leave.LeaveRequestStatusCancelled {
		now := time.Now()
		request.CancelledAt = &now
	}
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRequestRepo) GetApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID && request.Status == leave.LeaveRequestStatusApproved && request.StartDate.Year() == year {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) GetApprovedByYear(ctx context.Context, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.Status == leave.LeaveRequestStatusApproved && request.StartDate.Year() == year {
			out = append(out, request)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.UserID != nil && *emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, status string) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if status == "" || string(emp.Status) == status {
			out = append(out, emp)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.EmployeeStatus) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) AssignSchedule(ctx context.Context, id string, workScheduleID string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.WorkScheduleID = &workScheduleID
	f.employees[id] = emp
	return nil
}

func newTestRequestService(t *testing.T) (*RequestService, *fakeLeaveRequestRepo) {
	t.Helper()

	typeRepo := &fakeLeaveTypeRepo{types: map[string]leave.LeaveType{
		"lt-annual": {ID: "lt-annual", Name: "Annual Leave", DaysPerYear: 12, IsPaid: true},
	}}
	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Dian Putri", Status: employee.EmployeeStatusActive},
	}}

	return NewRequestService(nil, typeRepo, requestRepo, employeeRepo), requestRepo
}

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateRequest(t *testing.T) {
	t.Parallel()
	svc, _ := newTestRequestService(t)
	ctx := contextWithClaims(t, map[string]interface{}{"employee_id": "emp-1"})

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-05",
		Reason:      "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveRequestStatusPending, created.Status)
	assert.Equal(t, 5, created.DaysCount, "range endpoints are both counted")
	assert.Equal(t, "emp-1", created.EmployeeID)
}

func TestCreateRequest_SingleDay(t *testing.T) {
	t.Parallel()
	svc, _ := newTestRequestService(t)
	ctx := contextWithClaims(t, map[string]interface{}{"employee_id": "emp-1"})

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2024-06-10",
		EndDate:     "2024-06-10",
		Reason:      "medical appointment",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, created.DaysCount)
}

func TestCreateRequest_UnknownLeaveType(t *testing.T) {
	t.Parallel()
	svc, _ := newTestRequestService(t)
	ctx := contextWithClaims(t, map[string]interface{}{"employee_id": "emp-1"})

	_, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-missing",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-05",
		Reason:      "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}

func TestApprove(t *testing.T) {
	t.Parallel()
	svc, repo := newTestRequestService(t)
	repo.requests["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Status:     leave.LeaveRequestStatusPending,
	}

	approved, err := svc.Approve(context.Background(), "req-1", "user-hr")
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveRequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "user-hr", *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)
}

func TestApprove_TerminalStatusesRejected(t *testing.T) {
	t.Parallel()
	svc, repo := newTestRequestService(t)

	for i, status := range []leave.LeaveRequestStatus{
		leave.LeaveRequestStatusApproved,
		leave.LeaveRequestStatusRejected,
		leave.LeaveRequestStatusCancelled,
	} {
		id := fmt.Sprintf("req-terminal-%d", i)
		repo.requests[id] = leave.LeaveRequest{ID: id, EmployeeID: "emp-1", Status: status}

		_, err := svc.Approve(context.Background(), id, "user-hr")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed, "status %s must be terminal", status)
	}
}

func TestReject(t *testing.T) {
	t.Parallel()
	svc, repo := newTestRequestService(t)
	repo.requests["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Status:     leave.LeaveRequestStatusPending,
	}

	rejected, err := svc.Reject(context.Background(), "req-1", "user-hr")
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, rejected.Status)
}

func TestCancel(t *testing.T) {
	t.Parallel()
	svc, repo := newTestRequestService(t)
	repo.requests["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Status:     leave.LeaveRequestStatusPending,
	}
	ctx := contextWithClaims(t, map[string]interface{}{"employee_id": "emp-1"})

	cancelled, err := svc.Cancel(ctx, "req-1")
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveRequestStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// self-service cancellation has no reviewer
	stored := repo.requests["req-1"]
	assert.Nil(t, stored.ReviewedBy)
	assert.Nil(t, stored.ReviewedAt)
	assert.NotNil(t, stored.CancelledAt)
}

func TestCancel_NotOwner(t *testing.T) {
	t.Parallel()
	svc, repo := newTestRequestService(t)
	repo.requests["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Status:     leave.LeaveRequestStatusPending,
	}
	ctx := contextWithClaims(t, map[string]interface{}{"employee_id": "emp-2"})

	_, err := svc.Cancel(ctx, "req-1")
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestCancel_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	svc, repo := newTestRequestService(t)
	repo.requests["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Status:     leave.LeaveRequestStatusApproved,
	}
	ctx := contextWithClaims(t, map[string]interface{}{"employee_id": "emp-1"})

	_, err := svc.Cancel(ctx, "req-1")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}
