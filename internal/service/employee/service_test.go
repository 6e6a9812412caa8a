package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
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

type fakeDepartmentRepo struct {
	departments map[string]employee.Department
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept employee.Department) (employee.Department, error) {
	f.departments[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (employee.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return employee.Department{}, employee.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]employee.Department, error) {
	var out []employee.Department
	for _, dept := range f.departments {
		out = append(out, dept)
	}
	return out, nil
}

func newTestEmployeeService(t *testing.T) (*EmployeeServiceImpl, *fakeEmployeeRepo) {
	t.Helper()

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	deptRepo := &fakeDepartmentRepo{departments: map[string]employee.Department{
		"dept-eng": {ID: "dept-eng", Name: "Engineering"},
	}}

	return NewEmployeeService(nil, empRepo, deptRepo), empRepo
}

func TestCreate_StartsPending(t *testing.T) {
	t.Parallel()
	svc, _ := newTestEmployeeService(t)

	deptID := "dept-eng"
	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:     "Dian Putri",
		Email:        "dian@worklane.example",
		DepartmentID: &deptID,
		HireDate:     "2026-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, employee.EmployeeStatusPending, created.Status)
}

func TestCreate_UnknownDepartment(t *testing.T) {
	t.Parallel()
	svc, _ := newTestEmployeeService(t)

	deptID := "dept-missing"
	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:     "Dian Putri",
		Email:        "dian@worklane.example",
		DepartmentID: &deptID,
		HireDate:     "2026-01-05",
	})
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)
}

func TestApproveOnboarding(t *testing.T) {
	t.Parallel()
	svc, repo := newTestEmployeeService(t)
	repo.employees["emp-1"] = employee.Employee{ID: "emp-1", Status: employee.EmployeeStatusPending}

	emp, err := svc.ApproveOnboarding(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, employee.EmployeeStatusActive, emp.Status)
	assert.Equal(t, employee.EmployeeStatusActive, repo.employees["emp-1"].Status)
}

func TestRejectOnboarding(t *testing.T) {
	t.Parallel()
	svc, repo := newTestEmployeeService(t)
	repo.employees["emp-1"] = employee.Employee{ID: "emp-1", Status: employee.EmployeeStatusPending}

	emp, err := svc.RejectOnboarding(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, employee.EmployeeStatusRejected, emp.Status)
}

func TestOnboarding_DecidedOnce(t *testing.T) {
	t.Parallel()
	svc, repo := newTestEmployeeService(t)
	repo.employees["emp-1"] = employee.Employee{ID: "emp-1", Status: employee.EmployeeStatusPending}

	_, err := svc.ApproveOnboarding(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.ApproveOnboarding(context.Background(), "emp-1")
	assert.ErrorIs(t, err, employee.ErrOnboardingAlreadyProcessed)

	_, err = svc.RejectOnboarding(context.Background(), "emp-1")
	assert.ErrorIs(t, err, employee.ErrOnboardingAlreadyProcessed)
}

func TestOnboarding_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _ := newTestEmployeeService(t)

	_, err := svc.ApproveOnboarding(context.Background(), "emp-missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
