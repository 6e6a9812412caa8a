package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	employee.DepartmentRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, departmentRepository employee.DepartmentRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		DepartmentRepository: departmentRepository,
	}
}

// Create registers a new employee in onboarding state; a manager approval
// moves them to active.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	hireDate, err := time.ParseInLocation("2006-01-02", req.HireDate, time.Local)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, employee.ErrDepartmentNotFound) {
				return employee.Employee{}, err
			}
			return employee.Employee{}, fmt.Errorf("failed to get department: %w", err)
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		HireDate:     hireDate,
		Status:       employee.EmployeeStatusPending,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, status string) ([]employee.Employee, int64, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, total, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.Position != nil {
		emp.Position = req.Position
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return emp, nil
}

// ApproveOnboarding moves a pending employee to active. Like leave reviews,
// onboarding is decided exactly once.
func (s *EmployeeServiceImpl) ApproveOnboarding(ctx context.Context, id string) (employee.Employee, error) {
	return s.reviewOnboarding(ctx, id, employee.EmployeeStatusActive)
}

func (s *EmployeeServiceImpl) RejectOnboarding(ctx context.Context, id string) (employee.Employee, error) {
	return s.reviewOnboarding(ctx, id, employee.EmployeeStatusRejected)
}

func (s *EmployeeServiceImpl) reviewOnboarding(ctx context.Context, id string, status employee.EmployeeStatus) (employee.Employee, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if emp.Status != employee.EmployeeStatusPending {
		return employee.Employee{}, employee.ErrOnboardingAlreadyProcessed
	}

	if err := s.EmployeeRepository.UpdateStatus(ctx, id, status); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	emp.Status = status
	return emp, nil
}

func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
