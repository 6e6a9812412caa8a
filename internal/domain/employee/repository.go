package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, status string) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	UpdateStatus(ctx context.Context, id string, status EmployeeStatus) error
	AssignSchedule(ctx context.Context, id string, workScheduleID string) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
