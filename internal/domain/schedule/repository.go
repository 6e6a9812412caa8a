package schedule

import (
	"context"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, sched WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkSchedule, error)
	List(ctx context.Context) ([]WorkSchedule, error)
	Update(ctx context.Context, sched WorkSchedule) error
	Delete(ctx context.Context, id string) error
}
