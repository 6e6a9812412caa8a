package payroll

import (
	"context"
)

type PayrollRepository interface {
	Create(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
}
