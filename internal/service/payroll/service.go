package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/payroll"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	employee.EmployeeRepository
}

func NewPayrollService(db *database.DB, payrollRepository payroll.PayrollRepository, employeeRepository employee.EmployeeRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		db:                 db,
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRecordRequest) (payroll.PayrollRecord, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecord{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollRecord{}, err
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}

	_, err := s.PayrollRepository.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
	if err == nil {
		return payroll.PayrollRecord{}, payroll.ErrPayrollPeriodExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	// Validate() already guaranteed these parse
	baseSalary, _ := decimal.NewFromString(req.BaseSalary)
	allowances, _ := decimal.NewFromString(req.Allowances)
	deductions, _ := decimal.NewFromString(req.Deductions)

	record := payroll.PayrollRecord{
		EmployeeID:  req.EmployeeID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		BaseSalary:  baseSalary,
		Allowances:  allowances,
		Deductions:  deductions,
	}
	record.NetPay = record.ComputeNetPay()

	created, err := s.PayrollRepository.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}
	return created, nil
}

func (s *PayrollServiceImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	record, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollRecord{}, err
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return record, nil
}

func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	records, err := s.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return records, nil
}

// Summary totals a period across all employees with exact decimal
// arithmetic; gross is base plus allowances before deductions.
func (s *PayrollServiceImpl) Summary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	if month < 1 || month > 12 {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	records, err := s.PayrollRepository.ListByPeriod(ctx, month, year)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	return BuildSummary(records, month, year), nil
}

// BuildSummary is the pure aggregation step behind Summary.
func BuildSummary(records []payroll.PayrollRecord, month, year int) payroll.PayrollSummaryResponse {
	totalGross := decimal.Zero
	totalNet := decimal.Zero
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))

	for _, rec := range records {
		gross := rec.BaseSalary.Add(rec.Allowances)
		totalGross = totalGross.Add(gross)
		totalNet = totalNet.Add(rec.NetPay)

		responses = append(responses, payroll.ToPayrollRecordResponse(rec))
	}

	return payroll.PayrollSummaryResponse{
		PeriodMonth: month,
		PeriodYear:  year,
		TotalGross:  totalGross.StringFixed(2),
		TotalNet:    totalNet.StringFixed(2),
		Records:     responses,
	}
}
