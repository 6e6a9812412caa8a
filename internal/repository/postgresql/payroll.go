package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/payroll"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.period_month, p.period_year,
	p.base_salary, p.allowances, p.deductions, p.net_pay,
	p.created_at, p.updated_at, e.full_name
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.PeriodMonth,
		&rec.PeriodYear,
		&rec.BaseSalary,
		&rec.Allowances,
		&rec.Deductions,
		&rec.NetPay,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_month, period_year,
			base_salary, allowances, deductions, net_pay,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.PeriodMonth,
		rec.PeriodYear,
		rec.BaseSalary,
		rec.Allowances,
		rec.Deductions,
		rec.NetPay,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		INNER JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		INNER JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		INNER JOIN employees e ON e.id = p.employee_id
		WHERE p.period_month = $1 AND p.period_year = $2
		ORDER BY e.full_name ASC
	`
	return r.queryRecords(ctx, query, month, year)
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		INNER JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.period_year DESC, p.period_month DESC
	`
	return r.queryRecords(ctx, query, employeeID)
}

func (r *payrollRepositoryImpl) queryRecords(ctx context.Context, query string, args ...any) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
