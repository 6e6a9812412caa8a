package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	BaseSalary decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	NetPay     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
}

// ComputeNetPay derives NetPay from the record's components.
func (p *PayrollRecord) ComputeNetPay() decimal.Decimal {
	return p.BaseSalary.Add(p.Allowances).Sub(p.Deductions)
}
