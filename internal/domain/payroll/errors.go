package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrPayrollPeriodExists   = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
)
