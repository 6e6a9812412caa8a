package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"
)

type CreatePayrollRecordRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	BaseSalary  string `json:"base_salary"`
	Allowances  string `json:"allowances"`
	Deductions  string `json:"deductions"`
}

func (r *CreatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year must be a valid year",
		})
	}
	for field, value := range map[string]string{
		"base_salary": r.BaseSalary,
		"allowances":  r.Allowances,
		"deductions":  r.Deductions,
	} {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a decimal amount",
			})
			continue
		}
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PeriodMonth  int     `json:"period_month"`
	PeriodYear   int     `json:"period_year"`
	BaseSalary   string  `json:"base_salary"`
	Allowances   string  `json:"allowances"`
	Deductions   string  `json:"deductions"`
	NetPay       string  `json:"net_pay"`
}

type PayrollSummaryResponse struct {
	PeriodMonth int                     `json:"period_month"`
	PeriodYear  int                     `json:"period_year"`
	TotalGross  string                  `json:"total_gross"`
	TotalNet    string                  `json:"total_net"`
	Records     []PayrollRecordResponse `json:"records"`
}

func ToPayrollRecordResponse(rec PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		PeriodMonth:  rec.PeriodMonth,
		PeriodYear:   rec.PeriodYear,
		BaseSalary:   rec.BaseSalary.StringFixed(2),
		Allowances:   rec.Allowances.StringFixed(2),
		Deductions:   rec.Deductions.StringFixed(2),
		NetPay:       rec.NetPay.StringFixed(2),
	}
}
