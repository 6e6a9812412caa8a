package report

import "github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"

// LeaveBalanceReport is the multi-employee balance grid for a year:
// exactly one row per (employee, leave type) pair.
type LeaveBalanceReport struct {
	Year        int                     `json:"year"`
	GeneratedAt string                  `json:"generated_at"`
	Rows        []LeaveBalanceReportRow `json:"rows"`
}

type LeaveBalanceReportRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Total         float64 `json:"total"`
	Used          float64 `json:"used"`
	Remaining     float64 `json:"remaining"`
}

type LeaveBalanceReportRequest struct {
	Year int `json:"year"`
}

func (r *LeaveBalanceReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2200",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyAttendanceReport compares expected against actual worked hours
// per employee for a month.
type MonthlyAttendanceReport struct {
	PeriodMonth int                          `json:"period_month"`
	PeriodYear  int                          `json:"period_year"`
	GeneratedAt string                       `json:"generated_at"`
	Rows        []MonthlyAttendanceReportRow `json:"rows"`
}

type MonthlyAttendanceReportRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	DaysPresent   int     `json:"days_present"`
	ExpectedHours float64 `json:"expected_hours"`
	WorkedHours   float64 `json:"worked_hours"`
	BreakHours    float64 `json:"break_hours"`
}

type MonthlyAttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2200",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
