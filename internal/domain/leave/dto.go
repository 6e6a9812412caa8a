package leave

import (
	"fmt"
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"
)

// FormatLocalDate renders t as a YYYY-MM-DD string from its local calendar
// components. Serializing through UTC instead would shift the date by one
// day near midnight in zones behind UTC.
func FormatLocalDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

type CreateLeaveTypeRequest struct {
	Name        string  `json:"name"`
	DaysPerYear float64 `json:"days_per_year"`
	IsPaid      bool    `json:"is_paid"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.DaysPerYear < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_per_year",
			Message: "days_per_year must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLeaveRequestRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD, local calendar date
	EndDate     string `json:"end_date"`   // YYYY-MM-DD, local calendar date
	Reason      string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason"`
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysCount     int     `json:"days_count"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
}

func ToLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		EmployeeName:  lr.EmployeeName,
		LeaveTypeID:   lr.LeaveTypeID,
		LeaveTypeName: lr.LeaveTypeName,
		StartDate:     FormatLocalDate(lr.StartDate),
		EndDate:       FormatLocalDate(lr.EndDate),
		DaysCount:     lr.DaysCount,
		Reason:        lr.Reason,
		Status:        string(lr.Status),
		ReviewedBy:    lr.ReviewedBy,
	}
	if lr.ReviewedAt != nil {
		reviewedAt := lr.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

type LeaveBalanceResponse struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Year          int     `json:"year"`
	Total         float64 `json:"total"`
	Used          float64 `json:"used"`
	Remaining     float64 `json:"remaining"`
}

func ToLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		LeaveTypeID:   b.LeaveTypeID,
		LeaveTypeName: b.LeaveTypeName,
		Year:          b.Year,
		Total:         b.Total,
		Used:          b.Used,
		Remaining:     b.Remaining,
	}
}
