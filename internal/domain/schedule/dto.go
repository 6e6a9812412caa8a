package schedule

import (
	"regexp"

	"github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"
)

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type CreateWorkScheduleRequest struct {
	Name               string `json:"name"`
	WorkStart          string `json:"work_start"`
	WorkEnd            string `json:"work_end"`
	GracePeriodMinutes int    `json:"grace_period_minutes"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !clockTimeRegex.MatchString(r.WorkStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start",
			Message: "work_start must be in HH:MM format",
		})
	}
	if !clockTimeRegex.MatchString(r.WorkEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end",
			Message: "work_end must be in HH:MM format",
		})
	}
	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignScheduleRequest struct {
	EmployeeID     string `json:"employee_id"`
	WorkScheduleID string `json:"work_schedule_id"`
}

type WorkScheduleResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	WorkStart          string  `json:"work_start"`
	WorkEnd            string  `json:"work_end"`
	GracePeriodMinutes int     `json:"grace_period_minutes"`
	CrossMidnight      bool    `json:"cross_midnight"`
	ExpectedHours      float64 `json:"expected_hours"`
}
