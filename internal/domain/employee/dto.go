package employee

import "github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	DepartmentID *string `json:"department_id"`
	Position     *string `json:"position"`
	HireDate     string  `json:"hire_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name"`
	DepartmentID *string `json:"department_id"`
	Position     *string `json:"position"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	Position       *string `json:"position,omitempty"`
	HireDate       string  `json:"hire_date"`
	Status         string  `json:"status"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FullName:       e.FullName,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Position:       e.Position,
		HireDate:       e.HireDate.Format("2006-01-02"),
		Status:         string(e.Status),
	}
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}
