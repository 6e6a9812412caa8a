package asset

import (
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"
)

type CreateAssetRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (r *CreateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignAssetRequest struct {
	EmployeeID string `json:"employee_id"`
}

type AssetResponse struct {
	ID             string  `json:"id"`
	Tag            string  `json:"tag"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	AssignedTo     *string `json:"assigned_to,omitempty"`
	AssignedToName *string `json:"assigned_to_name,omitempty"`
	AssignedAt     *string `json:"assigned_at,omitempty"`
}

func ToAssetResponse(a Asset) AssetResponse {
	resp := AssetResponse{
		ID:             a.ID,
		Tag:            a.Tag,
		Name:           a.Name,
		Category:       a.Category,
		Status:         string(a.Status),
		AssignedTo:     a.AssignedTo,
		AssignedToName: a.AssignedToName,
	}
	if a.AssignedAt != nil {
		assignedAt := a.AssignedAt.Format(time.RFC3339)
		resp.AssignedAt = &assignedAt
	}
	return resp
}
