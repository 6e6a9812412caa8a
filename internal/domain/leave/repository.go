package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, status string) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, reviewedBy *string, reviewedAt *time.Time) error

	// GetApprovedByEmployeeAndYear returns approved requests whose start date
	// falls within the given calendar year.
	GetApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)

	// GetApprovedByYear returns approved requests for all employees for the year.
	GetApprovedByYear(ctx context.Context, year int) ([]LeaveRequest, error)
}
