package leave

import "time"

// LeaveType is immutable reference data describing a category of leave.
// Created and updated by administrative action only; the calculation core
// treats it as read-only.
type LeaveType struct {
	ID          string
	Name        string
	DaysPerYear float64
	IsPaid      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

// LeaveRequest is a single employee's request for time off.
// Status transitions only pending -> approved, pending -> rejected, or
// pending -> cancelled; all three end states are terminal.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	DaysCount int

	Reason string
	Status LeaveRequestStatus

	ReviewedBy *string
	ReviewedAt *time.Time

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	EmployeeName  *string
}

// IsTerminal reports whether the request can no longer change status.
func (r *LeaveRequest) IsTerminal() bool {
	return r.Status != LeaveRequestStatusPending
}

// LeaveBalance is a derived projection per (employee, leaveType, year).
// It is recomputed on demand and never persisted. Remaining may go
// negative when approved usage exceeds entitlement.
type LeaveBalance struct {
	EmployeeID    string
	LeaveTypeID   string
	LeaveTypeName string
	Year          int
	Total         float64
	Used          float64
	Remaining     float64
}
