package employee

import "time"

type EmployeeStatus string

const (
	// Onboarding lifecycle: pending -> active (approved) or pending -> rejected.
	// Inactive is reachable from active when an employee leaves the company.
	EmployeeStatusPending  EmployeeStatus = "pending"
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusRejected EmployeeStatus = "rejected"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

type Employee struct {
	ID           string
	UserID       *string
	FullName     string
	Email        string
	DepartmentID *string
	Position     *string
	HireDate     time.Time
	Status       EmployeeStatus

	WorkScheduleID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	DepartmentName *string
}

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
