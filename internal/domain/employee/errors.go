package employee

import "errors"

var (
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrEmployeeEmailExists        = errors.New("email already registered")
	ErrDepartmentNotFound         = errors.New("department not found")
	ErrOnboardingAlreadyProcessed = errors.New("onboarding already processed")
)
