package response

import (
	"errors"
	"net/http"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/asset"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/auth"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/payroll"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/schedule"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/user"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrGoogleSignInDisabled):
		BadRequest(w, "Google sign-in is not enabled", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrOnboardingAlreadyProcessed):
		Conflict(w, "Onboarding already processed")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open attendance record", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Attendance record already closed")
	case errors.Is(err, attendance.ErrBreakInProgress):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, attendance.ErrNoActiveBreak):
		BadRequest(w, "No break in progress", nil)
	case errors.Is(err, attendance.ErrNoScheduleFound):
		BadRequest(w, "No work schedule assigned", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrInvalidClockTime):
		BadRequest(w, "Clock time must be in HH:MM format", nil)

	// Asset domain errors
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, asset.ErrAssetNotAvailable):
		Conflict(w, "Asset is not available for assignment")
	case errors.Is(err, asset.ErrAssetNotAssigned):
		Conflict(w, "Asset is not currently assigned")
	case errors.Is(err, asset.ErrAssetTagExists):
		Conflict(w, "Asset tag already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollPeriodExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
