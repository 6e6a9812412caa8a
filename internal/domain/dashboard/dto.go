package dashboard

import (
	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
)

// AdminSummary feeds the admin dashboard widgets.
type AdminSummary struct {
	ActiveEmployees   int64 `json:"active_employees"`
	PendingOnboarding int64 `json:"pending_onboarding"`
	PendingLeave      int64 `json:"pending_leave"`
	OnLeaveToday      int64 `json:"on_leave_today"`
	UnassignedAssets  int64 `json:"unassigned_assets"`
}

// EmployeeSummary feeds the employee dashboard.
type EmployeeSummary struct {
	Balances         []leave.LeaveBalanceResponse    `json:"balances"`
	PendingRequests  []leave.LeaveRequestResponse    `json:"pending_requests"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
}
