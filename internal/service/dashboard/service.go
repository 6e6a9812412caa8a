package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/dashboard"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/querycache"
	leaveservice "github.com/worklane-hq/hrm-backend-go/internal/service/leave"
)

// recentAttendanceDays bounds the employee dashboard's attendance window.
const recentAttendanceDays = 14

// DashboardService assembles the widget payloads. Summaries are cached per
// session scope; sign-in and sign-out evict by key prefix.
type DashboardService struct {
	dashboardRepo    dashboard.DashboardRepository
	leaveService     *leaveservice.LeaveService
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	cache            *querycache.Cache
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	leaveService *leaveservice.LeaveService,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	cache *querycache.Cache,
) *DashboardService {
	return &DashboardService{
		dashboardRepo:    dashboardRepo,
		leaveService:     leaveService,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		cache:            cache,
	}
}

// AdminSummary returns the admin widget counts, cached per session scope.
func (s *DashboardService) AdminSummary(ctx context.Context) (dashboard.AdminSummary, error) {
	role, userID, err := sessionScope(ctx)
	if err != nil {
		return dashboard.AdminSummary{}, err
	}

	cacheKey := querycache.Key(role, userID, "dashboard", "admin")
	if cached, ok := s.cache.Get(cacheKey); ok {
		if summary, ok := cached.(dashboard.AdminSummary); ok {
			return summary, nil
		}
	}

	today := leave.FormatLocalDate(time.Now())
	summary, err := s.dashboardRepo.GetAdminSummary(ctx, today)
	if err != nil {
		return dashboard.AdminSummary{}, err
	}

	s.cache.Set(cacheKey, summary)
	return summary, nil
}

// EmployeeSummary returns the calling employee's dashboard payload: current
// year balances, pending requests, and recent attendance.
func (s *DashboardService) EmployeeSummary(ctx context.Context) (dashboard.EmployeeSummary, error) {
	role, userID, err := sessionScope(ctx)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}

	cacheKey := querycache.Key(role, userID, "dashboard", "employee")
	if cached, ok := s.cache.Get(cacheKey); ok {
		if summary, ok := cached.(dashboard.EmployeeSummary); ok {
			return summary, nil
		}
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}

	now := time.Now()

	balances, err := s.leaveService.GetBalances(ctx, employeeID, now.Year())
	if err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to get balances: %w", err)
	}

	requests, err := s.leaveRequestRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to get leave requests: %w", err)
	}

	from := leave.FormatLocalDate(now.AddDate(0, 0, -recentAttendanceDays))
	to := leave.FormatLocalDate(now)
	records, err := s.attendanceRepo.GetByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	summary := dashboard.EmployeeSummary{
		Balances:         make([]leave.LeaveBalanceResponse, 0, len(balances)),
		PendingRequests:  make([]leave.LeaveRequestResponse, 0),
		RecentAttendance: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, b := range balances {
		summary.Balances = append(summary.Balances, leave.ToLeaveBalanceResponse(b))
	}
	for _, lr := range requests {
		if lr.Status == leave.LeaveRequestStatusPending {
			summary.PendingRequests = append(summary.PendingRequests, leave.ToLeaveRequestResponse(lr))
		}
	}
	for _, rec := range records {
		summary.RecentAttendance = append(summary.RecentAttendance, attendance.ToAttendanceResponse(rec))
	}

	s.cache.Set(cacheKey, summary)
	return summary, nil
}

// sessionScope extracts the role and user id claims used to namespace cache keys.
func sessionScope(ctx context.Context) (role string, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ = claims["role"].(string)
	userID, _ = claims["user_id"].(string)
	if role == "" || userID == "" {
		return "", "", fmt.Errorf("role or user_id claim is missing")
	}
	return role, userID, nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}
