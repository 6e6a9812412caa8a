package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/report"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/querycache"
	leaveservice "github.com/worklane-hq/hrm-backend-go/internal/service/leave"
)

// ReportService builds the exported report payloads. Reports are expensive
// multi-table scans, so results are cached per session scope for the TTL.
type ReportService struct {
	employeeRepo     employee.EmployeeRepository
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	cache            *querycache.Cache
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	cache *querycache.Cache,
) *ReportService {
	return &ReportService{
		employeeRepo:     employeeRepo,
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		cache:            cache,
	}
}

// LeaveBalanceReport builds the per-employee, per-type balance grid for a
// calendar year. Only active employees appear in the report.
func (s *ReportService) LeaveBalanceReport(ctx context.Context, req report.LeaveBalanceReportRequest) (report.LeaveBalanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveBalanceReport{}, err
	}

	role, userID, err := sessionScope(ctx)
	if err != nil {
		return report.LeaveBalanceReport{}, err
	}
	cacheKey := querycache.Key(role, userID, "reports", "leave-balances", strconv.Itoa(req.Year))
	if cached, ok := s.cache.Get(cacheKey); ok {
		if rep, ok := cached.(report.LeaveBalanceReport); ok {
			return rep, nil
		}
	}

	employees, _, err := s.employeeRepo.List(ctx, string(employee.EmployeeStatusActive))
	if err != nil {
		return report.LeaveBalanceReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	leaveTypes, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return report.LeaveBalanceReport{}, fmt.Errorf("failed to list leave types: %w", err)
	}

	approved, err := s.leaveRequestRepo.GetApprovedByYear(ctx, req.Year)
	if err != nil {
		return report.LeaveBalanceReport{}, fmt.Errorf("failed to list approved requests: %w", err)
	}

	balances := leaveservice.ComputeBalanceReport(employees, leaveTypes, approved, req.Year)

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.FullName
	}

	rows := make([]report.LeaveBalanceReportRow, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, report.LeaveBalanceReportRow{
			EmployeeID:    b.EmployeeID,
			EmployeeName:  names[b.EmployeeID],
			LeaveTypeID:   b.LeaveTypeID,
			LeaveTypeName: b.LeaveTypeName,
			Total:         b.Total,
			Used:          b.Used,
			Remaining:     b.Remaining,
		})
	}

	rep := report.LeaveBalanceReport{
		Year:        req.Year,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}
	s.cache.Set(cacheKey, rep)
	return rep, nil
}

// MonthlyAttendanceReport aggregates closed attendance records per employee
// for a month. Open records have no worked hours yet and are skipped.
func (s *ReportService) MonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	role, userID, err := sessionScope(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, err
	}
	cacheKey := querycache.Key(role, userID, "reports", "attendance", strconv.Itoa(req.Year), strconv.Itoa(req.Month))
	if cached, ok := s.cache.Get(cacheKey); ok {
		if rep, ok := cached.(report.MonthlyAttendanceReport); ok {
			return rep, nil
		}
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, req.Month, req.Year)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	rep := report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        BuildAttendanceRows(records),
	}
	s.cache.Set(cacheKey, rep)
	return rep, nil
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

// BuildAttendanceRows is the pure aggregation step behind MonthlyAttendanceReport.
func BuildAttendanceRows(records []attendance.Attendance) []report.MonthlyAttendanceReportRow {
	type agg struct {
		name     string
		days     int
		expected float64
		worked   float64
		breaks   float64
	}

	byEmployee := make(map[string]*agg)
	var order []string

	for _, rec := range records {
		if rec.Status != attendance.AttendanceStatusClosed {
			continue
		}
		a, ok := byEmployee[rec.EmployeeID]
		if !ok {
			a = &agg{}
			if rec.EmployeeName != nil {
				a.name = *rec.EmployeeName
			}
			byEmployee[rec.EmployeeID] = a
			order = append(order, rec.EmployeeID)
		}
		a.days++
		a.expected += rec.ExpectedHours
		if rec.WorkedHours != nil {
			a.worked += *rec.WorkedHours
		}
		if rec.BreakHours != nil {
			a.breaks += *rec.BreakHours
		}
	}

	rows := make([]report.MonthlyAttendanceReportRow, 0, len(order))
	for _, id := range order {
		a := byEmployee[id]
		rows = append(rows, report.MonthlyAttendanceReportRow{
			EmployeeID:    id,
			EmployeeName:  a.name,
			DaysPresent:   a.days,
			ExpectedHours: a.expected,
			WorkedHours:   a.worked,
			BreakHours:    a.breaks,
		})
	}
	return rows
}
