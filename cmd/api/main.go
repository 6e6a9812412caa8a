package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/config"
	appHTTP "github.com/worklane-hq/hrm-backend-go/internal/handler/http"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/jwt"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/oauth"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/querycache"
	"github.com/worklane-hq/hrm-backend-go/internal/repository/postgresql"
	assetService "github.com/worklane-hq/hrm-backend-go/internal/service/asset"
	attendanceService "github.com/worklane-hq/hrm-backend-go/internal/service/attendance"
	serviceAuth "github.com/worklane-hq/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/worklane-hq/hrm-backend-go/internal/service/dashboard"
	employeeService "github.com/worklane-hq/hrm-backend-go/internal/service/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/service/leave"
	payrollService "github.com/worklane-hq/hrm-backend-go/internal/service/payroll"
	reportService "github.com/worklane-hq/hrm-backend-go/internal/service/report"
	scheduleService "github.com/worklane-hq/hrm-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	assetRepo := postgresql.NewAssetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	cacheTTL, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil {
		log.Fatal("Invalid cache TTL:", err)
	}
	cache := querycache.New(cacheTTL)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var GoogleService oauth.GoogleService
	if cfg.GoogleEnabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository, GoogleService, cache)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo)
	leaveSvc := leave.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo)
	requestSvc := leave.NewRequestService(db, leaveTypeRepo, leaveRequestRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, workScheduleRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, workScheduleRepo, employeeRepo)
	assetSvc := assetService.NewAssetService(db, assetRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, leaveTypeRepo, leaveRequestRepo, attendanceRepo, cache)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, leaveSvc, leaveRequestRepo, attendanceRepo, cache)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc, requestSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	assetHandler := appHTTP.NewAssetHandler(assetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		employeeHandler,
		leaveHandler,
		attendanceHandler,
		scheduleHandler,
		assetHandler,
		payrollHandler,
		reportHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
