package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/user"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	assetHandler AssetHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", employeeHandler.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", employeeHandler.Create)
				r.Get("/departments", employeeHandler.ListDepartments)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", employeeHandler.GetByID)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Put("/", employeeHandler.Update)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionOnboardingApprove))
						r.Post("/approve", employeeHandler.ApproveOnboarding)
						r.Post("/reject", employeeHandler.RejectOnboarding)
					})
					r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/balances", leaveHandler.GetBalances)
					r.With(middleware.RequirePermission(user.PermissionAssetViewAll)).Get("/assets", assetHandler.GetByEmployee)
					r.With(middleware.RequirePermission(user.PermissionPayrollManage)).Get("/payroll", payrollHandler.ListByEmployee)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListLeaveTypes)
					r.With(middleware.RequirePermission(user.PermissionLeaveManageTypes)).Post("/", leaveHandler.CreateLeaveType)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/my", leaveHandler.GetMyRequests)
					r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", leaveHandler.ListRequests)

					r.Route("/{id}", func(r chi.Router) {
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
							r.Post("/approve", leaveHandler.Approve)
							r.Post("/reject", leaveHandler.Reject)
						})
						r.Post("/cancel", leaveHandler.Cancel)
					})
				})

				r.Get("/balances/my", leaveHandler.GetMyBalances)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Post("/breaks/start", attendanceHandler.StartBreak)
				r.Post("/breaks/end", attendanceHandler.EndBreak)
				r.Get("/shift-end", attendanceHandler.ExpectedShiftEnd)
				r.Get("/my", attendanceHandler.GetMyAttendance)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.GetByID)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", scheduleHandler.Create)
					r.Post("/assign", scheduleHandler.Assign)
				})
			})

			r.Route("/assets", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAssetViewAll)).Get("/", assetHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAssetManage))
					r.Post("/", assetHandler.Create)
					r.Post("/{id}/assign", assetHandler.Assign)
					r.Post("/{id}/return", assetHandler.Return)
					r.Post("/{id}/retire", assetHandler.Retire)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
					r.Post("/", payrollHandler.Create)
					r.Get("/summary", payrollHandler.Summary)
				})
				r.Get("/{id}", payrollHandler.GetByID)
				r.Get("/{id}/payslip", payrollHandler.DownloadPayslip)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/leave-balances", reportHandler.LeaveBalances)
				r.Get("/attendance", reportHandler.MonthlyAttendance)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.With(middleware.RequireManager).Get("/admin", dashboardHandler.AdminSummary)
				r.Get("/me", dashboardHandler.EmployeeSummary)
			})
		})
	})
	return r
}
