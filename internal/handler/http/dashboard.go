package http

import (
	"log/slog"
	"net/http"

	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	dashboardservice "github.com/worklane-hq/hrm-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	AdminSummary(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardservice.DashboardService
}

func NewDashboardHandler(dashboardService *dashboardservice.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// AdminSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.AdminSummary(r.Context())
	if err != nil {
		slog.Error("Admin summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// EmployeeSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.EmployeeSummary(r.Context())
	if err != nil {
		slog.Error("Employee summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
