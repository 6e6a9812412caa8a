package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/report"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	reportservice "github.com/worklane-hq/hrm-backend-go/internal/service/report"
)

type ReportHandler interface {
	LeaveBalances(w http.ResponseWriter, r *http.Request)
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportservice.ReportService
}

func NewReportHandler(reportService *reportservice.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// LeaveBalances implements ReportHandler.
func (h *ReportHandlerImpl) LeaveBalances(w http.ResponseWriter, r *http.Request) {
	req := report.LeaveBalanceReportRequest{Year: time.Now().Year()}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	result, err := h.reportService.LeaveBalanceReport(r.Context(), req)
	if err != nil {
		slog.Error("Leave balance report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := report.MonthlyAttendanceReportRequest{Month: int(now.Month()), Year: now.Year()}
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = month
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	result, err := h.reportService.MonthlyAttendanceReport(r.Context(), req)
	if err != nil {
		slog.Error("Monthly attendance report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
