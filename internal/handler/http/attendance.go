package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	attendanceservice "github.com/worklane-hq/hrm-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	ExpectedShiftEnd(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceservice.AttendanceServiceImpl
}

func NewAttendanceHandler(attendanceService *attendanceservice.AttendanceServiceImpl) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ClockIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	att, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clocked in", "attendance_id", att.ID)
	response.Created(w, "Clocked in successfully", attendance.ToAttendanceResponse(att))
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ClockOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	att, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clocked out", "attendance_id", att.ID)
	response.SuccessWithMessage(w, "Clocked out successfully", attendance.ToAttendanceResponse(att))
}

// StartBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.BreakRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("StartBreak decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	brk, err := h.attendanceService.StartBreak(r.Context(), req)
	if err != nil {
		slog.Error("StartBreak service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break started", attendance.ToBreakResponse(brk))
}

// EndBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.BreakRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("EndBreak decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	brk, err := h.attendanceService.EndBreak(r.Context(), req)
	if err != nil {
		slog.Error("EndBreak service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", attendance.ToBreakResponse(brk))
}

// ExpectedShiftEnd implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ExpectedShiftEnd(w http.ResponseWriter, r *http.Request) {
	shiftEnd, err := h.attendanceService.ExpectedShiftEnd(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{
		"expected_shift_end": shiftEnd.Format(time.RFC3339),
	})
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	records, err := h.attendanceService.GetMyAttendance(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToAttendanceResponse(rec))
	}
	response.Success(w, responses)
}
