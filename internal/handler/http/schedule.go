package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/schedule"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	attendanceservice "github.com/worklane-hq/hrm-backend-go/internal/service/attendance"
	scheduleservice "github.com/worklane-hq/hrm-backend-go/internal/service/schedule"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService *scheduleservice.ScheduleServiceImpl
}

func NewScheduleHandler(scheduleService *scheduleservice.ScheduleServiceImpl) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWorkScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Work schedule created", "schedule_id", created.ID)
	response.Created(w, "Work schedule created successfully", toWorkScheduleResponse(created))
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, toWorkScheduleResponse(ws))
	}
	response.Success(w, responses)
}

// GetByID implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ws, err := h.scheduleService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toWorkScheduleResponse(ws))
}

// Assign implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.Assign(r.Context(), req); err != nil {
		slog.Error("Assign schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Work schedule assigned", "employee_id", req.EmployeeID, "schedule_id", req.WorkScheduleID)
	response.SuccessWithMessage(w, "Work schedule assigned", nil)
}

func toWorkScheduleResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	return schedule.WorkScheduleResponse{
		ID:                 ws.ID,
		Name:               ws.Name,
		WorkStart:          ws.WorkStart,
		WorkEnd:            ws.WorkEnd,
		GracePeriodMinutes: ws.GracePeriodMinutes,
		CrossMidnight:      attendanceservice.IsCrossMidnight(ws.WorkStart, ws.WorkEnd),
		ExpectedHours:      attendanceservice.ExpectedHours(ws.WorkStart, ws.WorkEnd),
	}
}
