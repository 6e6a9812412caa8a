package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	leaveservice "github.com/worklane-hq/hrm-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService   *leaveservice.LeaveService
	requestService *leaveservice.RequestService
}

func NewLeaveHandler(leaveService *leaveservice.LeaveService, requestService *leaveservice.RequestService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService:   leaveService,
		requestService: requestService,
	}
}

// CreateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		slog.Error("Create leave type service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave type created", "leave_type_id", created.ID)
	response.Created(w, "Leave type created successfully", created)
}

// ListLeaveTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.CreateRequest(r.Context(), req)
	if err != nil {
		slog.Error("Create leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "request_id", created.ID)
	response.Created(w, "Leave request submitted", leave.ToLeaveRequestResponse(created))
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.GetMyRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toLeaveRequestResponses(requests))
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, total, err := h.requestService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, toLeaveRequestResponses(requests), &response.Meta{TotalItems: total})
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.requestService.Approve, "Leave request approved")
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.requestService.Reject, "Leave request rejected")
}

func (h *LeaveHandlerImpl) review(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, requestID, reviewerID string) (leave.LeaveRequest, error), message string) {
	requestID := chi.URLParam(r, "id")

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	reviewerID, _ := claims["user_id"].(string)

	updated, err := fn(r.Context(), requestID, reviewerID)
	if err != nil {
		slog.Error("Review leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request reviewed", "request_id", updated.ID, "status", updated.Status)
	response.SuccessWithMessage(w, message, leave.ToLeaveRequestResponse(updated))
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	cancelled, err := h.requestService.Cancel(r.Context(), requestID)
	if err != nil {
		slog.Error("Cancel leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request cancelled", "request_id", cancelled.ID)
	response.SuccessWithMessage(w, "Leave request cancelled", leave.ToLeaveRequestResponse(cancelled))
}

// GetMyBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r)

	balances, err := h.leaveService.GetMyBalances(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toLeaveBalanceResponses(balances))
}

// GetBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	year := yearParam(r)

	balances, err := h.leaveService.GetBalances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toLeaveBalanceResponses(balances))
}

// yearParam reads the year query parameter, defaulting to the current year.
func yearParam(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}

func toLeaveRequestResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.ToLeaveRequestResponse(lr))
	}
	return responses
}

func toLeaveBalanceResponses(balances []leave.LeaveBalance) []leave.LeaveBalanceResponse {
	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.ToLeaveBalanceResponse(b))
	}
	return responses
}
