package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	employeeservice "github.com/worklane-hq/hrm-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ApproveOnboarding(w http.ResponseWriter, r *http.Request)
	RejectOnboarding(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeservice.EmployeeServiceImpl
}

func NewEmployeeHandler(employeeService *employeeservice.EmployeeServiceImpl) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", created.ID)
	response.Created(w, "Employee created successfully", employee.ToEmployeeResponse(created))
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponse(emp))
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	employees, total, err := h.employeeService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}

	response.SuccessWithMeta(w, responses, &response.Meta{TotalItems: total})
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employee.ToEmployeeResponse(updated))
}

// ApproveOnboarding implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ApproveOnboarding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.ApproveOnboarding(r.Context(), id)
	if err != nil {
		slog.Error("Approve onboarding service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Onboarding approved", "employee_id", emp.ID)
	response.SuccessWithMessage(w, "Onboarding approved", employee.ToEmployeeResponse(emp))
}

// RejectOnboarding implements EmployeeHandler.
func (h *EmployeeHandlerImpl) RejectOnboarding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.RejectOnboarding(r.Context(), id)
	if err != nil {
		slog.Error("Reject onboarding service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Onboarding rejected", "employee_id", emp.ID)
	response.SuccessWithMessage(w, "Onboarding rejected", employee.ToEmployeeResponse(emp))
}

// ListDepartments implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.employeeService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, employee.ToDepartmentResponse(dept))
	}
	response.Success(w, responses)
}
