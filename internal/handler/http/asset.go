package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/asset"
	"github.com/worklane-hq/hrm-backend-go/internal/handler/http/response"
	assetservice "github.com/worklane-hq/hrm-backend-go/internal/service/asset"
)

type AssetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
	Retire(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
}

type AssetHandlerImpl struct {
	assetService *assetservice.AssetServiceImpl
}

func NewAssetHandler(assetService *assetservice.AssetServiceImpl) AssetHandler {
	return &AssetHandlerImpl{assetService: assetService}
}

// Create implements AssetHandler.
func (h *AssetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req asset.CreateAssetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create asset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.assetService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create asset service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Asset created", "asset_id", created.ID, "tag", created.Tag)
	response.Created(w, "Asset created successfully", asset.ToAssetResponse(created))
}

// List implements AssetHandler.
func (h *AssetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	assets, total, err := h.assetService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]asset.AssetResponse, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, asset.ToAssetResponse(a))
	}
	response.SuccessWithMeta(w, responses, &response.Meta{TotalItems: total})
}

// Assign implements AssetHandler.
func (h *AssetHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")

	var req asset.AssignAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign asset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assigned, err := h.assetService.Assign(r.Context(), assetID, req)
	if err != nil {
		slog.Error("Assign asset service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Asset assigned", "asset_id", assigned.ID, "employee_id", req.EmployeeID)
	response.SuccessWithMessage(w, "Asset assigned", asset.ToAssetResponse(assigned))
}

// Return implements AssetHandler.
func (h *AssetHandlerImpl) Return(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")

	returned, err := h.assetService.Return(r.Context(), assetID)
	if err != nil {
		slog.Error("Return asset service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Asset returned", "asset_id", returned.ID)
	response.SuccessWithMessage(w, "Asset returned", asset.ToAssetResponse(returned))
}

// Retire implements AssetHandler.
func (h *AssetHandlerImpl) Retire(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")

	retired, err := h.assetService.Retire(r.Context(), assetID)
	if err != nil {
		slog.Error("Retire asset service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Asset retired", "asset_id", retired.ID)
	response.SuccessWithMessage(w, "Asset retired", asset.ToAssetResponse(retired))
}

// GetByEmployee implements AssetHandler.
func (h *AssetHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	assets, err := h.assetService.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]asset.AssetResponse, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, asset.ToAssetResponse(a))
	}
	response.Success(w, responses)
}
