package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/asset"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type AssetServiceImpl struct {
	db *database.DB
	asset.AssetRepository
	employee.EmployeeRepository
}

func NewAssetService(db *database.DB, assetRepository asset.AssetRepository, employeeRepository employee.EmployeeRepository) *AssetServiceImpl {
	return &AssetServiceImpl{
		db:                 db,
		AssetRepository:    assetRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *AssetServiceImpl) Create(ctx context.Context, req asset.CreateAssetRequest) (asset.Asset, error) {
	if err := req.Validate(); err != nil {
		return asset.Asset{}, err
	}

	created, err := s.AssetRepository.Create(ctx, asset.Asset{
		Tag:      generateAssetTag(req.Category),
		Name:     req.Name,
		Category: req.Category,
		Status:   asset.AssetStatusAvailable,
	})
	if err != nil {
		return asset.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}
	return created, nil
}

func (s *AssetServiceImpl) List(ctx context.Context, status string) ([]asset.Asset, int64, error) {
	assets, total, err := s.AssetRepository.List(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, total, nil
}

func (s *AssetServiceImpl) Assign(ctx context.Context, assetID string, req asset.AssignAssetRequest) (asset.Asset, error) {
	a, err := s.getByID(ctx, assetID)
	if err != nil {
		return asset.Asset{}, err
	}

	if a.Status != asset.AssetStatusAvailable {
		return asset.Asset{}, asset.ErrAssetNotAvailable
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return asset.Asset{}, err
		}
		return asset.Asset{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := time.Now()
	a.Status = asset.AssetStatusAssigned
	a.AssignedTo = &req.EmployeeID
	a.AssignedAt = &now

	if err := s.AssetRepository.Update(ctx, a); err != nil {
		return asset.Asset{}, fmt.Errorf("failed to assign asset: %w", err)
	}
	return a, nil
}

func (s *AssetServiceImpl) Return(ctx context.Context, assetID string) (asset.Asset, error) {
	a, err := s.getByID(ctx, assetID)
	if err != nil {
		return asset.Asset{}, err
	}

	if a.Status != asset.AssetStatusAssigned {
		return asset.Asset{}, asset.ErrAssetNotAssigned
	}

	a.Status = asset.AssetStatusAvailable
	a.AssignedTo = nil
	a.AssignedAt = nil

	if err := s.AssetRepository.Update(ctx, a); err != nil {
		return asset.Asset{}, fmt.Errorf("failed to return asset: %w", err)
	}
	return a, nil
}

func (s *AssetServiceImpl) Retire(ctx context.Context, assetID string) (asset.Asset, error) {
	a, err := s.getByID(ctx, assetID)
	if err != nil {
		return asset.Asset{}, err
	}

	a.Status = asset.AssetStatusRetired
	a.AssignedTo = nil
	a.AssignedAt = nil

	if err := s.AssetRepository.Update(ctx, a); err != nil {
		return asset.Asset{}, fmt.Errorf("failed to retire asset: %w", err)
	}
	return a, nil
}

func (s *AssetServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]asset.Asset, error) {
	assets, err := s.AssetRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee assets: %w", err)
	}
	return assets, nil
}

func (s *AssetServiceImpl) getByID(ctx context.Context, id string) (asset.Asset, error) {
	a, err := s.AssetRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, asset.ErrAssetNotFound) {
			return asset.Asset{}, err
		}
		return asset.Asset{}, fmt.Errorf("failed to get asset: %w", err)
	}
	return a, nil
}

// generateAssetTag builds a human-scannable tag like "LAPTOP-1f2a3b4c".
func generateAssetTag(category string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(category, " ", "-"))
	if len(prefix) > 12 {
		prefix = prefix[:12]
	}
	return prefix + "-" + uuid.NewString()[:8]
}
