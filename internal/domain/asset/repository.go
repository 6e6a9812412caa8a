package asset

import (
	"context"
)

type AssetRepository interface {
	Create(ctx context.Context, a Asset) (Asset, error)
	GetByID(ctx context.Context, id string) (Asset, error)
	List(ctx context.Context, status string) ([]Asset, int64, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Asset, error)
	Update(ctx context.Context, a Asset) error
	CountUnassigned(ctx context.Context) (int64, error)
}
