package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/asset"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type assetRepositoryImpl struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) asset.AssetRepository {
	return &assetRepositoryImpl{db: db}
}

const assetColumns = `
	a.id, a.tag, a.name, a.category, a.status, a.assigned_to, a.assigned_at,
	a.created_at, a.updated_at, e.full_name
`

func scanAsset(row pgx.Row) (asset.Asset, error) {
	var a asset.Asset
	err := row.Scan(
		&a.ID,
		&a.Tag,
		&a.Name,
		&a.Category,
		&a.Status,
		&a.AssignedTo,
		&a.AssignedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.AssignedToName,
	)
	return a, err
}

func (r *assetRepositoryImpl) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assets (id, tag, name, category, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.Tag,
		a.Name,
		a.Category,
		a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return asset.Asset{}, err
	}
	return a, nil
}

func (r *assetRepositoryImpl) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE a.id = $1
	`

	a, err := scanAsset(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, err
	}
	return a, nil
}

func (r *assetRepositoryImpl) List(ctx context.Context, status string) ([]asset.Asset, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE ($1 = '' OR a.status = $1)
		ORDER BY a.tag ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM assets
		WHERE ($1 = '' OR status = $1)
	`
	var total int64
	if err := q.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (r *assetRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE a.assigned_to = $1
		ORDER BY a.assigned_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *assetRepositoryImpl) Update(ctx context.Context, a asset.Asset) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assets
		SET name = $2, category = $3, status = $4, assigned_to = $5, assigned_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		a.ID,
		a.Name,
		a.Category,
		a.Status,
		a.AssignedTo,
		a.AssignedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}

func (r *assetRepositoryImpl) CountUnassigned(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM assets WHERE status = 'available'`

	var count int64
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
