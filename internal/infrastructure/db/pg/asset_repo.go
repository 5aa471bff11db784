package pg

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/asset"
)

type AssetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `asset_id, name, category, condition, status, purchase_cost, created_at, retired_at`

func scanAsset(row *sql.Row) (asset.Asset, error) {
	var a asset.Asset
	err := row.Scan(&a.ID, &a.Name, &a.Category, &a.Condition, &a.Status, &a.PurchaseCost, &a.CreatedAt, &a.RetiredAt)
	return a, err
}

func (r *AssetRepository) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	return scanAsset(queryRow(ctx, r.db,
		`INSERT INTO assets (asset_id, name, category, condition, status, purchase_cost)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+assetColumns,
		a.ID, a.Name, a.Category, a.Condition, a.Status, a.PurchaseCost,
	))
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID string) (asset.Asset, error) {
	a, err := scanAsset(queryRow(ctx, r.db,
		`SELECT `+assetColumns+` FROM assets WHERE asset_id = $1`,
		assetID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, assetNotFound()
	}
	if err != nil {
		return asset.Asset{}, err
	}
	return a, nil
}

func (r *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	rows, err := query(ctx, r.db,
		`SELECT `+assetColumns+` FROM assets ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []asset.Asset
	for rows.Next() {
		var a asset.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Condition, &a.Status, &a.PurchaseCost, &a.CreatedAt, &a.RetiredAt); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *AssetRepository) UpdateCondition(ctx context.Context, assetID string, condition asset.Condition) (asset.Asset, error) {
	a, err := scanAsset(queryRow(ctx, r.db,
		`UPDATE assets SET condition = $2 WHERE asset_id = $1
		 RETURNING `+assetColumns,
		assetID, condition,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, assetNotFound()
	}
	if err != nil {
		return asset.Asset{}, err
	}
	return a, nil
}

func (r *AssetRepository) SetStatus(ctx context.Context, assetID string, status asset.Status) error {
	res, err := exec(ctx, r.db,
		`UPDATE assets SET status = $2 WHERE asset_id = $1 AND status <> 'retired'`,
		assetID, status,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return assetNotFound()
	}
	return nil
}

func (r *AssetRepository) Retire(ctx context.Context, assetID string) (asset.Asset, error) {
	a, err := scanAsset(queryRow(ctx, r.db,
		`UPDATE assets SET status = 'retired', retired_at = now() WHERE asset_id = $1
		 RETURNING `+assetColumns,
		assetID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, assetNotFound()
	}
	if err != nil {
		return asset.Asset{}, err
	}
	return a, nil
}

func assetNotFound() error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeNotFound,
		Message:    "asset not found",
		HTTPStatus: http.StatusNotFound,
	}
}
