package asset

import "context"

type Repository interface {
	Create(ctx context.Context, a Asset) (Asset, error)
	GetByID(ctx context.Context, assetID string) (Asset, error)
	List(ctx context.Context) ([]Asset, error)
	UpdateCondition(ctx context.Context, assetID string, condition Condition) (Asset, error)
	SetStatus(ctx context.Context, assetID string, status Status) error
	Retire(ctx context.Context, assetID string) (Asset, error)
}
