package stats

import "context"

type Repository interface {
	GetTechnicianStats(ctx context.Context) ([]TechnicianStat, error)
	GetAssetRequestStats(ctx context.Context) ([]AssetRequestStat, error)
}
