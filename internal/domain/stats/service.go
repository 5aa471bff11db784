package stats

import "context"

type Service interface {
	GetTechnicianStats(ctx context.Context) ([]TechnicianStat, error)
	GetAssetRequestStats(ctx context.Context) ([]AssetRequestStat, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetTechnicianStats(ctx context.Context) ([]TechnicianStat, error) {
	return s.repo.GetTechnicianStats(ctx)
}

func (s *service) GetAssetRequestStats(ctx context.Context) ([]AssetRequestStat, error) {
	return s.repo.GetAssetRequestStats(ctx)
}
