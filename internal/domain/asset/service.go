package asset

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/events"
)

type Service interface {
	Create(ctx context.Context, name, category string, condition Condition, purchaseCost decimal.Decimal) (Asset, error)
	UpdateCondition(ctx context.Context, assetID string, condition Condition) (Asset, error)
	SetStatus(ctx context.Context, assetID string, status Status) (Asset, error)
	Retire(ctx context.Context, assetID string) (Asset, error)
	GetByID(ctx context.Context, assetID string) (Asset, error)
	List(ctx context.Context) ([]Asset, error)
}

type service struct {
	uow    domain.UnitOfWork
	assets Repository
	bus    domain.EventPublisher
}

func NewService(uow domain.UnitOfWork, assets Repository, bus domain.EventPublisher) Service {
	return &service{
		uow:    uow,
		assets: assets,
		bus:    bus,
	}
}

func (s *service) Create(ctx context.Context, name, category string, condition Condition, purchaseCost decimal.Decimal) (Asset, error) {
	if name == "" {
		return Asset{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "name is required",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	if !condition.Valid() {
		return Asset{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "unknown condition",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	var res Asset
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.assets.Create(ctx, Asset{
			ID:           uuid.NewString(),
			Name:         name,
			Category:     category,
			Condition:    condition,
			Status:       StatusAvailable,
			PurchaseCost: purchaseCost,
		})
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	if err != nil {
		return Asset{}, err
	}

	s.publish(ctx, events.NewWithSource(events.AssetCreated, "AssetService.Create", map[string]any{
		"asset_id": res.ID,
		"name":     res.Name,
		"category": res.Category,
	}))

	return res, nil
}

func (s *service) UpdateCondition(ctx context.Context, assetID string, condition Condition) (Asset, error) {
	if !condition.Valid() {
		return Asset{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "unknown condition",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	var res Asset
	var old Condition

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.assets.GetByID(ctx, assetID)
		if err != nil {
			return err
		}
		if current.Status == StatusRetired {
			return &domain.DomainError{
				Code:       domain.ErrorCodeAssetRetired,
				Message:    "asset is retired",
				HTTPStatus: http.StatusConflict,
			}
		}
		old = current.Condition

		updated, err := s.assets.UpdateCondition(ctx, assetID, condition)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	if err != nil {
		return Asset{}, err
	}

	if old != condition {
		s.publish(ctx, events.NewWithSource(events.AssetConditionChanged, "AssetService.UpdateCondition", map[string]any{
			"asset_id":      res.ID,
			"old_condition": string(old),
			"new_condition": string(condition),
		}))
	}

	return res, nil
}

func (s *service) SetStatus(ctx context.Context, assetID string, status Status) (Asset, error) {
	var res Asset
	var old Status

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.assets.GetByID(ctx, assetID)
		if err != nil {
			return err
		}
		old = current.Status

		if err := s.assets.SetStatus(ctx, assetID, status); err != nil {
			return err
		}
		current.Status = status
		res = current
		return nil
	})
	if err != nil {
		return Asset{}, err
	}

	if old != status {
		s.publish(ctx, events.NewWithSource(events.AssetStatusChanged, "AssetService.SetStatus", map[string]any{
			"asset_id":   res.ID,
			"old_status": string(old),
			"new_status": string(status),
		}))
	}

	return res, nil
}

func (s *service) Retire(ctx context.Context, assetID string) (Asset, error) {
	var res Asset

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		retired, err := s.assets.Retire(ctx, assetID)
		if err != nil {
			return err
		}
		res = retired
		return nil
	})
	if err != nil {
		return Asset{}, err
	}

	s.publish(ctx, events.NewWithSource(events.AssetRetired, "AssetService.Retire", map[string]any{
		"asset_id": res.ID,
		"name":     res.Name,
	}))

	return res, nil
}

func (s *service) GetByID(ctx context.Context, assetID string) (Asset, error) {
	return s.assets.GetByID(ctx, assetID)
}

func (s *service) List(ctx context.Context) ([]Asset, error) {
	return s.assets.List(ctx)
}

func (s *service) publish(ctx context.Context, e events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, e)
	}
}
