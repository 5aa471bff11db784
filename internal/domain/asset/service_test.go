package asset_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/asset"
	"maintsvc/internal/domain/events"
)

type uowStub struct{}

func (uowStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type publisherFake struct{ published []events.Event }

func (p *publisherFake) Publish(_ context.Context, e events.Event) events.Result {
	p.published = append(p.published, e)
	return events.Result{Succeeded: 1}
}

type assetRepoFake struct {
	byID map[string]asset.Asset
}

func newAssetRepoFake() *assetRepoFake {
	return &assetRepoFake{byID: map[string]asset.Asset{}}
}

func (r *assetRepoFake) Create(_ context.Context, a asset.Asset) (asset.Asset, error) {
	r.byID[a.ID] = a
	return a, nil
}

func (r *assetRepoFake) GetByID(_ context.Context, assetID string) (asset.Asset, error) {
	a, ok := r.byID[assetID]
	if !ok {
		return asset.Asset{}, notFound()
	}
	return a, nil
}

func (r *assetRepoFake) List(_ context.Context) ([]asset.Asset, error) {
	var res []asset.Asset
	for _, a := range r.byID {
		res = append(res, a)
	}
	return res, nil
}

func (r *assetRepoFake) UpdateCondition(_ context.Context, assetID string, condition asset.Condition) (asset.Asset, error) {
	a, ok := r.byID[assetID]
	if !ok {
		return asset.Asset{}, notFound()
	}
	a.Condition = condition
	r.byID[assetID] = a
	return a, nil
}

func (r *assetRepoFake) SetStatus(_ context.Context, assetID string, status asset.Status) error {
	a, ok := r.byID[assetID]
	if !ok {
		return notFound()
	}
	a.Status = status
	r.byID[assetID] = a
	return nil
}

func (r *assetRepoFake) Retire(_ context.Context, assetID string) (asset.Asset, error) {
	a, ok := r.byID[assetID]
	if !ok {
		return asset.Asset{}, notFound()
	}
	a.Status = asset.StatusRetired
	r.byID[assetID] = a
	return a, nil
}

func notFound() error {
	return &domain.DomainError{Code: domain.ErrorCodeNotFound, Message: "asset not found", HTTPStatus: http.StatusNotFound}
}

func TestCreatePublishes(t *testing.T) {
	repo := newAssetRepoFake()
	bus := &publisherFake{}
	svc := asset.NewService(uowStub{}, repo, bus)

	a, err := svc.Create(context.Background(), "Drill press", "workshop", asset.ConditionGood, decimal.NewFromInt(1200))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Status != asset.StatusAvailable {
		t.Fatalf("new asset should be available, got %s", a.Status)
	}
	if len(bus.published) != 1 || bus.published[0].Type != events.AssetCreated {
		t.Fatalf("expected ASSET_CREATED, got %+v", bus.published)
	}
}

func TestUpdateConditionPublishesOldAndNew(t *testing.T) {
	repo := newAssetRepoFake()
	repo.byID["a1"] = asset.Asset{ID: "a1", Condition: asset.ConditionGood, Status: asset.StatusAvailable}
	bus := &publisherFake{}
	svc := asset.NewService(uowStub{}, repo, bus)

	if _, err := svc.UpdateCondition(context.Background(), "a1", asset.ConditionPoor); err != nil {
		t.Fatalf("UpdateCondition: %v", err)
	}

	if len(bus.published) != 1 || bus.published[0].Type != events.AssetConditionChanged {
		t.Fatalf("expected ASSET_CONDITION_CHANGED, got %+v", bus.published)
	}
	data := bus.published[0].Data
	if data["old_condition"] != "good" || data["new_condition"] != "poor" {
		t.Fatalf("payload = %v", data)
	}
}

func TestUpdateConditionUnchangedIsSilent(t *testing.T) {
	repo := newAssetRepoFake()
	repo.byID["a1"] = asset.Asset{ID: "a1", Condition: asset.ConditionGood, Status: asset.StatusAvailable}
	bus := &publisherFake{}
	svc := asset.NewService(uowStub{}, repo, bus)

	if _, err := svc.UpdateCondition(context.Background(), "a1", asset.ConditionGood); err != nil {
		t.Fatalf("UpdateCondition: %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("unchanged condition should not publish, got %+v", bus.published)
	}
}

func TestUpdateConditionRetiredAsset(t *testing.T) {
	repo := newAssetRepoFake()
	repo.byID["a1"] = asset.Asset{ID: "a1", Condition: asset.ConditionGood, Status: asset.StatusRetired}
	bus := &publisherFake{}
	svc := asset.NewService(uowStub{}, repo, bus)

	_, err := svc.UpdateCondition(context.Background(), "a1", asset.ConditionPoor)
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeAssetRetired {
		t.Fatalf("expected ASSET_RETIRED, got %v", err)
	}
}

func TestRetirePublishes(t *testing.T) {
	repo := newAssetRepoFake()
	repo.byID["a1"] = asset.Asset{ID: "a1", Name: "Drill press", Status: asset.StatusAvailable}
	bus := &publisherFake{}
	svc := asset.NewService(uowStub{}, repo, bus)

	a, err := svc.Retire(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Retire: %v", err)
	}
	if a.Status != asset.StatusRetired {
		t.Fatalf("status = %s", a.Status)
	}
	if len(bus.published) != 1 || bus.published[0].Type != events.AssetRetired {
		t.Fatalf("expected ASSET_RETIRED, got %+v", bus.published)
	}
}

func TestCreateRejectsUnknownCondition(t *testing.T) {
	svc := asset.NewService(uowStub{}, newAssetRepoFake(), &publisherFake{})

	_, err := svc.Create(context.Background(), "Thing", "", asset.Condition("pristine"), decimal.Zero)
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeValidation {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
}
