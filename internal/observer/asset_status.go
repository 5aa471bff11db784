package observer

import (
	"context"
	"fmt"

	"maintsvc/internal/domain/asset"
	"maintsvc/internal/domain/events"
)

// AssetStatusWriter mutates an asset's status. The pg asset repository
// satisfies it.
type AssetStatusWriter interface {
	SetStatus(ctx context.Context, assetID string, status asset.Status) error
}

// AssetStatus propagates request-side facts into the asset aggregate.
// The two aggregates never call each other directly; everything it needs
// arrives in the event payload.
type AssetStatus struct {
	assets AssetStatusWriter
}

func NewAssetStatus(assets AssetStatusWriter) *AssetStatus {
	return &AssetStatus{assets: assets}
}

// Types returns the event types this observer reacts to.
func (o *AssetStatus) Types() []string {
	return []string{
		events.RequestAssigned,
		events.RequestCompleted,
		events.AssetConditionChanged,
	}
}

func (o *AssetStatus) Update(ctx context.Context, e events.Event) error {
	switch e.Type {
	case events.RequestAssigned:
		// Not every request touches an asset; absence of the key is fine.
		assetID, ok := stringField(e.Data, "asset_id")
		if !ok {
			return nil
		}
		return o.assets.SetStatus(ctx, assetID, asset.StatusUnderMaintenance)

	case events.RequestCompleted:
		assetID, ok := stringField(e.Data, "asset_id")
		if !ok {
			return nil
		}
		return o.assets.SetStatus(ctx, assetID, asset.StatusAvailable)

	case events.AssetConditionChanged:
		assetID, ok := stringField(e.Data, "asset_id")
		if !ok {
			return fmt.Errorf("event %s: %s payload missing asset_id", e.ID, e.Type)
		}
		cond, _ := stringField(e.Data, "new_condition")
		if asset.Condition(cond).Degraded() {
			return o.assets.SetStatus(ctx, assetID, asset.StatusNeedsInspection)
		}
		return nil
	}

	return nil
}

func (o *AssetStatus) Name() string { return "asset_status" }
