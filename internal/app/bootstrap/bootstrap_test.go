package bootstrap_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"maintsvc/internal/app/bootstrap"
	"maintsvc/internal/domain/asset"
	"maintsvc/internal/domain/events"
	"maintsvc/internal/observer"
)

type noopWriter struct{}

func (noopWriter) SetStatus(context.Context, string, asset.Status) error { return nil }

type noopSender struct{}

func (noopSender) Send(context.Context, string, string, string) error { return nil }

func newObservers() bootstrap.Observers {
	return bootstrap.Observers{
		Audit:       observer.NewAudit(zap.NewNop()),
		Metrics:     observer.NewMetrics(),
		AssetStatus: observer.NewAssetStatus(noopWriter{}),
		Notify:      observer.NewNotification(noopSender{}),
	}
}

func TestWireSubscribesAuditToEveryType(t *testing.T) {
	reg := events.NewRegistry(zap.NewNop())
	bootstrap.Wire(reg, newObservers())

	for _, typ := range events.AllEvents() {
		found := false
		for _, o := range reg.Observers(typ) {
			if o.Name() == "audit" {
				found = true
			}
		}
		if !found {
			t.Fatalf("audit not subscribed to %s", typ)
		}
	}
}

func TestWireIsIdempotent(t *testing.T) {
	reg := events.NewRegistry(zap.NewNop())
	obs := newObservers()

	bootstrap.Wire(reg, obs)
	before := reg.TotalObservers()
	bootstrap.Wire(reg, obs)

	if after := reg.TotalObservers(); after != before {
		t.Fatalf("double Wire changed subscriptions: %d -> %d", before, after)
	}
}

func TestWireOrderAuditFirst(t *testing.T) {
	reg := events.NewRegistry(zap.NewNop())
	bootstrap.Wire(reg, newObservers())

	list := reg.Observers(events.RequestAssigned)
	if len(list) == 0 || list[0].Name() != "audit" {
		t.Fatalf("audit should be notified first for %s", events.RequestAssigned)
	}
}
