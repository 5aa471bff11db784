package bootstrap

import (
	"maintsvc/internal/domain/events"
	"maintsvc/internal/observer"
)

// Observers bundles the process-wide observer instances so handlers and
// the scheduler can reach the same state the registry dispatches into.
type Observers struct {
	Audit       *observer.Audit
	Metrics     *observer.Metrics
	AssetStatus *observer.AssetStatus
	Notify      *observer.Notification
}

// Wire subscribes every observer to the event types it reacts to. It
// runs once at startup, before the server accepts traffic; after that
// the registry's subscription state is effectively read-only.
func Wire(reg *events.Registry, obs Observers) {
	for _, typ := range events.AllEvents() {
		reg.Subscribe(typ, obs.Audit)
	}
	for _, typ := range obs.Metrics.Types() {
		reg.Subscribe(typ, obs.Metrics)
	}
	for _, typ := range obs.AssetStatus.Types() {
		reg.Subscribe(typ, obs.AssetStatus)
	}
	for _, typ := range obs.Notify.Types() {
		reg.Subscribe(typ, obs.Notify)
	}
}
