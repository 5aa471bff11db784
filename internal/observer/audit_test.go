package observer_test

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"maintsvc/internal/domain/events"
	obs "maintsvc/internal/observer"
)

func TestAuditLogsEveryCatalogType(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := obs.NewAudit(zap.New(core))

	reg := events.NewRegistry(zap.NewNop())
	for _, typ := range events.AllEvents() {
		reg.Subscribe(typ, audit)
	}

	res := reg.Publish(context.Background(), events.New(events.AssetConditionChanged, map[string]any{
		"asset_id":      42,
		"old_condition": "good",
		"new_condition": "poor",
	}))

	if res.Succeeded != 1 || res.Failed != 0 {
		t.Fatalf("result = %+v", res)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["event_type"] != events.AssetConditionChanged {
		t.Fatalf("event_type = %v", fields["event_type"])
	}
	payload, _ := fields["payload"].(string)
	if !strings.Contains(payload, "asset_id=42") {
		t.Fatalf("payload %q should mention asset_id=42", payload)
	}
}

func TestAuditPayloadDeterministic(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := obs.NewAudit(zap.New(core))

	data := map[string]any{"b": 2, "a": 1, "c": 3}
	for i := 0; i < 5; i++ {
		if err := audit.Update(context.Background(), events.New(events.SystemError, data)); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	var first string
	for i, entry := range logs.All() {
		payload, _ := entry.ContextMap()["payload"].(string)
		if i == 0 {
			first = payload
			if first != "a=1 b=2 c=3" {
				t.Fatalf("payload = %q, want sorted key=value form", first)
			}
			continue
		}
		if payload != first {
			t.Fatalf("payload rendering not stable: %q vs %q", payload, first)
		}
	}
}

func TestAuditTruncatesEventID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := obs.NewAudit(zap.New(core))

	e := events.New(events.UserLogin, nil)
	if err := audit.Update(context.Background(), e); err != nil {
		t.Fatalf("Update: %v", err)
	}

	logged, _ := logs.All()[0].ContextMap()["event_id"].(string)
	if len(logged) != 8 || !strings.HasPrefix(e.ID, logged) {
		t.Fatalf("event_id %q should be the first 8 chars of %q", logged, e.ID)
	}
}
