package events_test

import (
	"testing"
	"time"

	"maintsvc/internal/domain/events"
)

func TestNewFillsIDAndTimestamp(t *testing.T) {
	before := time.Now().UTC()
	e := events.New(events.RequestCreated, map[string]any{"request_id": 7})
	after := time.Now().UTC()

	if e.ID == "" {
		t.Fatalf("event ID should be set")
	}
	if e.Timestamp.Before(before) || e.Timestamp.After(after) {
		t.Fatalf("timestamp %v outside [%v, %v]", e.Timestamp, before, after)
	}
	if e.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp should be UTC, got %v", e.Timestamp.Location())
	}
}

func TestNewUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		e := events.New(events.SystemError, nil)
		if seen[e.ID] {
			t.Fatalf("duplicate event ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestNewCopiesData(t *testing.T) {
	payload := map[string]any{"asset_id": 42}
	e := events.New(events.AssetCreated, payload)

	payload["asset_id"] = 99
	if e.Data["asset_id"] != 42 {
		t.Fatalf("event data should be independent of caller's map")
	}
}

func TestToMapRoundTrip(t *testing.T) {
	e := events.NewWithSource(events.RequestCreated, "RequestService.Create", map[string]any{"request_id": 7})
	m := e.ToMap()

	if m["event_type"] != events.RequestCreated {
		t.Fatalf("event_type = %v", m["event_type"])
	}
	if m["source"] != "RequestService.Create" {
		t.Fatalf("source = %v", m["source"])
	}
	if m["event_id"] == "" {
		t.Fatalf("event_id should be non-empty")
	}

	data, ok := m["data"].(map[string]any)
	if !ok || data["request_id"] != 7 {
		t.Fatalf("data = %v", m["data"])
	}

	ts, ok := m["timestamp"].(string)
	if !ok {
		t.Fatalf("timestamp should be a string, got %T", m["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339Nano, ts); err != nil {
		t.Fatalf("timestamp %q not parseable: %v", ts, err)
	}
}

func TestToMapReturnsCopy(t *testing.T) {
	e := events.New(events.AssetCreated, map[string]any{"asset_id": 1})
	m := e.ToMap()

	m["event_type"] = "tampered"
	m["data"].(map[string]any)["asset_id"] = 99

	if e.Type != events.AssetCreated || e.Data["asset_id"] != 1 {
		t.Fatalf("mutating ToMap result should not affect the event")
	}
}
