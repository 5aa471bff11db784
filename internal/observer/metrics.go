package observer

import (
	"context"
	"sync"

	"maintsvc/internal/domain/events"
)

// MetricsSnapshot is an independent copy of the counters; mutating it
// does not touch the observer's state.
type MetricsSnapshot struct {
	RequestsCreated    int            `json:"requests_created"`
	RequestsCompleted  int            `json:"requests_completed"`
	RequestsByType     map[string]int `json:"requests_by_type"`
	TechnicianWorkload map[string]int `json:"technician_workload"`
	AssetsCreated      int            `json:"assets_created"`
	ConditionChanges   int            `json:"condition_changes"`
}

// Metrics keeps running in-memory counters. Publishes from concurrent
// requests land here on different goroutines, so every counter update
// holds the mutex.
type Metrics struct {
	mu                 sync.Mutex
	requestsCreated    int
	requestsCompleted  int
	requestsByType     map[string]int
	technicianWorkload map[string]int
	assetsCreated      int
	conditionChanges   int
}

func NewMetrics() *Metrics {
	return &Metrics{
		requestsByType:     make(map[string]int),
		technicianWorkload: make(map[string]int),
	}
}

// Types returns the event types the metrics observer aggregates;
// bootstrap subscribes it to exactly these.
func (m *Metrics) Types() []string {
	return []string{
		events.RequestCreated,
		events.RequestAssigned,
		events.RequestCompleted,
		events.AssetCreated,
		events.AssetConditionChanged,
	}
}

func (m *Metrics) Update(_ context.Context, e events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e.Type {
	case events.RequestCreated:
		m.requestsCreated++
		if typ, ok := stringField(e.Data, "request_type"); ok {
			m.requestsByType[typ]++
		}
	case events.RequestAssigned:
		if tech, ok := stringField(e.Data, "technician_id"); ok {
			m.technicianWorkload[tech]++
		}
	case events.RequestCompleted:
		m.requestsCompleted++
	case events.AssetCreated:
		m.assetsCreated++
	case events.AssetConditionChanged:
		m.conditionChanges++
	}

	return nil
}

func (m *Metrics) Name() string { return "metrics" }

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	byType := make(map[string]int, len(m.requestsByType))
	for k, v := range m.requestsByType {
		byType[k] = v
	}
	workload := make(map[string]int, len(m.technicianWorkload))
	for k, v := range m.technicianWorkload {
		workload[k] = v
	}

	return MetricsSnapshot{
		RequestsCreated:    m.requestsCreated,
		RequestsCompleted:  m.requestsCompleted,
		RequestsByType:     byType,
		TechnicianWorkload: workload,
		AssetsCreated:      m.assetsCreated,
		ConditionChanges:   m.conditionChanges,
	}
}

func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requestsCreated = 0
	m.requestsCompleted = 0
	m.requestsByType = make(map[string]int)
	m.technicianWorkload = make(map[string]int)
	m.assetsCreated = 0
	m.conditionChanges = 0
}
