package observer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"maintsvc/internal/domain/events"
)

// Audit writes one structured log entry per event and forms the audit
// trail; bootstrap subscribes it to every catalog type. It is strictly
// best-effort: a failure in the audit path must never mask or block
// sibling observers, so Update always returns nil.
type Audit struct {
	log *zap.Logger
}

func NewAudit(log *zap.Logger) *Audit {
	return &Audit{log: log}
}

func (a *Audit) Update(_ context.Context, e events.Event) error {
	defer func() {
		recover()
	}()

	a.log.Info("audit",
		zap.String("event_id", shortID(e.ID)),
		zap.String("event_type", e.Type),
		zap.String("source", e.Source),
		zap.Time("occurred_at", e.Timestamp),
		zap.String("payload", flatten(e.Data)),
	)

	return nil
}

func (a *Audit) Name() string { return "audit" }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// flatten renders the payload as sorted key=value pairs so identical
// events always log identically.
func flatten(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return strings.Join(parts, " ")
}
