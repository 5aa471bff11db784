package events

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Result aggregates the outcome of one dispatch. Publish never fails as a
// whole; per-observer failures are counted here instead.
type Result struct {
	Succeeded       int
	Failed          int
	FailedObservers []string
}

// Registry is the in-process pub/sub mediator. Subscriber lists are keyed
// by event type and preserve insertion order, which is the notification
// order. One instance is constructed in main and shared by reference;
// bootstrap populates it before traffic starts, so steady-state publishes
// only take the read lock.
type Registry struct {
	mu   sync.RWMutex
	subs map[string][]Observer
	log  *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		subs: make(map[string][]Observer),
		log:  log,
	}
}

// Subscribe attaches the observer to the type's list. Subscribing the
// same observer to the same type twice is a no-op.
func (r *Registry) Subscribe(eventType string, o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cur := range r.subs[eventType] {
		if cur == o {
			r.log.Debug("duplicate subscription ignored",
				zap.String("event_type", eventType),
				zap.String("observer", o.Name()),
			)
			return
		}
	}
	r.subs[eventType] = append(r.subs[eventType], o)
}

// Unsubscribe removes the observer from the type's list. Removing a
// non-member is a no-op; removing the last observer clears the entry.
func (r *Registry) Unsubscribe(eventType string, o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.subs[eventType]
	for i, cur := range list {
		if cur == o {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(r.subs, eventType)
			} else {
				r.subs[eventType] = list
			}
			return
		}
	}
}

// Publish invokes every observer subscribed to the event's type, in
// subscription order, on the calling goroutine. A failing observer is
// recorded and logged but never stops its siblings. Publishing a type
// with no subscribers is valid and returns a zero result.
func (r *Registry) Publish(ctx context.Context, e Event) Result {
	r.mu.RLock()
	observers := append([]Observer(nil), r.subs[e.Type]...)
	r.mu.RUnlock()

	res := Result{FailedObservers: []string{}}
	for _, o := range observers {
		if err := r.dispatch(ctx, o, e); err != nil {
			res.Failed++
			res.FailedObservers = append(res.FailedObservers, o.Name())
			r.log.Error("observer failed",
				zap.String("observer", o.Name()),
				zap.String("event_type", e.Type),
				zap.String("event_id", e.ID),
				zap.String("source", e.Source),
				zap.Error(err),
			)
			continue
		}
		res.Succeeded++
	}

	return res
}

func (r *Registry) dispatch(ctx context.Context, o Observer, e Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("observer panicked: %v", rec)
		}
	}()

	return o.Update(ctx, e)
}

// Observers returns a copy of the subscriber list for one type.
func (r *Registry) Observers(eventType string) []Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Observer(nil), r.subs[eventType]...)
}

// AllObservers returns a snapshot of every subscription, keyed by event
// type. Lists preserve notification order.
func (r *Registry) AllObservers() map[string][]Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]Observer, len(r.subs))
	for typ, list := range r.subs {
		out[typ] = append([]Observer(nil), list...)
	}
	return out
}

func (r *Registry) ObserverCount(eventType string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[eventType])
}

// TotalObservers counts registrations across all types; an observer
// subscribed to N types counts N times.
func (r *Registry) TotalObservers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, list := range r.subs {
		n += len(list)
	}
	return n
}

// Clear removes every subscription for one type. Intended for test
// teardown, not steady-state use.
func (r *Registry) Clear(eventType string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs, eventType)
}

// ClearAll removes every subscription.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = make(map[string][]Observer)
}
