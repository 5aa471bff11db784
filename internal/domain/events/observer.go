package events

import "context"

// Observer is a unit of reaction logic. Update runs inline on the
// publishing goroutine; an error return marks the observer as failed for
// that dispatch without affecting its siblings. Name is a short stable
// identifier used in logs and failure reports.
//
// Observers must tolerate payload keys the catalog marks optional being
// absent. Returning an error is reserved for genuinely unrecoverable
// failures; expected edge cases should be absorbed internally so the
// registry's failure count reflects real defects.
type Observer interface {
	Update(ctx context.Context, e Event) error
	Name() string
}
