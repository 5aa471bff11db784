package observer

import (
	"context"
	"fmt"

	"maintsvc/internal/domain/events"
)

// Sender delivers a notification to one target. The transport behind it
// is out of scope here.
type Sender interface {
	Send(ctx context.Context, target, subject, message string) error
}

// Notification resolves the target and message from the event payload
// and delegates delivery to the Sender. Unlike the other observers it
// returns delivery failures: an undelivered notification is operationally
// significant and must show up in the publish result.
type Notification struct {
	sender Sender
}

func NewNotification(sender Sender) *Notification {
	return &Notification{sender: sender}
}

// Types returns the event types that trigger a notification.
func (n *Notification) Types() []string {
	return []string{
		events.RequestAssigned,
		events.RequestStarted,
		events.RequestCompleted,
		events.RequestCancelled,
		events.UserRegistered,
		events.TechnicianAssigned,
	}
}

func (n *Notification) Update(ctx context.Context, e events.Event) error {
	target, subject, message, ok, err := n.compose(e)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return n.sender.Send(ctx, target, subject, message)
}

func (n *Notification) Name() string { return "notification" }

// compose maps an event to (target, subject, message). ok=false means the
// event carries nothing to notify about, which is not a failure.
func (n *Notification) compose(e events.Event) (target, subject, message string, ok bool, err error) {
	switch e.Type {
	case events.RequestAssigned:
		tech, found := stringField(e.Data, "technician_id")
		if !found {
			return "", "", "", false, fmt.Errorf("event %s: %s payload missing technician_id", e.ID, e.Type)
		}
		reqID, _ := stringField(e.Data, "request_id")
		return tech, "New assignment",
			fmt.Sprintf("You have been assigned maintenance request %s.", reqID), true, nil

	case events.RequestStarted:
		submitter, found := stringField(e.Data, "submitter_id")
		if !found {
			return "", "", "", false, nil
		}
		reqID, _ := stringField(e.Data, "request_id")
		return submitter, "Work started",
			fmt.Sprintf("Work on your maintenance request %s has started.", reqID), true, nil

	case events.RequestCompleted:
		submitter, found := stringField(e.Data, "submitter_id")
		if !found {
			return "", "", "", false, fmt.Errorf("event %s: %s payload missing submitter_id", e.ID, e.Type)
		}
		reqID, _ := stringField(e.Data, "request_id")
		return submitter, "Request completed",
			fmt.Sprintf("Your maintenance request %s has been completed.", reqID), true, nil

	case events.RequestCancelled:
		submitter, found := stringField(e.Data, "submitter_id")
		if !found {
			return "", "", "", false, fmt.Errorf("event %s: %s payload missing submitter_id", e.ID, e.Type)
		}
		reqID, _ := stringField(e.Data, "request_id")
		return submitter, "Request cancelled",
			fmt.Sprintf("Your maintenance request %s has been cancelled.", reqID), true, nil

	case events.UserRegistered:
		userID, found := stringField(e.Data, "user_id")
		if !found {
			return "", "", "", false, fmt.Errorf("event %s: %s payload missing user_id", e.ID, e.Type)
		}
		username, _ := stringField(e.Data, "username")
		return userID, "Welcome",
			fmt.Sprintf("Welcome aboard, %s.", username), true, nil

	case events.TechnicianAssigned:
		userID, found := stringField(e.Data, "user_id")
		if !found {
			return "", "", "", false, fmt.Errorf("event %s: %s payload missing user_id", e.ID, e.Type)
		}
		return userID, "Role updated",
			"You have been granted the technician role.", true, nil
	}

	return "", "", "", false, nil
}
