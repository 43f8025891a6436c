package notify

import "context"

// DefaultTitle is used when an event carries no explicit title.
const DefaultTitle = "Update"

// Event is a transient message/title pair; it is produced by the change
// detector and consumed immediately, never persisted.
type Event struct {
	Message string
	Title   string
}

// NewEvent builds an event with the default title.
func NewEvent(message string) Event {
	return Event{Message: message, Title: DefaultTitle}
}

// ResolvedTitle returns the event title, falling back to DefaultTitle.
func (e Event) ResolvedTitle() string {
	if e.Title == "" {
		return DefaultTitle
	}
	return e.Title
}

// Notifier delivers events to an external push channel. Delivery failures
// are reported to callers for logging; they are never fatal and never
// retried.
type Notifier interface {
	Send(ctx context.Context, event Event) error
}
