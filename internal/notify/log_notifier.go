package notify

import (
	"context"
	"log/slog"

	"phillies-updater/internal/logging"
)

// LogNotifier prints events instead of pushing them. Used when no push
// credentials are configured so local runs still show what would be sent.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs a notifier that only logs.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the event at info level.
func (n *LogNotifier) Send(ctx context.Context, event Event) error {
	if n.logger != nil {
		n.logger.InfoContext(ctx, "notification (log only)",
			slog.String(logging.FieldTitle, event.ResolvedTitle()),
			slog.String("message", event.Message),
		)
	}
	return nil
}
