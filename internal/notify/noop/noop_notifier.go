package noop

import (
	"context"
	"log/slog"

	"imgupload/internal/port"
)

type noopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier creates a Notifier that only logs the message.
func NewNoopNotifier(logger *slog.Logger) port.Notifier {
	return &noopNotifier{logger: logger}
}

func (n *noopNotifier) Notify(_ context.Context, message string) error {
	n.logger.Warn("upload failure notification suppressed", "message", message)
	return nil
}
