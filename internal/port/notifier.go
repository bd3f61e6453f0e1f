package port

import "context"

// Notifier presents a failure message to the user. Notify returns once the
// notification has been delivered (or acknowledged, for interactive sinks).
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
