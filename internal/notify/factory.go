// Package notify selects the failure notifier configured for the uploader.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"imgupload/internal/config"
	"imgupload/internal/domain"
	"imgupload/internal/notify/console"
	"imgupload/internal/notify/noop"
	"imgupload/internal/notify/ses"
	"imgupload/internal/port"
)

// New builds the notifier named by cfg.Provider. The console notifier writes
// to out and reads acknowledgements from in.
func New(ctx context.Context, cfg config.NotifyConfig, logger *slog.Logger, out io.Writer, in io.Reader) (port.Notifier, error) {
	switch cfg.Provider {
	case config.NotifyConsole, "":
		return console.NewNotifier(out, in, cfg.WaitForAck), nil
	case config.NotifySES:
		n, err := ses.NewSESNotifier(ctx, cfg.Region, cfg.FromAddress, cfg.ToAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SES notifier: %w", err)
		}
		logger.Info("failure notifications via SES", "to", cfg.ToAddress)
		return n, nil
	case config.NotifyNoop:
		return noop.NewNoopNotifier(logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown notify.provider %q", domain.ErrInvalidConfig, cfg.Provider)
	}
}
