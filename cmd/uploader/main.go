package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"imgupload/internal/client"
	"imgupload/internal/command"
	"imgupload/internal/config"
	"imgupload/internal/indicator"
	"imgupload/internal/logging"
	"imgupload/internal/notify"
	"imgupload/internal/notify/console"
	"imgupload/internal/port"
	"imgupload/internal/service"
	s3storage "imgupload/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logs and notifications share stderr with the indicator line.
	display := indicator.NewTerminal(os.Stderr, "")
	logger := logging.New(cfg.Log, display.Writer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Acknowledgements can only be read from an interactive stdin.
	notifyCfg := cfg.Notify
	notifyCfg.WaitForAck = notifyCfg.WaitForAck && console.StdinIsTerminal()
	notifier, err := notify.New(ctx, notifyCfg, logger, display.Writer(), os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to initialize notifier: %w", err)
	}

	endpoint := client.NewEndpointClient(&cfg.Endpoint)
	loading := indicator.NewTracker(display)
	handler := service.NewUploadHandler(endpoint, loading, notifier, logger)

	logger.Debug("uploader configured", "endpoint", endpoint.URL(), "notify", cfg.Notify.Provider)

	root := command.NewRootCommand(command.Dependencies{
		Handler: handler,
		Storage: func(ctx context.Context) (port.ObjectStorage, error) {
			return s3storage.NewS3Client(ctx, &cfg.S3)
		},
		Concurrency: cfg.Upload.Concurrency,
		Output:      os.Stdout,
		Logger:      logger,
	})
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
