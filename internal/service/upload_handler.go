package service

import (
	"context"
	"log/slog"
	"time"

	"imgupload/internal/domain"
	"imgupload/internal/encoding"
	"imgupload/internal/port"
)

// UploadHandler defines the image upload contract.
type UploadHandler interface {
	// UploadImage runs one upload to completion. Failures are reported to the
	// user through the notifier and returned in Completion.Err, never as a panic.
	UploadImage(ctx context.Context, file port.FileHandle) *domain.Completion
	// Trigger starts UploadImage in the background. The returned channel
	// receives exactly one completion; callers may ignore it.
	Trigger(ctx context.Context, file port.FileHandle) <-chan *domain.Completion
}

type uploadHandler struct {
	endpoint  port.UploadEndpoint
	indicator port.LoadingIndicator
	notifier  port.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// NewUploadHandler creates a new UploadHandler implementation.
func NewUploadHandler(
	endpoint port.UploadEndpoint,
	indicator port.LoadingIndicator,
	notifier port.Notifier,
	logger *slog.Logger,
) UploadHandler {
	return &uploadHandler{
		endpoint:  endpoint,
		indicator: indicator,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *uploadHandler) UploadImage(ctx context.Context, file port.FileHandle) *domain.Completion {
	attempt := domain.NewAttempt(file.Name())
	log := h.logger.With("attempt_id", attempt.ID.String(), "file", attempt.FileName)

	attempt.StartedAt = h.now()
	attempt.State = domain.StateLoading
	h.indicator.Show()
	log.Debug("upload started", "content_type", file.MimeType())

	result, err := h.upload(ctx, file)

	attempt.FinishedAt = h.now()
	h.indicator.Hide()

	if err != nil {
		attempt.State = domain.StateFailed
		log.Error("upload failed", "kind", domain.ErrorKind(err), "error", err)
		if notifyErr := h.notifier.Notify(ctx, err.Error()); notifyErr != nil {
			log.Warn("failure notification not delivered", "error", notifyErr)
		}
		return &domain.Completion{Attempt: attempt, Err: err}
	}

	attempt.State = domain.StateSuccess
	log.Info("upload successful", "duration_ms", attempt.Duration().Milliseconds(), "result", result.String())
	return &domain.Completion{Attempt: attempt, Result: result}
}

func (h *uploadHandler) Trigger(ctx context.Context, file port.FileHandle) <-chan *domain.Completion {
	done := make(chan *domain.Completion, 1)
	go func() {
		done <- h.UploadImage(ctx, file)
	}()
	return done
}

// upload encodes the file and sends exactly one request.
func (h *uploadHandler) upload(ctx context.Context, file port.FileHandle) (domain.UploadResult, error) {
	data, err := encoding.FileToBase64(ctx, file)
	if err != nil {
		return nil, err
	}

	payload := domain.NewEncodedPayload(data, file.Name(), file.MimeType())
	return h.endpoint.Send(ctx, payload)
}
