package port

import (
	"context"

	"imgupload/internal/domain"
)

// UploadEndpoint delivers one encoded payload to the remote upload endpoint.
type UploadEndpoint interface {
	Send(ctx context.Context, payload domain.EncodedPayload) (domain.UploadResult, error)
}
