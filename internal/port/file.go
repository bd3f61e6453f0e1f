package port

import (
	"context"
	"io"
)

// FileHandle is an opaque reference to user-selected binary content.
// The caller owns it; readers returned by Open must be closed by whoever opened them.
type FileHandle interface {
	Name() string
	MimeType() string
	Open(ctx context.Context) (io.ReadCloser, error)
}
