package port

import (
	"context"
	"io"
)

// ObjectInfo describes a stored object without its content.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// ObjectStorage abstracts read access to cloud object storage.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	Head(ctx context.Context, bucket, key string) (*ObjectInfo, error)
}
