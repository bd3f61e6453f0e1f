package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"imgupload/internal/domain"
	"imgupload/internal/port"
)

// S3Object is an object in an S3 bucket.
type S3Object struct {
	storage  port.ObjectStorage
	bucket   string
	key      string
	mimeType string
}

// ParseS3URI splits "s3://bucket/key" into bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("%w: %q must start with s3://", domain.ErrInvalidS3URI, uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("%w: %q must name a bucket and an object key", domain.ErrInvalidS3URI, uri)
	}
	return bucket, key, nil
}

// NewS3Object resolves uri and reads the object's content type.
func NewS3Object(ctx context.Context, storage port.ObjectStorage, uri string) (*S3Object, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	info, err := storage.Head(ctx, bucket, key)
	if err != nil {
		return nil, &domain.IOError{FileName: path.Base(key), Err: err}
	}

	mimeType := stripParams(info.ContentType)
	if mimeType == "" || mimeType == domain.DefaultContentType || mimeType == "binary/octet-stream" {
		if ct, ok := contentTypeFromName(key); ok {
			mimeType = ct
		} else if mimeType == "" {
			mimeType = domain.DefaultContentType
		}
	}

	return &S3Object{
		storage:  storage,
		bucket:   bucket,
		key:      key,
		mimeType: mimeType,
	}, nil
}

func (o *S3Object) Name() string     { return path.Base(o.key) }
func (o *S3Object) MimeType() string { return o.mimeType }

func (o *S3Object) Open(ctx context.Context) (io.ReadCloser, error) {
	return o.storage.Download(ctx, o.bucket, o.key)
}
