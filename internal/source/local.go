// Package source provides port.FileHandle implementations for the places a
// user can select an image from: local disk, S3, and inline data URLs.
package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"imgupload/internal/domain"
)

// LocalFile is a file on the local filesystem.
type LocalFile struct {
	path     string
	name     string
	mimeType string
}

// NewLocalFile stats path and resolves its MIME type.
func NewLocalFile(path string) (*LocalFile, error) {
	name := filepath.Base(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, &domain.IOError{FileName: name, Err: err}
	}
	if info.IsDir() {
		return nil, &domain.IOError{FileName: name, Err: errors.New("is a directory")}
	}
	return &LocalFile{
		path:     path,
		name:     name,
		mimeType: detectLocalContentType(path),
	}, nil
}

func (f *LocalFile) Name() string     { return f.name }
func (f *LocalFile) MimeType() string { return f.mimeType }
func (f *LocalFile) Path() string     { return f.path }

func (f *LocalFile) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.path)
}

// detectLocalContentType prefers the extension, as a browser file picker
// does, and sniffs the content when the extension is unknown.
func detectLocalContentType(path string) string {
	if ct, ok := contentTypeFromName(path); ok {
		return ct
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return domain.DefaultContentType
	}
	return stripParams(mt.String())
}

func contentTypeFromName(name string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	ct, ok := domain.KnownExtensions[ext]
	return ct, ok
}

func stripParams(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(base)
}
