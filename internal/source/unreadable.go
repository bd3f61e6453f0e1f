package source

import (
	"context"
	"errors"
	"io"

	"imgupload/internal/domain"
)

// UnreadableFile stands in for a selected file that could not be resolved.
// Open always fails with the resolution error, so the upload handler reports
// it like any other read failure.
type UnreadableFile struct {
	name string
	err  error
}

// NewUnreadableFile wraps err for the file called name. An *domain.IOError is
// unwrapped so the handler does not name the file twice.
func NewUnreadableFile(name string, err error) *UnreadableFile {
	var ioErr *domain.IOError
	if errors.As(err, &ioErr) && ioErr.Err != nil {
		err = ioErr.Err
	}
	return &UnreadableFile{name: name, err: err}
}

func (f *UnreadableFile) Name() string { return f.name }

func (f *UnreadableFile) MimeType() string {
	if ct, ok := contentTypeFromName(f.name); ok {
		return ct
	}
	return domain.DefaultContentType
}

func (f *UnreadableFile) Open(_ context.Context) (io.ReadCloser, error) {
	return nil, f.err
}
