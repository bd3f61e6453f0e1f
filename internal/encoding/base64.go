package encoding

import (
	"context"
	"encoding/base64"
	"io"
	"strings"

	"imgupload/internal/domain"
	"imgupload/internal/port"
)

// FileToBase64 reads the whole file into memory and returns its standard,
// padded base64 encoding without any data-URL prefix.
func FileToBase64(ctx context.Context, file port.FileHandle) (string, error) {
	rc, err := file.Open(ctx)
	if err != nil {
		return "", &domain.IOError{FileName: file.Name(), Err: err}
	}
	defer func() { _ = rc.Close() }()

	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	if _, err := io.Copy(enc, rc); err != nil {
		return "", &domain.IOError{FileName: file.Name(), Err: err}
	}
	if err := enc.Close(); err != nil {
		return "", &domain.IOError{FileName: file.Name(), Err: err}
	}
	return sb.String(), nil
}

// StripDataURLPrefix returns the part of s after the first comma, which for
// "data:image/png;base64,AAAA" is the bare base64 text. Strings without a
// comma are returned unchanged.
func StripDataURLPrefix(s string) string {
	if _, after, found := strings.Cut(s, ","); found {
		return after
	}
	return s
}
