package source

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"imgupload/internal/domain"
	"imgupload/internal/encoding"
)

const defaultDataURLName = "upload"

// DataURLFile is content carried inline as a "data:" URL.
type DataURLFile struct {
	raw      string
	name     string
	mimeType string
	isBase64 bool
}

// NewDataURLFile parses the header of a data URL. The payload is decoded on Open.
func NewDataURLFile(raw, name string) (*DataURLFile, error) {
	raw = strings.TrimSpace(raw)
	rest, ok := strings.CutPrefix(raw, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: missing data: scheme", domain.ErrInvalidDataURL)
	}
	header, _, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma separator", domain.ErrInvalidDataURL)
	}

	isBase64 := false
	mimeType := "text/plain"
	for i, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		switch {
		case i == 0 && part != "":
			mimeType = part
		case strings.EqualFold(part, "base64"):
			isBase64 = true
		}
	}

	if name == "" {
		name = defaultDataURLName
	}
	return &DataURLFile{
		raw:      raw,
		name:     name,
		mimeType: mimeType,
		isBase64: isBase64,
	}, nil
}

func (f *DataURLFile) Name() string     { return f.name }
func (f *DataURLFile) MimeType() string { return f.mimeType }

func (f *DataURLFile) Open(_ context.Context) (io.ReadCloser, error) {
	data := encoding.StripDataURLPrefix(f.raw)
	if !f.isBase64 {
		decoded, err := url.PathUnescape(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataURL, err)
		}
		return io.NopCloser(strings.NewReader(decoded)), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataURL, err)
	}
	return io.NopCloser(bytes.NewReader(decoded)), nil
}
