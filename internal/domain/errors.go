package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrInvalidS3URI   = errors.New("invalid s3 uri")
	ErrInvalidDataURL = errors.New("invalid data url")
)

// IOError indicates the file could not be opened, read, or encoded.
type IOError struct {
	FileName string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.FileName, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NetworkError indicates the request could not be sent or the response could not be received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError indicates the endpoint answered with a non-2xx status code.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error! status: %d: %s", e.StatusCode, e.Body)
}

// ParseError indicates the response body was not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorKind returns a short label for the failure kind, used in logs.
func ErrorKind(err error) string {
	var (
		ioErr    *IOError
		netErr   *NetworkError
		httpErr  *HTTPError
		parseErr *ParseError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ioErr):
		return "io"
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "unknown"
	}
}
