package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// EncodedPayload is the JSON document sent to the upload endpoint.
type EncodedPayload struct {
	Data        string `json:"image"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// NewEncodedPayload builds the payload for one upload attempt.
func NewEncodedPayload(data, filename, contentType string) EncodedPayload {
	return EncodedPayload{
		Data:        data,
		Filename:    filename,
		ContentType: contentType,
	}
}

// UploadResult is the endpoint's JSON response, forwarded without a schema.
type UploadResult json.RawMessage

// MarshalJSON emits the raw response unchanged.
func (r UploadResult) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// String returns the raw JSON text.
func (r UploadResult) String() string {
	return string(r)
}

// Field looks up a value by gjson path, e.g. "url" or "labels.0.name".
func (r UploadResult) Field(path string) (string, bool) {
	res := gjson.GetBytes(r, path)
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// Attempt records one invocation of the upload handler.
type Attempt struct {
	ID         uuid.UUID   `json:"id"`
	FileName   string      `json:"file_name"`
	State      UploadState `json:"state"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at,omitempty"`
}

// NewAttempt starts an attempt in the idle state.
func NewAttempt(fileName string) *Attempt {
	return &Attempt{
		ID:       uuid.New(),
		FileName: fileName,
		State:    StateIdle,
	}
}

// Duration is the elapsed time between start and finish.
func (a *Attempt) Duration() time.Duration {
	if a.FinishedAt.IsZero() || a.StartedAt.IsZero() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}

// Completion is the terminal outcome of one upload invocation.
// Exactly one of Result and Err is set.
type Completion struct {
	Attempt *Attempt
	Result  UploadResult
	Err     error
}

// Succeeded reports whether the upload produced a result.
func (c *Completion) Succeeded() bool {
	return c != nil && c.Err == nil
}
