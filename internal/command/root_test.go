package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imgupload/internal/domain"
	"imgupload/internal/port"
	"imgupload/mocks"
)

func writeImage(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 0o644))
	return p
}

func named(name string) interface{} {
	return mock.MatchedBy(func(f port.FileHandle) bool { return f.Name() == name })
}

func succeeded(name, body string) *domain.Completion {
	attempt := domain.NewAttempt(name)
	attempt.State = domain.StateSuccess
	return &domain.Completion{Attempt: attempt, Result: domain.UploadResult(body)}
}

func failed(name string, err error) *domain.Completion {
	attempt := domain.NewAttempt(name)
	attempt.State = domain.StateFailed
	return &domain.Completion{Attempt: attempt, Err: err}
}

func execute(t *testing.T, deps Dependencies, args ...string) (string, error) {
	t.Helper()
	var output bytes.Buffer
	deps.Output = &output
	root := NewRootCommand(deps)
	root.SetArgs(args)
	root.SetOut(&output)
	root.SetErr(&output)
	err := root.ExecuteContext(context.Background())
	return output.String(), err
}

func TestUploadCommand_PrintsResultsInInputOrder(t *testing.T) {
	first := writeImage(t, "first.png")
	second := writeImage(t, "second.png")

	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, named("first.png")).Return(succeeded("first.png", `{"url":"https://x/1.png"}`)).Once()
	handler.On("UploadImage", mock.Anything, named("second.png")).Return(succeeded("second.png", `{"url":"https://x/2.png"}`)).Once()

	output, err := execute(t, Dependencies{Handler: handler, Concurrency: 2}, "upload", first, second)

	require.NoError(t, err)
	assert.Equal(t, "{\"url\":\"https://x/1.png\"}\n{\"url\":\"https://x/2.png\"}\n", output)
	handler.AssertExpectations(t)
}

func TestUploadCommand_FailureReturnsError(t *testing.T) {
	good := writeImage(t, "good.png")
	bad := writeImage(t, "bad.png")

	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, named("good.png")).Return(succeeded("good.png", `{"ok":true}`)).Once()
	handler.On("UploadImage", mock.Anything, named("bad.png")).Return(failed("bad.png", &domain.HTTPError{StatusCode: 500})).Once()

	output, err := execute(t, Dependencies{Handler: handler, Concurrency: 1}, "upload", good, bad)

	require.Error(t, err)
	assert.Equal(t, "1 of 2 uploads failed", err.Error())
	assert.Equal(t, "{\"ok\":true}\n", output)
	handler.AssertExpectations(t)
}

func TestUploadCommand_WritesReport(t *testing.T) {
	good := writeImage(t, "good.png")
	bad := writeImage(t, "bad.png")
	reportPath := filepath.Join(t.TempDir(), "uploads.csv")

	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, named("good.png")).Return(succeeded("good.png", `{"url":"https://x/good.png"}`)).Once()
	handler.On("UploadImage", mock.Anything, named("bad.png")).Return(failed("bad.png", &domain.NetworkError{Err: errors.New("refused")})).Once()

	_, err := execute(t, Dependencies{Handler: handler, Concurrency: 2}, "upload", "--report", reportPath, good, bad)
	require.Error(t, err)

	data, readErr := os.ReadFile(reportPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "https://x/good.png")
	assert.Contains(t, string(data), "network error: refused")
}

func TestUploadCommand_MissingFileGoesThroughHandler(t *testing.T) {
	good := writeImage(t, "good.png")
	missing := filepath.Join(t.TempDir(), "missing.png")

	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, named("good.png")).Return(succeeded("good.png", `{"ok":true}`)).Once()
	handler.On("UploadImage", mock.Anything, mock.MatchedBy(func(f port.FileHandle) bool {
		if f.Name() != "missing.png" {
			return false
		}
		rc, err := f.Open(context.Background())
		return rc == nil && errors.Is(err, os.ErrNotExist)
	})).Return(failed("missing.png", &domain.IOError{FileName: "missing.png", Err: os.ErrNotExist})).Once()

	output, err := execute(t, Dependencies{Handler: handler, Concurrency: 2}, "upload", good, missing)

	require.Error(t, err)
	assert.Equal(t, "1 of 2 uploads failed", err.Error())
	assert.Equal(t, "{\"ok\":true}\n", output)
	handler.AssertExpectations(t)
}

func TestUploadCommand_S3Input(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Head", mock.Anything, "photos", "2024/court.jpg").
		Return(&port.ObjectInfo{ContentType: "image/jpeg", Size: 10}, nil).Once()

	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, mock.MatchedBy(func(f port.FileHandle) bool {
		return f.Name() == "court.jpg" && f.MimeType() == "image/jpeg"
	})).Return(succeeded("court.jpg", `{}`)).Once()

	factoryCalls := 0
	deps := Dependencies{
		Handler:     handler,
		Concurrency: 1,
		Storage: func(context.Context) (port.ObjectStorage, error) {
			factoryCalls++
			return storage, nil
		},
	}

	output, err := execute(t, deps, "upload", "--s3", "s3://photos/2024/court.jpg")

	require.NoError(t, err)
	assert.Equal(t, "{}\n", output)
	assert.Equal(t, 1, factoryCalls)
	storage.AssertExpectations(t)
	handler.AssertExpectations(t)
}

func TestUploadCommand_StorageNotBuiltForLocalFiles(t *testing.T) {
	p := writeImage(t, "local.png")
	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, named("local.png")).Return(succeeded("local.png", `{}`)).Once()

	deps := Dependencies{
		Handler:     handler,
		Concurrency: 1,
		Storage: func(context.Context) (port.ObjectStorage, error) {
			t.Fatal("storage factory must not be called")
			return nil, nil
		},
	}

	_, err := execute(t, deps, "upload", p)
	require.NoError(t, err)
}

func TestUploadCommand_DataURL(t *testing.T) {
	handler := new(mocks.MockUploadHandler)
	handler.On("UploadImage", mock.Anything, mock.MatchedBy(func(f port.FileHandle) bool {
		return f.Name() == "pixel.gif" && f.MimeType() == "image/gif"
	})).Return(succeeded("pixel.gif", `{"id":7}`)).Once()

	output, err := execute(t, Dependencies{Handler: handler, Concurrency: 1},
		"upload", "--data-url", "data:image/gif;base64,R0lGODlhAQABAAAAACw=", "--name", "pixel.gif")

	require.NoError(t, err)
	assert.Equal(t, "{\"id\":7}\n", output)
	handler.AssertExpectations(t)
}

func TestUploadCommand_InputErrors(t *testing.T) {
	testCases := []struct {
		name        string
		deps        Dependencies
		args        []string
		expectedErr string
	}{
		{
			name:        "no inputs",
			args:        []string{"upload"},
			expectedErr: "no image selected",
		},
		{
			name:        "name without data url",
			args:        []string{"upload", "--name", "x.png"},
			expectedErr: "--name requires --data-url",
		},
		{
			name:        "s3 without storage",
			args:        []string{"upload", "--s3", "s3://b/k.png"},
			expectedErr: "s3 storage is not configured",
		},
		{
			name: "storage factory failure",
			deps: Dependencies{Storage: func(context.Context) (port.ObjectStorage, error) {
				return nil, errors.New("no credentials")
			}},
			args:        []string{"upload", "--s3", "s3://b/k.png"},
			expectedErr: "failed to initialize S3 client: no credentials",
		},
		{
			name: "bad s3 uri",
			deps: Dependencies{Storage: func(context.Context) (port.ObjectStorage, error) {
				return new(mocks.MockObjectStorage), nil
			}},
			args:        []string{"upload", "--s3", "https://b/k.png"},
			expectedErr: "invalid s3 uri",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := new(mocks.MockUploadHandler)
			tc.deps.Handler = handler

			_, err := execute(t, tc.deps, tc.args...)

			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.expectedErr), "error %q should contain %q", err.Error(), tc.expectedErr)
			handler.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything)
		})
	}
}

func TestWatchCommand_RequiresDirectory(t *testing.T) {
	_, err := execute(t, Dependencies{Handler: new(mocks.MockUploadHandler)}, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestWatchCommand_MissingDirectory(t *testing.T) {
	_, err := execute(t, Dependencies{Handler: new(mocks.MockUploadHandler)}, "watch", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch directory")
}
