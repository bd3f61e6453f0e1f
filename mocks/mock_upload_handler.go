package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"imgupload/internal/domain"
	"imgupload/internal/port"
)

// MockUploadHandler is a mock implementation of service.UploadHandler.
type MockUploadHandler struct {
	mock.Mock
}

func (m *MockUploadHandler) UploadImage(ctx context.Context, file port.FileHandle) *domain.Completion {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Completion)
}

func (m *MockUploadHandler) Trigger(ctx context.Context, file port.FileHandle) <-chan *domain.Completion {
	args := m.Called(ctx, file)
	ch := make(chan *domain.Completion, 1)
	if c, ok := args.Get(0).(*domain.Completion); ok {
		ch <- c
	}
	return ch
}
