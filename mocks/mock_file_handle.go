package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileHandle is a mock implementation of port.FileHandle.
type MockFileHandle struct {
	mock.Mock
}

func (m *MockFileHandle) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileHandle) MimeType() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileHandle) Open(ctx context.Context) (io.ReadCloser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
