package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"imgupload/internal/domain"
)

// MockUploadEndpoint is a mock implementation of port.UploadEndpoint.
type MockUploadEndpoint struct {
	mock.Mock
}

func (m *MockUploadEndpoint) Send(ctx context.Context, payload domain.EncodedPayload) (domain.UploadResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.UploadResult), args.Error(1)
}
