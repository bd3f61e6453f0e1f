package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockLoadingIndicator is a mock implementation of port.LoadingIndicator.
type MockLoadingIndicator struct {
	mock.Mock
}

func (m *MockLoadingIndicator) Show() {
	m.Called()
}

func (m *MockLoadingIndicator) Hide() {
	m.Called()
}

func (m *MockLoadingIndicator) Visible() bool {
	args := m.Called()
	return args.Bool(0)
}
