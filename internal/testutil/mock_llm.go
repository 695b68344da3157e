package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLMClient satisfies services.LLMClient.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLMClient) Provider() string { return "mock" }

func (m *MockLLMClient) Model() string { return "mock-model" }
