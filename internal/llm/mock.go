package llm

import "context"

// MockProvider is a mock implementation for local development. It echoes a
// canned reply so the chatbot endpoints work without an API key.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "Hello! How can I help you manage your business today?", nil
	}
	last := messages[len(messages)-1]
	return "I received your message: " + last.Content, nil
}
