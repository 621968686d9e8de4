package adapter

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

// MockCredentialInvalid is the credential MockAdapter always rejects.
const MockCredentialInvalid = "invalid"

// MockModels is what MockAdapter reports for any accepted credential.
var MockModels = []string{"gpt-4", "gpt-3.5-turbo", "text-davinci-003"}

// MockAdapter returns simulated responses with a configurable delay.
// Used for development and testing without a real OpenAI account.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) ListModels(ctx context.Context, credential string) ([]string, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if credential == "" {
		return nil, &AuthError{StatusCode: http.StatusUnauthorized, Message: "no API key provided"}
	}
	if credential == MockCredentialInvalid {
		return nil, &AuthError{StatusCode: http.StatusUnauthorized, Message: "Incorrect API key provided"}
	}
	return append([]string(nil), MockModels...), nil
}

// CreateChatCompletion echoes the fenced input back as a one-line summary.
func (m *MockAdapter) CreateChatCompletion(ctx context.Context, credential string, req CompletionRequest) (string, error) {
	if err := m.wait(ctx); err != nil {
		return "", err
	}
	if credential == "" || credential == MockCredentialInvalid {
		return "", &AuthError{StatusCode: http.StatusUnauthorized, Message: "Incorrect API key provided"}
	}
	if !slices.Contains(MockModels, req.Model) {
		return "", &RequestError{
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("The model `%s` does not exist", req.Model),
		}
	}
	if len(req.Messages) == 0 {
		return "", &RequestError{StatusCode: http.StatusBadRequest, Message: "[] is too short - 'messages'"}
	}

	body := req.Messages[len(req.Messages)-1].Content
	if i := strings.Index(body, "```"); i >= 0 {
		body = body[i+3:]
	}
	body = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(body), "```"))

	return "Summary: " + body, nil
}

func (m *MockAdapter) Available() bool { return true }

func (m *MockAdapter) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mock: %w", ctx.Err())
	}
}
