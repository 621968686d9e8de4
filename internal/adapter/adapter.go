package adapter

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// ModelLister reports which model ids a credential can reach.
type ModelLister interface {
	ListModels(ctx context.Context, credential string) ([]string, error)
}

// Completer sends a single chat-completion round trip and returns the text
// of the first choice.
type Completer interface {
	CreateChatCompletion(ctx context.Context, credential string, req CompletionRequest) (string, error)
}

// Provider defines the contract for chat-completion backends.
type Provider interface {
	ModelLister
	Completer
	Name() string
	Available() bool
}

// CompletionRequest is the outbound chat-completion body. Temperature and
// TopP are pointers so an unset field is absent from the JSON, while an
// explicit 0.0 is still sent.
type CompletionRequest struct {
	Model       string                         `json:"model"`
	Messages    []openai.ChatCompletionMessage `json:"messages"`
	Temperature *float64                       `json:"temperature,omitempty"`
	TopP        *float64                       `json:"top_p,omitempty"`
}
