package legalese

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moltinginstar/tekosu/internal/adapter"
)

// Instruction precedes the fenced input in the user message.
const Instruction = "Summarize the following terms and conditions, highlighting key clauses."

// Settings is rebuilt by the UI layer for every render pass and passed by value.
type Settings struct {
	Credential Credential
	Model      string
	Sampling   SamplingMode
}

// BuildPrompt wraps input in a fenced block after Instruction.
func BuildPrompt(input string) string {
	var b strings.Builder
	b.WriteString(Instruction)
	b.WriteString("\n\n```\n")
	b.WriteString(input)
	b.WriteString("\n```")
	return b.String()
}

// BuildRequest assembles the single-message chat request.
func BuildRequest(model string, sampling SamplingMode, input string) adapter.CompletionRequest {
	req := adapter.CompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(input)},
		},
	}
	sampling.apply(&req)
	return req
}

// Translate summarizes input with one chat-completion round trip.
//
// Blank input returns "" without touching the network. Invalid requests
// (no model, out-of-range sampling, provider 4xx) come back as
// *adapter.RequestError with an empty result; anything else is wrapped.
func Translate(ctx context.Context, c adapter.Completer, s Settings, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if s.Model == "" {
		return "", &adapter.RequestError{Message: "Must provide a 'model' parameter"}
	}
	if err := s.Sampling.Validate(); err != nil {
		return "", err
	}

	out, err := c.CreateChatCompletion(ctx, string(s.Credential), BuildRequest(s.Model, s.Sampling, input))
	if err != nil {
		if adapter.IsInvalidRequest(err) {
			return "", err
		}
		return "", fmt.Errorf("legalese: translate: %w", err)
	}
	return out, nil
}
