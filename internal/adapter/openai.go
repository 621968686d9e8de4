package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"resty.dev/v3"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// OpenAIAdapter talks to the OpenAI REST API (or any compatible endpoint).
// Model listing goes through the go-openai client; chat completions are
// posted with resty so the sampling fields keep their pointer semantics.
type OpenAIAdapter struct {
	BaseURL string
	Client  *http.Client

	rest *resty.Client
}

// NewOpenAIAdapter builds an adapter sharing client between both transports.
func NewOpenAIAdapter(baseURL string, client *http.Client) *OpenAIAdapter {
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		client = &http.Client{}
	}
	// error bodies stay readable after decoding so non-JSON text survives
	rest := resty.NewWithClient(client).
		SetBaseURL(baseURL).
		SetResponseBodyUnlimitedReads(true)
	return &OpenAIAdapter{
		BaseURL: baseURL,
		Client:  client,
		rest:    rest,
	}
}

func (o *OpenAIAdapter) Name() string {
	return "OpenAI"
}

// ListModels returns every model id the credential can see. An empty
// credential fails locally with an *AuthError, without a network call.
func (o *OpenAIAdapter) ListModels(ctx context.Context, credential string) ([]string, error) {
	if credential == "" {
		return nil, &AuthError{StatusCode: http.StatusUnauthorized, Message: "no API key provided"}
	}

	cfg := openai.DefaultConfig(credential)
	cfg.BaseURL = o.BaseURL
	cfg.HTTPClient = o.Client

	list, err := openai.NewClientWithConfig(cfg).ListModels(ctx)
	if err != nil {
		return nil, classifyOpenAIError("openai: list models", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (o *OpenAIAdapter) CreateChatCompletion(ctx context.Context, credential string, req CompletionRequest) (string, error) {
	if credential == "" {
		return "", &AuthError{StatusCode: http.StatusUnauthorized, Message: "no API key provided"}
	}

	var (
		chatResp openai.ChatCompletionResponse
		errResp  openai.ErrorResponse
	)
	resp, err := o.rest.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&chatResp).
		SetError(&errResp).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if resp.IsError() {
		msg := resp.String()
		if errResp.Error != nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return "", classify("openai: chat completion", resp.StatusCode(), msg)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Available reports whether the upstream answers at all. Credentials are
// per request, so a 401 still counts as reachable.
func (o *OpenAIAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := o.rest.R().SetContext(ctx).Get("/models")
	if err != nil {
		return false
	}
	return resp.StatusCode() < http.StatusInternalServerError
}
