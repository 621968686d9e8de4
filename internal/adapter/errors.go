package adapter

import (
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// AuthError means the provider rejected (or never received) the credential.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return e.Message
}

// RequestError means the provider refused the request itself: bad
// parameters, an unknown model, or no model at all.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// IsAuth reports whether err carries an *AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsInvalidRequest reports whether err carries a *RequestError.
func IsInvalidRequest(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// Kind names the error class for metrics labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAuth(err):
		return "auth"
	case IsInvalidRequest(err):
		return "invalid_request"
	default:
		return "other"
	}
}

// classify maps a provider status and message onto the typed errors.
// Statuses outside the auth and invalid-request families stay untyped.
func classify(op string, status int, message string) error {
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", status)
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{StatusCode: status, Message: message}
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return &RequestError{StatusCode: status, Message: message}
	default:
		return fmt.Errorf("%s: %s", op, message)
	}
}

// classifyOpenAIError unwraps the error types returned by the go-openai client.
func classifyOpenAIError(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return classify(op, apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return classify(op, reqErr.HTTPStatusCode, string(reqErr.Body))
	}
	return fmt.Errorf("%s: %w", op, err)
}
