package legalese

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltinginstar/tekosu/internal/adapter"
)

func TestRenderScenario(t *testing.T) {
	b := &fakeBackend{
		models: []string{"gpt-3.5-turbo", "gpt-4", "text-davinci-003"},
		reply:  "Summary: ...",
	}
	st := State{
		Credential:  "sk-test",
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		Text:        "This agreement binds...",
	}

	v, err := Render(context.Background(), b, st)
	require.NoError(t, err)

	assert.Equal(t, []string{"gpt-3.5-turbo", "gpt-4"}, v.Models)
	assert.Equal(t, 0, v.DefaultIndex)
	assert.Equal(t, "gpt-3.5-turbo", v.Model)
	assert.Equal(t, "Summary: ...", v.Output)
	assert.Empty(t, v.Messages())
	assert.NotNil(t, v.Messages())

	require.NotNil(t, b.lastReq.Temperature)
	assert.Equal(t, 0.1, *b.lastReq.Temperature)
	assert.Nil(t, b.lastReq.TopP)
}

func TestRenderKeepsAvailableSelection(t *testing.T) {
	b := &fakeBackend{models: []string{"gpt-3.5-turbo", "gpt-4"}, reply: "ok"}

	v, err := Render(context.Background(), b, State{Credential: "sk", Model: "gpt-4", UseTopP: true, TopP: 0.5, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", v.Model)
	assert.Equal(t, "gpt-4", b.lastReq.Model)
	assert.True(t, v.Sampling.IsTopP())
}

func TestRenderFallsBackWhenSelectionUnavailable(t *testing.T) {
	b := &fakeBackend{models: []string{"gpt-4", "gpt-4-32k"}, reply: "ok"}

	v, err := Render(context.Background(), b, State{Credential: "sk", Model: "gpt-3.5-turbo", Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", v.Model)
	assert.Equal(t, 0, v.DefaultIndex)
}

func TestRenderEmptyCredential(t *testing.T) {
	b := &fakeBackend{listErr: &adapter.AuthError{Message: "no API key provided"}}

	v, err := Render(context.Background(), b, State{Text: ""})
	require.NoError(t, err)
	assert.Empty(t, v.Models)
	assert.Equal(t, -1, v.DefaultIndex)
	assert.Equal(t, "", v.Model)
	assert.Empty(t, v.Messages())
	assert.Zero(t, b.chatCalls)
}

func TestRenderRejectedCredential(t *testing.T) {
	b := &fakeBackend{listErr: &adapter.AuthError{Message: "Incorrect API key provided: sk-bad."}}

	v, err := Render(context.Background(), b, State{Credential: "sk-bad"})
	require.NoError(t, err)
	assert.Empty(t, v.Models)
	assert.Equal(t, []string{"Incorrect API key provided: sk-bad."}, v.Messages())
}

func TestRenderRejectedCredentialWithText(t *testing.T) {
	b := &fakeBackend{listErr: &adapter.AuthError{Message: "Incorrect API key provided"}}

	v, err := Render(context.Background(), b, State{Credential: "sk-bad", Text: "terms"})
	require.NoError(t, err)
	assert.Equal(t, "", v.Output)
	assert.Equal(t, []string{"Incorrect API key provided", "Must provide a 'model' parameter"}, v.Messages())
	assert.Zero(t, b.chatCalls)
}

func TestRenderInvalidRequestSurfaced(t *testing.T) {
	b := &fakeBackend{
		models:  []string{"gpt-4"},
		chatErr: &adapter.RequestError{Message: "This model's maximum context length is 8192 tokens"},
	}

	v, err := Render(context.Background(), b, State{Credential: "sk", Text: "long terms"})
	require.NoError(t, err)
	assert.Equal(t, "", v.Output)
	assert.Equal(t, []string{"This model's maximum context length is 8192 tokens"}, v.Messages())
}

func TestRenderPropagatesUnexpectedErrors(t *testing.T) {
	t.Run("probe", func(t *testing.T) {
		b := &fakeBackend{listErr: errors.New("connection reset")}
		_, err := Render(context.Background(), b, State{Credential: "sk"})
		assert.Error(t, err)
	})

	t.Run("completion", func(t *testing.T) {
		b := &fakeBackend{models: []string{"gpt-4"}, chatErr: errors.New("connection reset")}
		_, err := Render(context.Background(), b, State{Credential: "sk", Text: "x"})
		assert.Error(t, err)
	})
}

func TestSurface(t *testing.T) {
	var s Surface
	assert.Equal(t, []string{}, s.Messages())

	s.Report(nil)
	s.Report(errors.New("first"))
	s.Report(errors.New("second"))

	got := s.Messages()
	assert.Equal(t, []string{"first", "second"}, got)

	got[0] = "mutated"
	assert.Equal(t, "first", s.Messages()[0])
}
