// Package legalese turns pasted terms and conditions into a single
// chat-completion request and resolves which chat models a credential may use.
package legalese

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moltinginstar/tekosu/internal/adapter"
)

// AllowList is the fixed set of chat models offered, whatever else the
// provider reports.
var AllowList = []string{
	openai.GPT3Dot5Turbo,
	openai.GPT3Dot5Turbo16K,
	openai.GPT4,
	openai.GPT432K,
}

// PreferredModel is highlighted by default when available.
const PreferredModel = openai.GPT3Dot5Turbo

// Credential is the user's provider API key. It is only ever held in memory
// for one render pass and prints redacted.
type Credential string

func (c Credential) Empty() bool { return c == "" }

func (c Credential) String() string {
	if c.Empty() {
		return ""
	}
	return "[redacted]"
}

func (c Credential) LogValue() slog.Value {
	return slog.StringValue(c.String())
}

// ResolveAvailableModels returns the allow-listed models the credential can
// reach, sorted ascending. On an authentication failure it returns an empty
// slice together with the *adapter.AuthError; whether to show that error is
// the caller's decision (see ShouldSurface).
func ResolveAvailableModels(ctx context.Context, lister adapter.ModelLister, cred Credential) ([]string, error) {
	reported, err := lister.ListModels(ctx, string(cred))
	if err != nil {
		if adapter.IsAuth(err) {
			return []string{}, err
		}
		return nil, fmt.Errorf("legalese: list models: %w", err)
	}
	return FilterAllowed(reported), nil
}

// Allowed reports whether model is on AllowList.
func Allowed(model string) bool {
	return slices.Contains(AllowList, model)
}

// FilterAllowed intersects reported with AllowList and sorts the result.
func FilterAllowed(reported []string) []string {
	models := make([]string, 0, len(AllowList))
	for _, id := range AllowList {
		if slices.Contains(reported, id) {
			models = append(models, id)
		}
	}
	slices.Sort(models)
	return models
}

// ShouldSurface reports whether a model-probe error belongs on the error
// banner. With no credential entered the failure is the expected state.
func ShouldSurface(cred Credential, err error) bool {
	return err != nil && !cred.Empty()
}

// DefaultModelIndex picks PreferredModel if present, otherwise the first
// model. It returns -1 for an empty list.
func DefaultModelIndex(models []string) int {
	if len(models) == 0 {
		return -1
	}
	if i := slices.Index(models, PreferredModel); i >= 0 {
		return i
	}
	return 0
}

// DefaultModel is the model at DefaultModelIndex, or "" for an empty list.
func DefaultModel(models []string) string {
	i := DefaultModelIndex(models)
	if i < 0 {
		return ""
	}
	return models[i]
}
