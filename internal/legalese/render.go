package legalese

import (
	"context"
	"slices"

	"github.com/moltinginstar/tekosu/internal/adapter"
)

// Backend is what one render pass needs from the provider.
type Backend interface {
	adapter.ModelLister
	adapter.Completer
}

// Surface collects the messages shown on the error banner during one pass.
// It is append-only.
type Surface struct {
	errs []error
}

func (s *Surface) Report(err error) {
	if err == nil {
		return
	}
	s.errs = append(s.errs, err)
}

// Errors returns a copy of everything reported, never nil.
func (s *Surface) Errors() []error {
	return append([]error{}, s.errs...)
}

// Messages returns the reported errors as banner text, never nil.
func (s *Surface) Messages() []string {
	return messages(s.errs)
}

func messages(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

// State is the widget state the page submits for a pass.
type State struct {
	Credential  Credential
	Model       string
	UseTopP     bool
	Temperature float64
	TopP        float64
	Text        string
}

// View is everything the page needs to redraw after a pass.
type View struct {
	Models       []string
	DefaultIndex int
	Model        string
	Sampling     SamplingMode
	Output       string
	Errors       []error
}

// Messages is Errors as banner text, never nil.
func (v View) Messages() []string {
	return messages(v.Errors)
}

// Render runs one full pass: probe models, settle the selection, then
// summarize. Auth failures from the probe and invalid-request failures from
// the summary land on the error surface; any other error aborts the pass.
func Render(ctx context.Context, b Backend, st State) (View, error) {
	var surface Surface

	models, err := ResolveAvailableModels(ctx, b, st.Credential)
	if err != nil {
		if !adapter.IsAuth(err) {
			return View{}, err
		}
		if ShouldSurface(st.Credential, err) {
			surface.Report(err)
		}
	}

	model := st.Model
	if !slices.Contains(models, model) {
		model = DefaultModel(models)
	}

	sampling := NewSampling(st.UseTopP, st.Temperature, st.TopP)
	settings := Settings{Credential: st.Credential, Model: model, Sampling: sampling}

	out, err := Translate(ctx, b, settings, st.Text)
	if err != nil {
		if !adapter.IsInvalidRequest(err) {
			return View{}, err
		}
		surface.Report(err)
	}

	return View{
		Models:       models,
		DefaultIndex: DefaultModelIndex(models),
		Model:        model,
		Sampling:     sampling,
		Output:       out,
		Errors:       surface.Errors(),
	}, nil
}
