package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/moltinginstar/tekosu/internal/adapter"
	"github.com/moltinginstar/tekosu/internal/legalese"
	"github.com/moltinginstar/tekosu/internal/metrics"
)

type translateResponse struct {
	Output     string   `json:"output"`
	OutputHTML string   `json:"output_html"`
	Model      string   `json:"model"`
	ElapsedMs  int64    `json:"elapsed_ms"`
	Errors     []string `json:"errors"`
}

// Translate summarizes text with the model and sampling given in the body,
// skipping the model probe.
func Translate(c adapter.Completer, maxTextLength int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := newPassRequest()
		if !decodeBody(w, r, &req) {
			return
		}
		if !checkTextLength(w, req.Text, maxTextLength) {
			return
		}

		settings := legalese.Settings{
			Credential: legalese.Credential(req.Credential),
			Model:      req.Model,
			Sampling:   legalese.NewSampling(req.UseTopP, req.Temperature, req.TopP),
		}

		var surface legalese.Surface
		if err := checkModel(req.Model, req.Text); err != nil {
			surface.Report(err)
			observeErrors(r, "", surface.Errors())
			writeJSON(w, http.StatusOK, translateResponse{
				Model:  req.Model,
				Errors: surface.Messages(),
			})
			return
		}

		start := time.Now()
		out, err := legalese.Translate(r.Context(), c, settings, req.Text)
		elapsed := time.Since(start)

		if err != nil {
			if !adapter.IsInvalidRequest(err) {
				providerFailed(r, err)
				writeError(w, http.StatusBadGateway, fmt.Sprintf("translate failed: %v", err))
				return
			}
			surface.Report(err)
			observeErrors(r, req.Model, surface.Errors())
		}

		if strings.TrimSpace(req.Text) != "" {
			metrics.InputChars.Observe(float64(len(req.Text)))
		}
		if out != "" {
			metrics.TranslateDuration.WithLabelValues(req.Model).Observe(elapsed.Seconds())
		}

		writeJSON(w, http.StatusOK, translateResponse{
			Output:     out,
			OutputHTML: renderMarkdown(out),
			Model:      req.Model,
			ElapsedMs:  elapsed.Milliseconds(),
			Errors:     surface.Messages(),
		})
	}
}

// checkModel refuses a model off the allow-list before any provider call.
// Blank text never reaches the provider, so it needs no check.
func checkModel(model, text string) error {
	if model == "" || strings.TrimSpace(text) == "" || legalese.Allowed(model) {
		return nil
	}
	return &adapter.RequestError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("The model `%s` is not offered", model),
	}
}
