package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/moltinginstar/tekosu/internal/legalese"
	"github.com/moltinginstar/tekosu/internal/metrics"
)

// passRequest mirrors the page's widget state.
type passRequest struct {
	Credential  string  `json:"credential"`
	Model       string  `json:"model"`
	UseTopP     bool    `json:"use_top_p"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	Text        string  `json:"text"`
}

// newPassRequest carries the slider defaults so absent fields keep them.
func newPassRequest() passRequest {
	return passRequest{
		Temperature: legalese.DefaultTemperature,
		TopP:        legalese.DefaultTopP,
	}
}

func (p passRequest) state() legalese.State {
	return legalese.State{
		Credential:  legalese.Credential(p.Credential),
		Model:       p.Model,
		UseTopP:     p.UseTopP,
		Temperature: p.Temperature,
		TopP:        p.TopP,
		Text:        p.Text,
	}
}

type renderResponse struct {
	Models       []string `json:"models"`
	DefaultIndex int      `json:"default_index"`
	Model        string   `json:"model"`
	UseTopP      bool     `json:"use_top_p"`
	Temperature  *float64 `json:"temperature,omitempty"`
	TopP         *float64 `json:"top_p,omitempty"`
	Output       string   `json:"output"`
	OutputHTML   string   `json:"output_html"`
	Errors       []string `json:"errors"`
	ElapsedMs    int64    `json:"elapsed_ms"`
}

func checkTextLength(w http.ResponseWriter, text string, maxTextLength int) bool {
	if n := len(text); n > maxTextLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("text too long: %d characters (max %d)", n, maxTextLength))
		return false
	}
	return true
}

// Render runs one full pass for the page: model probe, selection, summary.
func Render(b legalese.Backend, maxTextLength int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := newPassRequest()
		if !decodeBody(w, r, &req) {
			return
		}
		if !checkTextLength(w, req.Text, maxTextLength) {
			return
		}

		start := time.Now()
		view, err := legalese.Render(r.Context(), b, req.state())
		elapsed := time.Since(start)

		if err != nil {
			providerFailed(r, err)
			writeError(w, http.StatusBadGateway, fmt.Sprintf("render failed: %v", err))
			return
		}

		observeErrors(r, view.Model, view.Errors)
		if strings.TrimSpace(req.Text) != "" {
			metrics.InputChars.Observe(float64(len(req.Text)))
		}
		if view.Output != "" {
			metrics.TranslateDuration.WithLabelValues(view.Model).Observe(elapsed.Seconds())
		}

		resp := renderResponse{
			Models:       view.Models,
			DefaultIndex: view.DefaultIndex,
			Model:        view.Model,
			UseTopP:      view.Sampling.IsTopP(),
			Output:       view.Output,
			OutputHTML:   renderMarkdown(view.Output),
			Errors:       view.Messages(),
			ElapsedMs:    elapsed.Milliseconds(),
		}
		v := view.Sampling.Value()
		if view.Sampling.IsTopP() {
			resp.TopP = &v
		} else {
			resp.Temperature = &v
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
