package handler

import (
	"log/slog"
	"net/http"

	"github.com/moltinginstar/tekosu/internal/adapter"
	"github.com/moltinginstar/tekosu/internal/legalese"
	"github.com/moltinginstar/tekosu/internal/metrics"
	"github.com/moltinginstar/tekosu/internal/middleware"
)

type modelsRequest struct {
	Credential string `json:"credential"`
}

type modelsResponse struct {
	Models       []string `json:"models"`
	DefaultIndex int      `json:"default_index"`
	DefaultModel string   `json:"default_model"`
	Errors       []string `json:"errors"`
}

// Models probes which allow-listed models the submitted credential can use.
func Models(lister adapter.ModelLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req modelsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cred := legalese.Credential(req.Credential)
		var surface legalese.Surface

		models, err := legalese.ResolveAvailableModels(r.Context(), lister, cred)
		if err != nil {
			if !adapter.IsAuth(err) {
				providerFailed(r, err)
				writeError(w, http.StatusBadGateway, "model listing failed: "+err.Error())
				return
			}
			if legalese.ShouldSurface(cred, err) {
				surface.Report(err)
				observeErrors(r, "", surface.Errors())
			}
		}

		writeJSON(w, http.StatusOK, modelsResponse{
			Models:       models,
			DefaultIndex: legalese.DefaultModelIndex(models),
			DefaultModel: legalese.DefaultModel(models),
			Errors:       surface.Messages(),
		})
	}
}

// observeErrors logs and counts the errors headed for the banner.
func observeErrors(r *http.Request, model string, errs []error) {
	for _, err := range errs {
		kind := adapter.Kind(err)
		metrics.ProviderErrors.WithLabelValues(kind).Inc()
		slog.Warn("provider error",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"kind", kind,
			"model", model,
			"error", err.Error(),
		)
	}
}

// providerFailed records an error that aborts the pass.
func providerFailed(r *http.Request, err error) {
	metrics.ProviderErrors.WithLabelValues(adapter.Kind(err)).Inc()
	slog.Error("provider failure",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"error", err.Error(),
	)
}
