package handler

import (
	"net/http"

	"github.com/moltinginstar/tekosu/internal/adapter"
	"github.com/moltinginstar/tekosu/internal/metrics"
)

type adapterStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version"`
	Adapters map[string]adapterStatus `json:"adapters"`
}

func Health(p adapter.Provider, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := adapterStatus{Available: p.Available()}
		if s.Available {
			metrics.AdapterAvailable.WithLabelValues(p.Name()).Set(1)
		} else {
			s.Reason = unavailableReason(p)
			metrics.AdapterAvailable.WithLabelValues(p.Name()).Set(0)
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Version:  version,
			Adapters: map[string]adapterStatus{p.Name(): s},
		})
	}
}

func unavailableReason(p adapter.Provider) string {
	switch p.(type) {
	case *adapter.OpenAIAdapter:
		return "openai unreachable"
	default:
		return "unavailable"
	}
}
