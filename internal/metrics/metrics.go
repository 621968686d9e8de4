package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tekosu_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// TranslateDuration tracks summarization latency per model.
	TranslateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tekosu_translate_duration_seconds",
		Help:    "Time spent on a render pass that produced a summary.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"model"})

	// InputChars tracks the distribution of pasted text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tekosu_input_chars",
		Help:    "Number of characters in submitted legal text.",
		Buckets: []float64{100, 500, 1000, 5000, 10000, 25000, 50000, 100000},
	})

	// ProviderErrors counts provider failures by kind (auth, invalid_request, other).
	ProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tekosu_provider_errors_total",
		Help: "Provider errors seen during render passes.",
	}, []string{"kind"})

	// AdapterAvailable tracks whether the provider is reachable.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tekosu_adapter_available",
		Help: "Whether the provider adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
