package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tripmate/pkg/utils"
)

var (
	SuggestionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_suggestion_requests_total",
			Help: "Total number of suggestion requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trip_suggestion_upstream_duration_seconds",
			Help:    "Duration of completion provider calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider"},
	)
)

// Outcome classifies a request result into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, utils.ErrMethodNotAllowed):
		return "method_not_allowed"
	case errors.Is(err, utils.ErrInvalidRequestBody):
		return "invalid_body"
	case errors.Is(err, utils.ErrMissingConfig):
		return "missing_config"
	case errors.Is(err, utils.ErrUpstream):
		return "upstream_error"
	case errors.Is(err, utils.ErrEmptyCompletion):
		return "empty_completion"
	default:
		return "error"
	}
}

func ObserveRequest(provider string, err error) {
	SuggestionRequests.WithLabelValues(provider, Outcome(err)).Inc()
}
