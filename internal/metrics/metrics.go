// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlanRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_requests_total",
			Help: "Total plan requests by terminal outcome",
		},
		[]string{"outcome"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_calls_total",
			Help: "Total LLM calls by status",
		},
		[]string{"status"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "plan_generation_duration_seconds",
			Help: "Duration of plan generation by path",
		},
		[]string{"path"},
	)
)
