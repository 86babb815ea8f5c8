// Package observability exports engine execution metrics to Prometheus.
// The Metrics type plugs into the engine as domain.ExecutionHooks, so the
// evaluator stays free of any metrics dependency.
package observability

import (
	"context"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects execution counters and latencies.
type Metrics struct {
	runsTotal    *prometheus.CounterVec
	runDuration  prometheus.Histogram
	nodesTotal   *prometheus.CounterVec
	nodeErrors   *prometheus.CounterVec
	nodeDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer for the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agentstudio",
			Name:      "runs_total",
			Help:      "Agent executions, by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agentstudio",
			Name:      "run_duration_seconds",
			Help:      "Wall time of ExecuteAgent calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		nodesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agentstudio",
			Name:      "node_executions_total",
			Help:      "Node evaluations, by node type.",
		}, []string{"type"}),
		nodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agentstudio",
			Name:      "node_errors_total",
			Help:      "Node evaluations that produced an error record, by node type.",
		}, []string{"type"}),
		nodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agentstudio",
			Name:      "node_duration_seconds",
			Help:      "Wall time of individual node evaluations, by node type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type"}),
	}
	reg.MustRegister(m.runsTotal, m.runDuration, m.nodesTotal, m.nodeErrors, m.nodeDuration)
	return m
}

// Hooks returns the ExecutionHooks feeding these collectors.
func (m *Metrics) Hooks() domain.ExecutionHooks {
	return domain.ExecutionHooks{
		OnNodeFinish: func(_ context.Context, ev *domain.NodeEvent) {
			t := string(ev.NodeType)
			m.nodesTotal.WithLabelValues(t).Inc()
			m.nodeDuration.WithLabelValues(t).Observe(ev.Duration.Seconds())
			if ev.IsError {
				m.nodeErrors.WithLabelValues(t).Inc()
			}
		},
		OnRunFinish: func(_ context.Context, ev *domain.RunEvent) {
			outcome := "ok"
			if ev.Err != nil {
				outcome = "error"
			}
			m.runsTotal.WithLabelValues(outcome).Inc()
			m.runDuration.Observe(ev.Duration.Seconds())
		},
	}
}
