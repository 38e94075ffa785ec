package seqpat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for one or more mining runs.
// A nil *Metrics is always safe to pass to Mine via WithMetrics; every
// observe method on a nil receiver is a no-op, so instrumentation is
// opt-in rather than mandatory.
type Metrics struct {
	mddNodesBuilt prometheus.Histogram
	patternsFound prometheus.Histogram
	runsTotal     prometheus.Counter
}

// NewMetrics registers a fresh set of collectors on reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics
// endpoint, or a dedicated *prometheus.Registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		mddNodesBuilt: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seqpat",
			Name:      "mdd_nodes_built",
			Help:      "Number of live MDD nodes built per mining run.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 12),
		}),
		patternsFound: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seqpat",
			Name:      "patterns_found",
			Help:      "Number of frequent patterns returned per mining run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		runsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "seqpat",
			Name:      "runs_total",
			Help:      "Total number of completed Mine runs over a non-empty database.",
		}),
	}
}

func (m *Metrics) observeMDDNodes(n int) {
	if m == nil {
		return
	}
	m.mddNodesBuilt.Observe(float64(n))
}

func (m *Metrics) observePatterns(n int) {
	if m == nil {
		return
	}
	m.patternsFound.Observe(float64(n))
	m.runsTotal.Inc()
}
