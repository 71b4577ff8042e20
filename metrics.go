package robotsmatch

import "github.com/prometheus/client_golang/prometheus"

// BatchMetrics counts verdicts produced by a BatchChecker. It implements
// prometheus.Collector so it can be registered with a process-wide
// registry; using it is entirely optional and has no effect on single-query
// use of RobotsMatcher.
type BatchMetrics struct {
	allowed    prometheus.Counter
	disallowed prometheus.Counter
}

// NewBatchMetrics returns a BatchMetrics with counters under the given
// namespace (e.g. "robotsmatch").
func NewBatchMetrics(namespace string) *BatchMetrics {
	return &BatchMetrics{
		allowed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_allowed_total",
			Help:      "Number of batch queries resolved as allowed.",
		}),
		disallowed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_disallowed_total",
			Help:      "Number of batch queries resolved as disallowed.",
		}),
	}
}

func (m *BatchMetrics) observe(r BatchResult) {
	if r.Err != nil {
		return
	}
	if r.Allowed {
		m.allowed.Inc()
	} else {
		m.disallowed.Inc()
	}
}

// Describe implements prometheus.Collector.
func (m *BatchMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.allowed.Describe(ch)
	m.disallowed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *BatchMetrics) Collect(ch chan<- prometheus.Metric) {
	m.allowed.Collect(ch)
	m.disallowed.Collect(ch)
}
