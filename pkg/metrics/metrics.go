package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flightrelay"

type Metrics struct {
	SearchesTotal    prometheus.Counter
	SearchErrors     *prometheus.CounterVec
	IntentRequests   prometheus.Counter
	IntentErrors     *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram
}

// New registers the relay's metrics on the given registerer. Tests pass a
// private registry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SearchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of flight search requests",
		}),
		SearchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_errors_total",
			Help:      "The total number of failed flight searches",
		}, []string{"reason"}),
		IntentRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intent_requests_total",
			Help:      "The total number of intent extraction requests",
		}),
		IntentErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intent_errors_total",
			Help:      "The total number of failed intent extractions",
		}, []string{"reason"}),
		UpstreamDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Time taken by the upstream flight-data request",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
