package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legalsearch",
			Name:      "search_requests_total",
			Help:      "Total number of search requests by outcome",
		},
		[]string{"status"}, // "ok" / "invalid" / "error"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "legalsearch",
			Name:      "search_duration_seconds",
			Help:      "Time spent scoring the corpus for one query",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "legalsearch",
			Name:      "search_results",
			Help:      "Number of matching documents per successful search",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	CorpusDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "legalsearch",
			Name:      "corpus_documents",
			Help:      "Number of documents loaded into the corpus",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(CorpusDocuments)
	searchMetricsRegistered = true
}
