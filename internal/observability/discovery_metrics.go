package observability

import "github.com/prometheus/client_golang/prometheus"

// DiscoveryMetrics tracks shop discovery query volume and result sizes.
type DiscoveryMetrics struct {
	searchTotal *prometheus.CounterVec
	resultSize  prometheus.Histogram
}

// NewDiscoveryMetrics registers the discovery collectors on registry.
func NewDiscoveryMetrics(registry *prometheus.Registry, serviceName string) *DiscoveryMetrics {
	constLabels := prometheus.Labels{}
	if serviceName != "" {
		constLabels["service"] = serviceName
	}
	searchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "watchmapper",
		Subsystem:   "discovery",
		Name:        "searches_total",
		Help:        "Total number of shop discovery queries.",
		ConstLabels: constLabels,
	}, []string{"sort_by"})
	resultSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   "watchmapper",
		Subsystem:   "discovery",
		Name:        "result_size",
		Help:        "Number of shops returned per discovery query.",
		Buckets:     []float64{0, 1, 5, 10, 20, 50},
		ConstLabels: constLabels,
	})
	registry.MustRegister(searchTotal, resultSize)
	return &DiscoveryMetrics{searchTotal: searchTotal, resultSize: resultSize}
}

// ObserveSearch records one discovery query and its returned page size.
func (m *DiscoveryMetrics) ObserveSearch(sortBy string, results int) {
	m.searchTotal.WithLabelValues(sortBy).Inc()
	m.resultSize.Observe(float64(results))
}
