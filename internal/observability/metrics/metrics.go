package metrics

import "github.com/prometheus/client_golang/prometheus"

// DashboardMetrics exposes counters/histograms for dataset loads and dashboard computations.
type DashboardMetrics struct {
	loadsTotal         *prometheus.CounterVec
	loadLatency        prometheus.Histogram
	records            prometheus.Gauge
	computationsTotal  *prometheus.CounterVec
	computationLatency *prometheus.HistogramVec
}

func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	m := &DashboardMetrics{
		loadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendas",
			Subsystem: "dataset",
			Name:      "loads_total",
			Help:      "Total dataset load attempts by outcome",
		}, []string{"outcome"}),
		loadLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agendas",
			Subsystem: "dataset",
			Name:      "load_duration_seconds",
			Help:      "Duration of dataset loads including retries",
			Buckets:   prometheus.DefBuckets,
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agendas",
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Records in the current dataset snapshot",
		}),
		computationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendas",
			Subsystem: "dashboard",
			Name:      "computations_total",
			Help:      "Total aggregate computations by surface and view",
		}, []string{"surface", "view"}),
		computationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agendas",
			Subsystem: "dashboard",
			Name:      "computation_duration_seconds",
			Help:      "Latency of aggregate computations",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"surface"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.loadsTotal, m.loadLatency, m.records, m.computationsTotal, m.computationLatency)
	return m
}

// ObserveLoad records one dataset load. The records gauge only moves on success.
func (m *DashboardMetrics) ObserveLoad(outcome string, records int, seconds float64) {
	if m == nil {
		return
	}
	m.loadsTotal.WithLabelValues(outcome).Inc()
	m.loadLatency.Observe(seconds)
	if outcome == "success" {
		m.records.Set(float64(records))
	}
}

func (m *DashboardMetrics) ObserveCompute(surface, view string, seconds float64) {
	if m == nil {
		return
	}
	m.computationsTotal.WithLabelValues(surface, view).Inc()
	m.computationLatency.WithLabelValues(surface).Observe(seconds)
}
