package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	DeedsProcessed *prometheus.CounterVec
	ParseFailures  prometheus.Counter
	StageSeconds   *prometheus.HistogramVec
	ActiveWorkers  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		DeedsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "deedplot_deeds_processed_total",
			Help: "Total number of processed deeds.",
		}, []string{"status"}),
		ParseFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "deedplot_parse_failures_total",
			Help: "Total number of deeds rejected with call parsing errors.",
		}),
		StageSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "deedplot_stage_duration_seconds",
			Help:    "Duration of the plotting pipeline stages.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "deedplot_active_workers",
			Help: "Current number of active workers processing deeds.",
		}),
	}
}
