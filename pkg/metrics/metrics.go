package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RunsActive           prometheus.Gauge
	CandidatesDiscovered prometheus.Counter
	CandidatesProcessed  *prometheus.CounterVec
	ExtractDuration      *prometheus.HistogramVec
)

var initOnce sync.Once

func Init() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RunsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crawl_runs_active",
			Help: "Number of crawl runs currently executing.",
		},
	)

	CandidatesDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "candidates_discovered_total",
			Help: "Total number of candidate URLs discovered by source adapters.",
		},
	)

	CandidatesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidates_processed_total",
			Help: "Total number of candidate URLs run through extraction.",
		},
		[]string{"result"}, // accepted, duplicate
	)

	ExtractDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "extract_duration_seconds",
			Help:    "Duration of per-candidate extraction.",
			Buckets: []float64{1, 5, 10, 15, 30, 60, 120},
		},
		[]string{"domain"},
	)
}
