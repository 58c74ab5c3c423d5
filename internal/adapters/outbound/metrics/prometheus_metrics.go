package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsService implements queue.MetricsService with Prometheus collectors
type PrometheusMetricsService struct {
	jobsCreated        *prometheus.CounterVec
	jobsCompleted      *prometheus.CounterVec
	jobsFailed         *prometheus.CounterVec
	conversionDuration prometheus.Histogram
}

// NewPrometheusMetricsService creates the collectors and registers them with reg
func NewPrometheusMetricsService(reg prometheus.Registerer) *PrometheusMetricsService {
	s := &PrometheusMetricsService{
		jobsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pdftotext_jobs_created_total",
				Help: "Number of conversion jobs accepted",
			},
			[]string{"queue"},
		),
		jobsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pdftotext_jobs_completed_total",
				Help: "Number of conversion jobs reported as successful",
			},
			[]string{"queue"},
		),
		jobsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pdftotext_jobs_failed_total",
				Help: "Number of conversion jobs reported as failed, by reason",
			},
			[]string{"queue", "reason"},
		),
		conversionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pdftotext_conversion_seconds",
				Help:    "Time spent running the PDF converter",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
	}

	reg.MustRegister(s.jobsCreated, s.jobsCompleted, s.jobsFailed, s.conversionDuration)
	return s
}

func (s *PrometheusMetricsService) RecordJobCreated(queue string) {
	s.jobsCreated.WithLabelValues(queue).Inc()
}

func (s *PrometheusMetricsService) RecordJobCompleted(queue string) {
	s.jobsCompleted.WithLabelValues(queue).Inc()
}

func (s *PrometheusMetricsService) RecordJobFailed(queue, reason string) {
	s.jobsFailed.WithLabelValues(queue, reason).Inc()
}

func (s *PrometheusMetricsService) ObserveConversion(duration time.Duration) {
	s.conversionDuration.Observe(duration.Seconds())
}
