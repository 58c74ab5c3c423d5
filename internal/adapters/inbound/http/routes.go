package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterQueueRoutes registers all job-related routes
//
//	POST /api/jobs       create a conversion job
//	GET  /api/jobs       list jobs by status
//	GET  /api/jobs/{id}  fetch one job with its result
//	GET  /api/metrics    job counts per status
func RegisterQueueRoutes(mux *http.ServeMux, handlers *QueueHandlers) {
	jobs := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path == "/api/jobs" || path == "/api/jobs/" {
			switch r.Method {
			case http.MethodPost:
				handlers.CreateJob(w, r)
			case http.MethodGet:
				handlers.ListJobs(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if r.Method == http.MethodGet {
			handlers.GetJobByID(w, r)
		} else {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/jobs", jobs)
	mux.HandleFunc("/api/jobs/", jobs)

	mux.HandleFunc("/api/metrics", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			handlers.GetMetrics(w, r)
		} else {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

// RegisterOpsRoutes registers /metrics and /health. The worker runtime serves
// only these.
func RegisterOpsRoutes(mux *http.ServeMux, gatherer prometheus.Gatherer) {
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
