package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	appQueue "github.com/erickfunier/pdftotext-worker/internal/application/queue"
	"github.com/erickfunier/pdftotext-worker/internal/domain/extraction"
	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	maxJobBodyBytes  = 64 << 10
)

// QueueHandlers handles HTTP requests for conversion jobs
type QueueHandlers struct {
	queueService *appQueue.Service
}

// NewQueueHandlers creates a new queue HTTP handlers
func NewQueueHandlers(queueService *appQueue.Service) *QueueHandlers {
	return &QueueHandlers{queueService: queueService}
}

type JobResponse struct {
	ID          string `json:"id"`
	Queue       string `json:"queue"`
	Filename    string `json:"filename,omitempty"`
	Status      string `json:"status"`
	Result      string `json:"result,omitempty"`
	Error       string `json:"error,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func newJobResponse(job *queue.Job) JobResponse {
	resp := JobResponse{
		ID:        job.ID.String(),
		Queue:     job.Queue,
		Status:    string(job.Status),
		Result:    job.Result,
		Error:     job.Error,
		CreatedAt: job.CreatedAt.Format(time.RFC3339),
		UpdatedAt: job.UpdatedAt.Format(time.RFC3339),
	}
	// payloads are stored verbatim and may not decode
	if w, err := extraction.DecodeWorkload(job.Payload); err == nil {
		resp.Filename = w.Filename
	}
	if job.CompletedAt != nil {
		resp.CompletedAt = job.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

// CreateJob stores the request body verbatim as the job body. The target
// queue comes from the optional ?queue= parameter.
func (h *QueueHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	log.Printf("[CreateJob] Received request from %s", r.RemoteAddr)
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJobBodyBytes))
	if err != nil {
		log.Printf("[CreateJob] Failed to read request: %v", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	job, err := h.queueService.CreateJob(r.Context(), appQueue.CreateJobCommand{
		Queue: r.URL.Query().Get("queue"),
		Body:  body,
	})
	if errors.Is(err, queue.ErrEmptyPayload) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[CreateJob] Failed to create job: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[CreateJob] Job created successfully: id=%s, queue=%s", job.ID, job.Queue)

	writeJSON(w, http.StatusCreated, newJobResponse(job))
}

func (h *QueueHandlers) GetJobByID(w http.ResponseWriter, r *http.Request) {
	// Extract ID from path: /api/jobs/{id}
	idStr := r.URL.Path[len("/api/jobs/"):]
	if idStr == "" {
		log.Printf("[GetJobByID] Missing job ID in path")
		http.Error(w, "job id is required", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("[GetJobByID] Invalid job ID: %s", idStr)
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	job, err := h.queueService.GetJob(r.Context(), id)
	if errors.Is(err, queue.ErrJobNotFound) {
		log.Printf("[GetJobByID] Job not found: id=%s", id)
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[GetJobByID] Failed to fetch job %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[GetJobByID] Job retrieved: id=%s, status=%s", job.ID, job.Status)

	writeJSON(w, http.StatusOK, newJobResponse(job))
}

func (h *QueueHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	statusStr := r.URL.Query().Get("status")
	if statusStr == "" {
		statusStr = string(queue.StatusPending)
	}
	status, err := queue.ParseStatus(statusStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := defaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(l, maxListLimit)
	}

	log.Printf("[ListJobs] Fetching jobs: status=%s, limit=%d", status, limit)
	jobs, err := h.queueService.GetJobsByStatus(r.Context(), status, limit)
	if err != nil {
		log.Printf("[ListJobs] Failed to fetch jobs: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, newJobResponse(job))
	}

	writeJSON(w, http.StatusOK, responses)
}

func (h *QueueHandlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.queueService.GetMetrics(r.Context())
	if err != nil {
		log.Printf("[GetMetrics] Failed to fetch metrics: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}
