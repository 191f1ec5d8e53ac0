package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fieldproof-com/fieldproofgo/internal/report"
	"github.com/gorilla/mux"
)

// generateReport renders a new Risk Snapshot for the job and persists it as
// an immutable report run.
func (r *Router) generateReport(w http.ResponseWriter, req *http.Request) {
	jobID := mux.Vars(req)["id"]

	run, err := r.runs.GenerateForJob(jobID)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidInput):
			respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid report input: %v", err))
		case errors.Is(err, report.ErrSurfaceInit), errors.Is(err, report.ErrFontUnavailable):
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Report generation failed: %v", err))
		default:
			respondError(w, http.StatusNotFound, fmt.Sprintf("Failed to generate report: %v", err))
		}
		return
	}

	respondJSON(w, http.StatusCreated, run)
}

// listReportRuns returns the job's generation history, newest first
func (r *Router) listReportRuns(w http.ResponseWriter, req *http.Request) {
	jobID := mux.Vars(req)["id"]

	runs, err := r.runs.ListForJob(jobID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list report runs")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"jobId": jobID,
		"runs":  runs,
	})
}

// downloadReport streams a run's PDF bytes with download headers
func (r *Router) downloadReport(w http.ResponseWriter, req *http.Request) {
	runID := mux.Vars(req)["id"]

	run, err := r.runs.Get(runID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Report run not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"risk_snapshot_%s.pdf\"", run.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(run.PDF)))
	w.Header().Set("X-Content-Hash", run.ContentHash)

	w.Write(run.PDF)
}
