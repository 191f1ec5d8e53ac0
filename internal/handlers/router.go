package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fieldproof-com/fieldproofgo/internal/config"
	"github.com/fieldproof-com/fieldproofgo/internal/database"
	"github.com/fieldproof-com/fieldproofgo/internal/middleware"
	"github.com/fieldproof-com/fieldproofgo/internal/services/reportrun"
	"github.com/gorilla/mux"
)

// Router wraps the mux router with the database and services
type Router struct {
	*mux.Router
	db   *database.DB
	cfg  *config.Config
	runs *reportrun.Service
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		cfg:    cfg,
		runs:   reportrun.NewService(db, cfg.Report),
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))
	api.HandleFunc("/jobs/{id}/report", r.generateReport).Methods("POST")
	api.HandleFunc("/jobs/{id}/reports", r.listReportRuns).Methods("GET")
	api.HandleFunc("/reports/{id}/download", r.downloadReport).Methods("GET")

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
