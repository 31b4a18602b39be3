// Package server exposes the JSON HTTP API consumed by the browser frontend.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/nchub/internal/assistant"
	"github.com/example/nchub/internal/store"
)

// Server handles HTTP requests for the hub API.
type Server struct {
	store   *store.Store
	gateway *assistant.Gateway
	log     *zap.Logger
	addr    string
}

// New creates a new API server.
func New(st *store.Store, gateway *assistant.Gateway, log *zap.Logger, addr string) *Server {
	return &Server{store: st, gateway: gateway, log: log, addr: addr}
}

// Handler builds the request mux with CORS and logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Progress
	mux.HandleFunc("GET /progress", s.getProgress)
	mux.HandleFunc("POST /progress/counter", s.incrementCounter)
	mux.HandleFunc("POST /progress/set", s.addToSet)
	mux.HandleFunc("POST /progress/study-date", s.setStudyDate)
	mux.HandleFunc("POST /progress/quiz-score", s.applyQuizScore)
	mux.HandleFunc("POST /progress/terms/known", s.markTermKnown)
	mux.HandleFunc("POST /progress/terms/review", s.markTermForReview)

	// Custom content
	mux.HandleFunc("GET /terms", s.listCustomTerms)
	mux.HandleFunc("POST /terms", s.addCustomTerm)
	mux.HandleFunc("DELETE /terms/{id}", s.deleteCustomTerm)
	mux.HandleFunc("GET /notes", s.listNotes)
	mux.HandleFunc("POST /notes", s.addNote)
	mux.HandleFunc("GET /locations", s.listLocations)
	mux.HandleFunc("POST /locations", s.saveLocation)

	// Map layers
	mux.HandleFunc("GET /layers", s.listLayers)
	mux.HandleFunc("POST /layers/toggle", s.toggleLayer)

	// Catalog
	mux.HandleFunc("GET /catalog/frameworks", s.catalogFrameworks)
	mux.HandleFunc("GET /catalog/policies/uk", s.catalogUKPolicies)
	mux.HandleFunc("GET /catalog/policies/global", s.catalogGlobalPolicies)
	mux.HandleFunc("GET /catalog/terminology", s.catalogTerminology)
	mux.HandleFunc("GET /catalog/scoping", s.catalogScoping)
	mux.HandleFunc("GET /catalog/risks", s.catalogRisks)
	mux.HandleFunc("GET /catalog/sectors", s.catalogSectors)
	mux.HandleFunc("GET /catalog/regions", s.catalogRegions)

	// Calculators
	mux.HandleFunc("POST /calc/effort", s.estimateEffort)
	mux.HandleFunc("GET /calc/risks", s.relevantRisks)

	// Assistant
	mux.HandleFunc("POST /assistant", s.assistantChat)
	mux.HandleFunc("GET /assistant/history", s.assistantHistory)
	mux.HandleFunc("DELETE /assistant/history", s.clearAssistantHistory)

	// UI state
	mux.HandleFunc("GET /tab", s.getActiveTab)
	mux.HandleFunc("POST /tab", s.setActiveTab)

	// Health check
	mux.HandleFunc("GET /health", s.health)

	return s.withLogging(withCORS(mux))
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("addr", s.addr))
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers for the browser frontend.
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

// withLogging tags each request with an id and logs its route.
func (s *Server) withLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		s.log.Debug("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		h.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
