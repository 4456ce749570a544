package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/insight"
)

// InsightService is the pipeline surface the API exposes.
type InsightService interface {
	GetOrGenerate(ctx context.Context, userID uuid.UUID, date string) (insight.Insight, error)
	ListHistory(ctx context.Context, userID uuid.UUID, windowDays int) ([]insight.Insight, error)
}

type Server struct {
	router  *chi.Mux
	port    int
	service InsightService
}

func NewServer(port int, svc InsightService) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:  router,
		port:    port,
		service: svc,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/users/{userID}/insights/history", s.insightHistory)
	router.Get("/api/v1/users/{userID}/insights/{date}", s.insightForDate)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
