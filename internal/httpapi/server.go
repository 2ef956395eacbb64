package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/ecommailer/internal/repo"
)

// Server exposes the outcome of the last probe pass. It never runs checks.
type Server struct {
	Logger *zap.Logger
	Runs   repo.RunStore
}

func NewServer(l *zap.Logger, runs repo.RunStore) *Server {
	return &Server{Logger: l, Runs: runs}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/api/checks/latest", s.handleLatest)

	return r
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	run, err := s.Runs.Latest(r.Context())
	if err != nil {
		s.Logger.Warn("latest_run_error", zap.Error(err))
		http.Error(w, "latest error", http.StatusInternalServerError)
		return
	}
	if run == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(run)
}
