package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/bookbind/internal/compiler"
	"github.com/dgallion1/bookbind/internal/config"
	"github.com/dgallion1/bookbind/internal/vault"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for bookbind.
type Server struct {
	router chi.Router
	vault  *vault.FS
	stats  *compiler.Stats
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server over a filesystem
// vault rooted at cfg.Root.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		vault: vault.NewFS(cfg.Root),
		stats: compiler.NewStats(time.Hour),
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Compile endpoints; bearer auth only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Post("/api/compile", s.handleCompile)
		r.Post("/api/book", s.handleBook)
		r.Get("/api/stats/compile", s.handleCompileStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
