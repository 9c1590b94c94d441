package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/powerup/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Mutating endpoints (API key required)
	s.router.Route("/api/v1/workouts", func(r chi.Router) {
		r.Get("/", s.handleListWorkouts)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/strength", s.handleCreateStrength)
			r.Post("/endurance", s.handleCreateEndurance)
			r.Post("/hic", s.handleCreateHIC)
			r.Delete("/{kind}/{id}", s.handleDeleteWorkout)
		})
	})

	// Derived views (read-only)
	s.router.Get("/api/v1/summary", s.handleSummary)
	s.router.Get("/api/v1/calendar", s.handleCalendar)
	s.router.Get("/api/v1/hic/info", s.handleHICInfo)

	// Static catalogs
	s.router.Get("/api/v1/vault", s.handleVault)
	s.router.Get("/api/v1/vault/{number}", s.handleVaultEntry)
	s.router.Get("/api/v1/presets", s.handlePresets)
	s.router.Get("/api/v1/presets/lookup", s.handlePresetLookup)
}
