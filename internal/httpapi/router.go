// Package httpapi is the HTTP translation layer: it extracts request
// parameters, requires a verified identity where needed, delegates to the
// services, and maps domain errors to status codes.
package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/service"
)

// Server bundles the handler dependencies. All fields are process-lifetime
// singletons injected at startup.
type Server struct {
	log         *slog.Logger
	dev         bool
	origins     []string
	verifier    identity.Verifier
	projects    service.ProjectService
	auth        service.AuthService
	suggestions service.SuggestionService
}

type Options struct {
	Logger         *slog.Logger
	Development    bool
	AllowedOrigins []string
	Verifier       identity.Verifier
	Projects       service.ProjectService
	Auth           service.AuthService
	Suggestions    service.SuggestionService
}

func NewServer(opts Options) *Server {
	return &Server{
		log:         opts.Logger,
		dev:         opts.Development,
		origins:     opts.AllowedOrigins,
		verifier:    opts.Verifier,
		projects:    opts.Projects,
		auth:        opts.Auth,
		suggestions: opts.Suggestions,
	}
}

// Routes builds the full router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/refresh-token", s.handleRefreshToken)
		r.Post("/logout", s.handleLogout)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", s.handleCreateProject)
			r.Get("/", s.handleListProjects)
			r.Get("/{id}", s.handleGetProject)
			r.Patch("/{id}", s.handleEditProject)
			r.Delete("/{id}", s.handleDeleteProject)
		})

		r.Post("/ai/generate-task-suggestions", s.handleGenerateSuggestions)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeErrorMessage(w, http.StatusNotFound, fmt.Sprintf("route %s not found", r.URL.Path))
	})

	return r
}
