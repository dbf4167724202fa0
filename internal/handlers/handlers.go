package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bastianbuilt.com/internal/assets"
	"bastianbuilt.com/internal/config"
	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/metrics"
	"bastianbuilt.com/internal/middleware"
	"bastianbuilt.com/internal/services"
)

// Deps are the services the routes are built from
type Deps struct {
	Config   *config.Config
	Logger   logging.Logger
	Metrics  *metrics.Metrics
	Projects *services.ProjectService
	Contacts *services.ContactService
	// Public serves files such as project media at their root path.
	// May be nil.
	Public http.FileSystem
	Now    func() time.Time
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Deps) chi.Router {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	// Initialize handlers
	pageHandler := NewPageHandler(deps.Projects, deps.Public, deps.Now)
	projectHandler := NewProjectHandler(deps.Projects, deps.Logger)
	contactHandler := NewContactHandler(deps.Contacts, deps.Logger)
	sitemapHandler := NewSitemapHandler(r, deps.Projects, deps.Config.SiteURL(), deps.Logger, deps.Now)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/projects/{slug}", pageHandler.Project)
	r.NotFound(pageHandler.NotFound)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", contactHandler.Submit)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			projectHandler.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Search engines
	r.Get("/sitemap.xml", sitemapHandler.Sitemap)
	r.Get("/robots.txt", sitemapHandler.Robots)

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", assets.Handler()))

	return r
}

// responder writes JSON bodies and logs encoding failures
type responder struct {
	logger logging.Logger
}

// respondJSON writes a JSON response
func (rs responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.logger.Error(context.Background(), err, "Error encoding JSON")
	}
}

// respondError writes an error JSON response
func (rs responder) respondError(w http.ResponseWriter, status int, message string) {
	rs.respondJSON(w, status, map[string]string{"error": message})
}
