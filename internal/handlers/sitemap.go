package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/services"
	"bastianbuilt.com/internal/sitemap"
)

// SitemapHandler serves sitemap.xml and robots.txt
type SitemapHandler struct {
	responder
	routes  chi.Routes
	baseURL string
	builder *sitemap.Builder
}

// NewSitemapHandler creates a handler listing the pages of routes
func NewSitemapHandler(routes chi.Routes, ps *services.ProjectService, baseURL string, logger logging.Logger, now func() time.Time) *SitemapHandler {
	return &SitemapHandler{
		responder: responder{logger: logger},
		routes:    routes,
		baseURL:   baseURL,
		builder:   NewSitemapBuilder(ps, baseURL, now),
	}
}

// NewSitemapBuilder returns a builder that lists one page per project
func NewSitemapBuilder(ps *services.ProjectService, baseURL string, now func() time.Time) *sitemap.Builder {
	return sitemap.NewBuilder(sitemap.Options{
		BaseURL:     baseURL,
		IgnoreExact: []string{"/metrics"},
		Expanders: map[string]sitemap.Expander{
			"/projects/{slug}": func() []string {
				slugs := ps.Slugs()
				paths := make([]string, len(slugs))
				for i, slug := range slugs {
					paths[i] = "/projects/" + slug
				}
				return paths
			},
		},
		Now: now,
	})
}

// Sitemap handles GET /sitemap.xml
func (h *SitemapHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.builder.Build(h.routes)
	if err != nil {
		h.logger.Error(r.Context(), err, "Failed to build sitemap")
		h.respondError(w, http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	var buf bytes.Buffer
	if err := sitemap.WriteXML(&buf, entries); err != nil {
		h.logger.Error(r.Context(), err, "Failed to encode sitemap")
		h.respondError(w, http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Robots handles GET /robots.txt
func (h *SitemapHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(sitemap.Robots(h.baseURL)))
}
