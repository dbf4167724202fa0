package handlers

import (
	"net/http"
	"path"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"bastianbuilt.com/internal/services"
	"bastianbuilt.com/internal/views"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	public         http.FileSystem
	now            func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, public http.FileSystem, now func() time.Time) *PageHandler {
	return &PageHandler{projectService: ps, public: public, now: now}
}

func (h *PageHandler) page(r *http.Request) views.Page {
	return views.NewPage(r.URL.Path, h.now())
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	templ.Handler(views.HomePage(h.page(r), h.projectService.List())).ServeHTTP(w, r)
}

// Project handles GET /projects/{slug}. ?media=N opens the gallery
// lightbox on item N.
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, ok := h.projectService.FindBySlug(slug)
	if !ok {
		h.renderNotFound(w, r)
		return
	}

	lightbox := views.NewLightbox(
		r.URL.Path,
		services.GalleryMedia(project),
		parseIntParam(r, "media", -1),
	)
	templ.Handler(views.ProjectPage(h.page(r), project, lightbox)).ServeHTTP(w, r)
}

// NotFound serves files from the public directory and renders the 404 page
// for everything else
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && h.servePublic(w, r) {
		return
	}
	h.renderNotFound(w, r)
}

func (h *PageHandler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	templ.Handler(views.NotFoundPage(h.page(r)), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
}

func (h *PageHandler) servePublic(w http.ResponseWriter, r *http.Request) bool {
	if h.public == nil {
		return false
	}

	f, err := h.public.Open(path.Clean("/" + r.URL.Path))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
