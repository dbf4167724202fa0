package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/services"
)

// ProjectHandler handles project catalogue endpoints
type ProjectHandler struct {
	responder
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger logging.Logger) *ProjectHandler {
	return &ProjectHandler{
		responder:      responder{logger: logger},
		projectService: ps,
	}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.List()
	h.respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, ok := h.projectService.FindBySlug(slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	h.respondJSON(w, http.StatusOK, project)
}
