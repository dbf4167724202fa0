package services

import (
	"fmt"

	"bastianbuilt.com/internal/media"
	"bastianbuilt.com/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns all projects in display order
func (s *ProjectService) List() []models.Project {
	return s.projects.Projects
}

// FindBySlug returns the project whose slug matches exactly
func (s *ProjectService) FindBySlug(slug string) (*models.Project, bool) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].Slug == slug {
			return &s.projects.Projects[i], true
		}
	}
	return nil, false
}

// Slugs returns every project slug in display order
func (s *ProjectService) Slugs() []string {
	slugs := make([]string, len(s.projects.Projects))
	for i, p := range s.projects.Projects {
		slugs[i] = p.Slug
	}
	return slugs
}

// PreviewMedia returns the media shown on a project's grid card
func PreviewMedia(p *models.Project) models.NormalizedMedia {
	return media.Normalize(media.OrPlaceholder(p.Image), p.Title+" - Preview")
}

// HeroMedia returns the media shown at the top of a project page
func HeroMedia(p *models.Project) models.NormalizedMedia {
	return media.Normalize(media.OrPlaceholder(p.Image), p.Title+" - Hero")
}

// GalleryMedia returns the normalized gallery of a project
func GalleryMedia(p *models.Project) []models.NormalizedMedia {
	items := make([]models.NormalizedMedia, len(p.Gallery))
	for i, item := range p.Gallery {
		items[i] = media.Normalize(item, fmt.Sprintf("%s - Media %d", p.Title, i+1))
	}
	return items
}
