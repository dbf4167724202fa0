package models

// MediaKind is the resolved kind of a media asset
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Project represents a portfolio project
type Project struct {
	Slug        string      `json:"slug" yaml:"slug"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Image       MediaItem   `json:"image" yaml:"image"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Overview    string      `json:"overview" yaml:"overview"`
	Features    []string    `json:"features" yaml:"features"`
	Specs       []Spec      `json:"specs" yaml:"specs"`
	Process     []string    `json:"process" yaml:"process"`
	Gallery     []MediaItem `json:"gallery" yaml:"gallery"`
}

// Spec is a single label/value row in a project's specification table
type Spec struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
