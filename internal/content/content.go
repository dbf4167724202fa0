// Package content holds the portfolio catalogue compiled into the binary.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"bastianbuilt.com/internal/models"
)

//go:embed projects.yaml
var projectsYAML []byte

var (
	defaultOnce     sync.Once
	defaultProjects *models.ProjectList
)

// Default returns the embedded catalogue. It panics if the embedded file is
// invalid, which can only happen with a broken build.
func Default() *models.ProjectList {
	defaultOnce.Do(func() {
		projects, err := Parse(projectsYAML)
		if err != nil {
			panic("Failed to parse projects.yaml: " + err.Error())
		}
		defaultProjects = projects
	})
	return defaultProjects
}

// Parse decodes a catalogue document and checks that every slug is present
// and unique.
func Parse(data []byte) (*models.ProjectList, error) {
	var list models.ProjectList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	seen := make(map[string]int, len(list.Projects))
	for i, p := range list.Projects {
		if p.Slug == "" {
			return nil, fmt.Errorf("project %d (%q) has no slug", i, p.Title)
		}
		if prev, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q at projects %d and %d", p.Slug, prev, i)
		}
		seen[p.Slug] = i
	}

	return &list, nil
}
