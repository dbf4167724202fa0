package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MediaItem references an image or video asset. In the dataset it is written
// either as a bare path or as a mapping with explicit fields.
type MediaItem struct {
	Type   MediaKind `json:"type,omitempty" yaml:"type,omitempty"`
	Src    string    `json:"src" yaml:"src"`
	Poster string    `json:"poster,omitempty" yaml:"poster,omitempty"`
	// Alt is nil when the dataset gives none. An explicit empty string marks
	// a decorative image and is kept.
	Alt    *string   `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// AltText returns a pointer to alt for building descriptors in code
func AltText(alt string) *string {
	return &alt
}

// UnmarshalYAML accepts a scalar path or a full mapping
func (m *MediaItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*m = MediaItem{Src: node.Value}
		return nil
	case yaml.MappingNode:
		type plain MediaItem
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		switch p.Type {
		case "", MediaImage, MediaVideo:
		default:
			return fmt.Errorf("line %d: unknown media type %q", node.Line, p.Type)
		}
		*m = MediaItem(p)
		return nil
	default:
		return fmt.Errorf("line %d: media must be a path or a mapping", node.Line)
	}
}

// NormalizedMedia is a media reference with every field resolved
type NormalizedMedia struct {
	Type   MediaKind `json:"type"`
	Src    string    `json:"src"`
	Poster string    `json:"poster,omitempty"`
	Alt    string    `json:"alt"`
}

// IsVideo reports whether the media should be rendered as a video
func (n NormalizedMedia) IsVideo() bool {
	return n.Type == MediaVideo
}
