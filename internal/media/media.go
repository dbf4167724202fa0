// Package media classifies project media references as images or videos and
// resolves them into fully populated render records.
package media

import (
	"strings"

	"bastianbuilt.com/internal/models"
)

// Placeholder is rendered when a project has no hero media.
const Placeholder = "/placeholder.svg"

var videoExtensions = map[string]struct{}{
	"mp4":  {},
	"webm": {},
	"ogg":  {},
	"mov":  {},
}

// IsVideoSrc reports whether src points at a recognised video file.
// Query strings and fragments are ignored.
func IsVideoSrc(src string) bool {
	clean, _, _ := strings.Cut(src, "?")
	clean, _, _ = strings.Cut(clean, "#")
	if clean == "" {
		return false
	}

	lastDot := strings.LastIndex(clean, ".")
	if lastDot == -1 {
		return false
	}

	_, ok := videoExtensions[strings.ToLower(clean[lastDot+1:])]
	return ok
}

// Classify infers the media kind from the file extension of src
func Classify(src string) models.MediaKind {
	if IsVideoSrc(src) {
		return models.MediaVideo
	}
	return models.MediaImage
}

// FromPath wraps a bare asset path
func FromPath(path string) models.MediaItem {
	return models.MediaItem{Src: path}
}

// Normalize resolves the kind and accessible text of item. An explicit kind
// wins over the extension; a missing alt falls back to fallbackAlt, while an
// explicit empty alt is kept.
func Normalize(item models.MediaItem, fallbackAlt string) models.NormalizedMedia {
	kind := item.Type
	if kind == "" {
		kind = Classify(item.Src)
	}

	alt := fallbackAlt
	if item.Alt != nil {
		alt = *item.Alt
	}

	return models.NormalizedMedia{
		Type:   kind,
		Src:    item.Src,
		Poster: item.Poster,
		Alt:    alt,
	}
}

// OrPlaceholder substitutes the placeholder image for an empty source
func OrPlaceholder(item models.MediaItem) models.MediaItem {
	if item.Src == "" {
		item.Src = Placeholder
	}
	return item
}
