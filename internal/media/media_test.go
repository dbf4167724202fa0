package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bastianbuilt.com/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		src  string
		want models.MediaKind
	}{
		{"foo.MP4?v=2", models.MediaVideo},
		{"foo.jpg", models.MediaImage},
		{"foo", models.MediaImage},
		{"", models.MediaImage},
		{"/clips/a.webm", models.MediaVideo},
		{"/clips/a.OGG#t=3", models.MediaVideo},
		{"/clips/a.mov?x=1#frag", models.MediaVideo},
		{"/clips/a.mkv", models.MediaImage},
		{"/dir.mp4/poster", models.MediaImage},
		{"?only=query.mp4", models.MediaImage},
		{"clip.mp4#frag.png", models.MediaVideo},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.src))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("bare path", func(t *testing.T) {
		got := Normalize(FromPath("a.png"), "fallback")
		assert.Equal(t, models.NormalizedMedia{Type: models.MediaImage, Src: "a.png", Alt: "fallback"}, got)
	})

	t.Run("bare video path", func(t *testing.T) {
		got := Normalize(FromPath("/b/clip.mp4"), "clip")
		assert.Equal(t, models.MediaVideo, got.Type)
		assert.True(t, got.IsVideo())
	})

	t.Run("explicit type wins over extension", func(t *testing.T) {
		got := Normalize(models.MediaItem{Type: models.MediaVideo, Src: "/stream"}, "x")
		assert.Equal(t, models.MediaVideo, got.Type)
	})

	t.Run("descriptor keeps poster and alt", func(t *testing.T) {
		item := models.MediaItem{Src: "/v.mov", Poster: "/v.jpg", Alt: models.AltText("turntable")}
		got := Normalize(item, "fallback")
		assert.Equal(t, models.NormalizedMedia{
			Type:   models.MediaVideo,
			Src:    "/v.mov",
			Poster: "/v.jpg",
			Alt:    "turntable",
		}, got)
	})

	t.Run("descriptor without alt uses fallback", func(t *testing.T) {
		got := Normalize(models.MediaItem{Src: "/p.jpg"}, "Widget - Media 1")
		assert.Equal(t, "Widget - Media 1", got.Alt)
	})

	t.Run("explicit empty alt is kept", func(t *testing.T) {
		got := Normalize(models.MediaItem{Src: "/divider.svg", Alt: models.AltText("")}, "Widget - Media 1")
		assert.Equal(t, "", got.Alt)
	})
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, OrPlaceholder(models.MediaItem{}).Src)
	assert.Equal(t, "/a.jpg", OrPlaceholder(FromPath("/a.jpg")).Src)
}
