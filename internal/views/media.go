package views

import (
	"bastianbuilt.com/internal/media"
	"bastianbuilt.com/internal/models"
)

type mediaMode int

const (
	// mediaAmbient plays videos muted and looped like a moving image
	mediaAmbient mediaMode = iota
	// mediaViewer shows videos with controls
	mediaViewer
)

func writeMedia(h *htmlWriter, m models.NormalizedMedia, cls string, mode mediaMode, extra ...attr) {
	src := m.Src
	if src == "" {
		src = media.Placeholder
	}

	if !m.IsVideo() {
		attrs := []attr{a("src", src), a("alt", m.Alt), class(cls)}
		if mode == mediaAmbient {
			attrs = append(attrs, a("loading", "lazy"))
		}
		h.void("img", with(attrs, extra)...)
		return
	}

	attrs := []attr{class(cls)}
	switch mode {
	case mediaViewer:
		attrs = append(attrs, a("src", src), flag("controls"), flag("autoplay"), flag("playsinline"))
	default:
		attrs = append(attrs, flag("autoplay"), flag("muted"), flag("loop"), flag("playsinline"), a("preload", "metadata"))
	}
	if m.Poster != "" {
		attrs = append(attrs, a("poster", m.Poster))
	}
	attrs = append(attrs, a("aria-label", m.Alt))

	h.open("video", with(attrs, extra)...)
	if mode == mediaAmbient {
		h.void("source", a("src", src))
	}
	h.close("video")
}

func writeTags(h *htmlWriter, tags []string) {
	if len(tags) == 0 {
		return
	}
	h.open("div", class("tags"))
	for _, tag := range tags {
		h.element("span", tag, class("badge"))
	}
	h.close("div")
}
