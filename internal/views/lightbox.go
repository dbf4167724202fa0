package views

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"bastianbuilt.com/internal/models"
)

// Lightbox is the full-screen gallery viewer state. It is open when
// Selected is a valid index into Items.
type Lightbox struct {
	BasePath string
	Items    []models.NormalizedMedia
	Selected int
}

// NewLightbox returns a lightbox over items, open on selected when it is in
// range and closed otherwise.
func NewLightbox(basePath string, items []models.NormalizedMedia, selected int) Lightbox {
	if selected < 0 || selected >= len(items) {
		selected = -1
	}
	return Lightbox{BasePath: basePath, Items: items, Selected: selected}
}

// IsOpen reports whether an item is selected
func (l Lightbox) IsOpen() bool {
	return l.Selected >= 0 && l.Selected < len(l.Items)
}

// Next returns the index after the selected one, wrapping to the first
func (l Lightbox) Next() int {
	if !l.IsOpen() {
		return l.Selected
	}
	return (l.Selected + 1) % len(l.Items)
}

// Prev returns the index before the selected one, wrapping to the last
func (l Lightbox) Prev() int {
	if !l.IsOpen() {
		return l.Selected
	}
	n := len(l.Items)
	return (l.Selected - 1 + n) % n
}

// Counter returns the "3 / 7" position label
func (l Lightbox) Counter() string {
	if !l.IsOpen() {
		return ""
	}
	return fmt.Sprintf("%d / %d", l.Selected+1, len(l.Items))
}

// ItemHref links to the page with item i open
func (l Lightbox) ItemHref(i int) string {
	return l.BasePath + "?media=" + strconv.Itoa(i)
}

// Component renders the viewer, or nothing when closed
func (l Lightbox) Component() templ.Component {
	if !l.IsOpen() {
		return templ.NopComponent
	}
	return render(func(h *htmlWriter) {
		item := l.Items[l.Selected]

		h.open("div", with([]attr{
			class("lightbox"),
			a("role", "dialog"),
			a("aria-modal", "true"),
			a("aria-label", item.Alt),
			flag("data-lightbox"),
		}, OnMount(Frame{}, 0.3, 0).attrs())...)

		h.element("a", "✕", href(l.BasePath), class("lightbox-button lightbox-close"), a("aria-label", "Close"), flag("data-lightbox-close"))
		h.element("a", "‹", href(l.ItemHref(l.Prev())), class("lightbox-button lightbox-prev"), a("aria-label", "Previous"), flag("data-lightbox-prev"))
		h.element("a", "›", href(l.ItemHref(l.Next())), class("lightbox-button lightbox-next"), a("aria-label", "Next"), flag("data-lightbox-next"))

		writeMedia(h, item, "lightbox-media", mediaViewer, OnMount(Frame{Scale: 0.9}, 0.3, 0).attrs()...)

		h.element("div", l.Counter(), class("lightbox-counter muted small"))
		h.close("div")
	})
}
