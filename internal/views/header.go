package views

import "github.com/a-h/templ"

// Header renders the fixed site header with desktop and mobile navigation
func Header(page Page) templ.Component {
	return render(func(h *htmlWriter) {
		enter := OnMount(Frame{Y: -100}, 0.8, 0).WithEase(EaseSnappy)
		h.open("header", with([]attr{class("site-header"), flag("data-header")}, enter.attrs())...)
		h.open("div", class("container"))
		h.open("div", class("header-bar"))

		h.open("a", href("/"), class("wordmark"))
		h.void("img", a("src", "/wordmark.svg"), a("alt", SiteName))
		h.close("a")

		h.open("nav", class("nav-desktop"), a("aria-label", "Primary"))
		for i, section := range Sections {
			m := OnMount(Frame{Y: -20}, 0.5, Stagger(0.1, 0.1, i))
			h.open("a", with([]attr{href(page.SectionHref(section)), class("nav-link"), a("data-nav", section)}, m.attrs())...)
			h.text(NavLabel(section))
			h.open("span", class("nav-underline"), a("aria-hidden", "true"))
			h.close("span")
			h.close("a")
		}
		h.close("nav")

		h.open("button",
			a("type", "button"),
			class("menu-toggle"),
			a("aria-label", "Toggle menu"),
			a("aria-expanded", "false"),
			a("aria-controls", "mobile-nav"),
			flag("data-menu-toggle"),
		)
		h.element("span", "☰", class("icon-menu"), a("aria-hidden", "true"))
		h.element("span", "✕", class("icon-close"), a("aria-hidden", "true"))
		h.close("button")

		h.close("div")

		h.open("nav", a("id", "mobile-nav"), class("nav-mobile"), a("aria-label", "Mobile"), flag("hidden"), flag("data-mobile-nav"))
		for i, section := range Sections {
			m := OnMount(Frame{X: -20}, 0.3, Stagger(0, 0.1, i))
			h.open("a", with([]attr{href(page.SectionHref(section)), class("nav-mobile-link"), a("data-nav", section)}, m.attrs())...)
			h.text(NavLabel(section))
			h.close("a")
		}
		h.close("nav")

		h.close("div")
		h.close("header")
	})
}

// Footer renders the copyright line for page.Year
func Footer(page Page) templ.Component {
	return render(func(h *htmlWriter) {
		h.open("footer", class("site-footer"))
		h.open("div", class("container"))
		h.open("div", with([]attr{class("footer-row")}, InView(Frame{Y: 20}, 0.6, 0).attrs())...)
		h.open("p", class("muted small"))
		h.raw("© ")
		h.int(page.Year)
		h.text(" " + SiteName + ". All rights reserved.")
		h.close("p")
		h.element("p", "Crafted with precision and passion", class("muted small"))
		h.close("div")
		h.close("div")
		h.close("footer")
	})
}
