// Package views renders the site's pages as templ components. Entrance
// animations and scroll effects are described with data-motion-* and
// data-parallax-* attributes and played by static/js/site.js.
package views

import (
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	SiteName        = "Bastian Built"
	SiteTitle       = "Bastian Built - Industrial Design Portfolio"
	SiteDescription = "Accomplished industrial designer specializing in Fusion 360 and 3D printing technology"
)

// Sections are the in-page anchors linked from the header, in order
var Sections = []string{"work", "about", "contact"}

// Page is the per-request state shared by layout, header and footer
type Page struct {
	Title       string
	Description string
	Path        string
	Year        int
}

// NewPage returns the page state for a request to path at now
func NewPage(path string, now time.Time) Page {
	return Page{
		Title:       SiteTitle,
		Description: SiteDescription,
		Path:        path,
		Year:        now.Year(),
	}
}

// SectionHref links to a home page section. On the home page the link is
// a plain fragment, everywhere else it navigates back to the home page.
func (p Page) SectionHref(section string) string {
	if p.Path == "/" {
		return "#" + section
	}
	return "/#" + section
}

// NavLabel returns the header label for a section
func NavLabel(section string) string {
	return cases.Title(language.English).String(section)
}

// Layout wraps body in the document shell
func Layout(page Page, body ...templ.Component) templ.Component {
	return render(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		h.open("html", a("lang", "en"))
		h.open("head")
		h.void("meta", a("charset", "utf-8"))
		h.void("meta", a("name", "viewport"), a("content", "width=device-width, initial-scale=1"))
		h.element("title", page.Title)
		h.void("meta", a("name", "description"), a("content", page.Description))
		h.void("link", a("rel", "icon"), href("/icon-light-32x32.png"), a("media", "(prefers-color-scheme: light)"))
		h.void("link", a("rel", "icon"), href("/icon-dark-32x32.png"), a("media", "(prefers-color-scheme: dark)"))
		h.void("link", a("rel", "icon"), href("/icon.svg"), a("type", "image/svg+xml"))
		h.void("link", a("rel", "apple-touch-icon"), href("/apple-icon.png"))
		h.void("link", a("rel", "stylesheet"), href("/static/css/site.css"))
		h.open("script", a("src", "/static/js/site.js"), flag("defer"))
		h.close("script")
		h.close("head")

		h.open("body", class("font-sans antialiased"))
		h.open("div", class("page"))
		for _, c := range body {
			h.component(c)
		}
		h.close("div")
		h.close("body")
		h.close("html")
	})
}

func isExternal(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
