package views

import (
	"strconv"

	"github.com/a-h/templ"

	"bastianbuilt.com/internal/models"
	"bastianbuilt.com/internal/services"
)

// ProjectDetail renders the body of a project page
func ProjectDetail(p *models.Project, lightbox Lightbox) templ.Component {
	return render(func(h *htmlWriter) {
		h.open("main", class("project-main"))

		writeProjectHero(h, p)

		h.open("section", class("section"))
		h.open("div", class("container"))
		h.open("div", with([]attr{class("narrow")}, InView(Frame{Y: 40}, 0.8, 0).WithEase(EaseSnappy).WithMargin("-100px").attrs())...)
		h.element("h2", "Overview")
		h.element("p", p.Overview, class("lead"))
		h.close("div")
		h.close("div")
		h.close("section")

		h.open("section", class("section section-alt"))
		h.open("div", class("container two-col"))

		h.open("div", InView(Frame{X: -40}, 0.6, 0).WithMargin("-100px").attrs()...)
		h.element("h2", "Key Features")
		h.open("div", class("features"))
		for i, feature := range p.Features {
			h.open("div", with([]attr{class("feature")}, InView(Frame{X: -20}, 0.4, Stagger(0, 0.1, i)).attrs())...)
			h.element("span", "✓", class("feature-check"), a("aria-hidden", "true"))
			h.element("p", feature, class("muted"))
			h.close("div")
		}
		h.close("div")
		h.close("div")

		h.open("div", InView(Frame{X: 40}, 0.6, 0).WithMargin("-100px").attrs()...)
		h.element("h2", "Specifications")
		h.open("div", class("card"))
		h.open("dl", class("specs"))
		for i, spec := range p.Specs {
			h.open("div", with([]attr{class("spec")}, InView(Frame{Y: 10}, 0.4, Stagger(0, 0.1, i)).attrs())...)
			h.element("dt", spec.Label)
			h.element("dd", spec.Value)
			h.close("div")
		}
		h.close("dl")
		h.close("div")
		h.close("div")

		h.close("div")
		h.close("section")

		h.open("section", class("section"))
		h.open("div", class("container"))
		h.open("div", class("narrow"))
		h.element("h2", "Design Process", InView(Frame{Y: 30}, 0.6, 0).WithMargin("-100px").attrs()...)
		h.open("ol", class("process"))
		for i, step := range p.Process {
			h.open("li", with([]attr{class("process-step")}, InView(Frame{X: -30}, 0.5, Stagger(0, 0.1, i)).attrs())...)
			h.open("span", class("process-number"), a("aria-hidden", "true"))
			h.int(i + 1)
			h.close("span")
			h.element("p", step, class("lead"))
			h.close("li")
		}
		h.close("ol")
		h.close("div")
		h.close("div")
		h.close("section")

		gallery := lightbox.Items
		if len(gallery) > 0 {
			h.open("section", class("section section-alt"))
			h.open("div", class("container"))
			h.element("h2", "Gallery", InView(Frame{Y: 30}, 0.6, 0).WithMargin("-100px").attrs()...)
			h.open("div", class("gallery"))
			for i, item := range gallery {
				h.open("a", with([]attr{
					href(lightbox.ItemHref(i)),
					class("gallery-item"),
					a("data-lightbox-index", strconv.Itoa(i)),
				}, InView(Frame{Scale: 0.9}, 0.5, Stagger(0, 0.1, i)).attrs())...)
				writeMedia(h, item, "cover", mediaAmbient)
				h.close("a")
			}
			h.close("div")
			h.close("div")
			h.close("section")
		}

		h.open("section", class("section cta"))
		h.open("div", with([]attr{class("container centered")}, InView(Frame{Y: 30}, 0.6, 0).attrs())...)
		h.element("a", "View All Projects", href("/#work"), class("button button-primary button-large"))
		h.close("div")
		h.close("section")

		h.close("main")
	})
}

func writeProjectHero(h *htmlWriter, p *models.Project) {
	px := ProjectParallax
	h.open("section", with([]attr{class("project-hero"), px.root()}, OnMount(Frame{}, 0.8, 0).attrs())...)
	writeMedia(h, services.HeroMedia(p), "project-hero-media", mediaAmbient, px.offset())
	h.open("div", class("project-hero-overlay"), a("aria-hidden", "true"))
	h.close("div")

	h.open("div", class("container project-hero-copy"), px.fade())
	h.open("div", OnMount(Frame{X: -20}, 0.6, 0.2).attrs()...)
	h.open("a", href("/#work"), class("back-link"))
	h.element("span", "←", a("aria-hidden", "true"))
	h.text(" Back to Work")
	h.close("a")
	h.close("div")
	h.element("h1", p.Title, OnMount(Frame{Y: 30}, 0.8, 0.3).WithEase(EaseSnappy).attrs()...)
	h.element("p", p.Description, with([]attr{class("project-lede")}, OnMount(Frame{Y: 30}, 0.8, 0.4).WithEase(EaseSnappy).attrs())...)
	h.open("div", OnMount(Frame{Y: 20}, 0.6, 0.5).attrs()...)
	writeTags(h, p.Tags)
	h.close("div")
	h.close("div")

	h.close("section")
}

// ProjectPage renders a full project page with the lightbox state from the
// request
func ProjectPage(page Page, p *models.Project, lightbox Lightbox) templ.Component {
	return Layout(page,
		Header(page),
		ProjectDetail(p, lightbox),
		Footer(page),
		lightbox.Component(),
	)
}

// NotFound renders the body of the 404 page
func NotFound() templ.Component {
	return render(func(h *htmlWriter) {
		h.open("main", class("not-found"))
		h.open("div", class("centered"))
		h.element("h1", "404", class("not-found-code"))
		h.element("h2", "Project Not Found")
		h.element("p", "The project you're looking for doesn't exist.", class("muted"))
		h.element("a", "View All Projects", href("/#work"), class("button button-primary"))
		h.close("div")
		h.close("main")
	})
}

// NotFoundPage renders the full 404 page
func NotFoundPage(page Page) templ.Component {
	return Layout(page, Header(page), NotFound(), Footer(page))
}
