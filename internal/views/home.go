package views

import (
	"github.com/a-h/templ"

	"bastianbuilt.com/internal/models"
	"bastianbuilt.com/internal/services"
)

const (
	HeroHeadline = "Industrial Design & 3D Printing"
	HeroTagline  = "Crafting precision-engineered products through Fusion 360 and advanced 3D printing technology. Transforming concepts into tangible innovation."
)

// Hero renders the home page banner with its scroll parallax
func Hero() templ.Component {
	return render(func(h *htmlWriter) {
		p := HomeParallax
		h.open("section", a("id", "hero"), class("hero"), p.root())
		h.open("div", class("container"), p.offset(), p.fade())
		h.open("div", class("hero-copy"))
		h.element("h1", HeroHeadline, with([]attr{class("hero-title")}, OnMount(Frame{Y: 50}, 0.8, 0.2).WithEase(EaseSnappy).attrs())...)
		h.element("p", HeroTagline, with([]attr{class("hero-tagline")}, OnMount(Frame{Y: 50}, 0.8, 0.4).WithEase(EaseSnappy).attrs())...)
		h.close("div")
		h.close("div")

		glow := OnMount(Frame{Scale: 0.8}, 1.5, 0.5).WithTarget(Frame{Opacity: 0.1, Scale: 1})
		h.open("div", with([]attr{class("hero-glow"), a("aria-hidden", "true")}, glow.attrs())...)
		h.close("div")
		h.close("section")
	})
}

// ProjectsGrid renders one card per project in catalogue order
func ProjectsGrid(projects []models.Project) templ.Component {
	return render(func(h *htmlWriter) {
		h.open("section", a("id", "work"), class("section section-alt"))
		h.open("div", class("container"))

		h.open("div", with([]attr{class("section-heading")}, InView(Frame{Y: 30}, 0.6, 0).WithMargin("-100px").attrs())...)
		h.element("h2", "Selected Work")
		h.element("p", "A collection of precision-engineered products showcasing the intersection of digital design and advanced manufacturing.", class("lead"))
		h.close("div")

		h.open("div", class("projects-grid"))
		for i := range projects {
			p := &projects[i]
			m := InView(Frame{Y: 20}, 0.5, Stagger(0, 0.2, i)).WithEase(EaseInOut).WithMargin("-100px")
			h.open("div", with([]attr{class("project-card-wrap")}, m.attrs())...)
			h.open("a", href("/projects/"+p.Slug), class("project-card"))

			h.open("div", class("project-card-media"))
			writeMedia(h, services.PreviewMedia(p), "cover", mediaAmbient)
			h.close("div")

			h.open("div", class("project-card-body"))
			h.element("h3", p.Title)
			h.element("p", p.Description, class("muted"))
			writeTags(h, p.Tags)
			h.close("div")

			h.close("a")
			h.close("div")
		}
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

var aboutParagraphs = []string{
	"I design and fabricate functional parts — from concept through to a finished, testable product.",
	"My work blends practical engineering with modern digital design. I create accurate 3D models and assemblies, produce clear 2D drawings, and work confidently with engineering calculations and applied maths to make sure designs are fit-for-purpose. I’m comfortable interpreting standards and documentation, and I build with manufacturability and real-world constraints in mind.",
	"In the workshop, I prototype fast and iterate quickly using my Bambu 3D printer. That lets me move from measurements or scans to CAD to physical parts — refining fitment, strength, and durability through hands-on testing. Whether it’s a protective cover, a custom mount, or a one-off component, I focus on clean design, reliable function, and repeatable fabrication.",
}

type aboutList struct {
	Title string
	Items []string
}

var aboutLists = []aboutList{
	{
		Title: "Expertise",
		Items: []string{
			"Fusion 360 CAD",
			"Surface Modelling",
			"Reverse Engineering (Scan/Measure → CAD)",
			"Functional Part Design",
			"3D Printing & Iteration",
		},
	},
	{
		Title: "Processes",
		Items: []string{
			"FDM Printing (Bambu)",
			"Carbon fibre / engineering filaments (e.g. PA-CF, ASA-CF)",
			"Prototype fitment testing and revision cycles",
			"Basic finishing and assembly (fasteners, inserts, adhesives)",
		},
	},
	{
		Title: "Industries",
		Items: []string{
			"Motorcycle parts & protection",
			"Automotive accessories and packaging (incl. interior-fit parts)",
			"Custom brackets, mounts and hardware",
			"One-off replacements and small-run functional components",
		},
	},
}

// About renders the biography and capability lists
func About() templ.Component {
	return render(func(h *htmlWriter) {
		h.open("section", a("id", "about"), class("section"))
		h.open("div", class("container"))
		h.open("div", class("narrow"))

		h.element("h2", "About", InView(Frame{Y: 30}, 0.6, 0).WithMargin("-100px").attrs()...)

		h.open("div", class("about-copy"))
		for i, text := range aboutParagraphs {
			m := InView(Frame{Y: 20}, 0.5, Stagger(0, 0.15, i)).WithEase(EaseInOut).WithMargin("-100px")
			h.element("p", text, m.attrs()...)
		}
		h.close("div")

		h.open("div", with([]attr{class("about-lists")}, InView(Frame{Y: 40}, 0.6, 0.3).WithMargin("-100px").attrs())...)
		for i, list := range aboutLists {
			h.open("div", InView(Frame{Y: 20}, 0.5, Stagger(0.4, 0.1, i)).WithMargin("-100px").attrs()...)
			h.element("h3", list.Title)
			h.open("ul", class("muted"))
			for _, item := range list.Items {
				h.element("li", item)
			}
			h.close("ul")
			h.close("div")
		}
		h.close("div")

		h.close("div")
		h.close("div")
		h.close("section")
	})
}

// ContactEmail is the public mailbox shown in the Connect list
const ContactEmail = "bastian@hitchon.me"

type connectLink struct {
	Text string
	Href string
}

var connectLinks = []connectLink{
	{Text: ContactEmail, Href: "mailto:" + ContactEmail},
	{Text: "Instagram", Href: "https://instagram.com/bastian.built/"},
}

// Contact renders the enquiry form and contact details. The form posts to
// /api/contact and works without JavaScript.
func Contact() templ.Component {
	return render(func(h *htmlWriter) {
		h.open("section", a("id", "contact"), class("section section-alt"))
		h.open("div", class("container"))
		h.open("div", class("narrow"))

		h.open("div", with([]attr{class("section-heading centered")}, InView(Frame{Y: 30}, 0.6, 0).WithMargin("-100px").attrs())...)
		h.element("h2", "Start a Project")
		h.element("p", "Have a project in mind? I'm always interested in discussing new opportunities and innovative design challenges.", class("lead"))
		h.close("div")

		h.open("div", class("contact-grid"))

		h.open("div", InView(Frame{X: -30}, 0.6, 0.2).WithMargin("-100px").attrs()...)
		h.open("form", class("contact-form"), a("method", "post"), a("action", "/api/contact"), flag("data-contact-form"))
		fieldMotion := func(delay float64) []attr { return InView(Frame{Y: 20}, 0.4, delay).attrs() }

		h.open("div", fieldMotion(0.3)...)
		h.void("input", a("type", "text"), a("name", "name"), a("placeholder", "Name"), a("aria-label", "Name"), class("input"), flag("required"))
		h.close("div")
		h.open("div", fieldMotion(0.4)...)
		h.void("input", a("type", "email"), a("name", "email"), a("placeholder", "Email"), a("aria-label", "Email"), class("input"), flag("required"))
		h.close("div")
		h.open("div", fieldMotion(0.5)...)
		h.open("textarea", a("name", "message"), a("rows", "6"), a("placeholder", "Tell me about your project..."), a("aria-label", "Message"), class("input textarea"), flag("required"))
		h.close("textarea")
		h.close("div")

		h.open("div", class("form-status"), a("role", "status"), a("aria-live", "polite"), flag("hidden"), flag("data-contact-status"))
		h.close("div")

		h.open("div", fieldMotion(0.6)...)
		h.element("button", "Send Message", a("type", "submit"), class("button button-primary button-block"), flag("data-contact-submit"))
		h.close("div")
		h.close("form")
		h.close("div")

		h.open("div", with([]attr{class("contact-aside")}, InView(Frame{X: 30}, 0.6, 0.2).WithMargin("-100px").attrs())...)
		h.open("div")
		h.element("h3", "Connect")
		h.open("div", class("connect-links"))
		for i, link := range connectLinks {
			attrs := []attr{href(link.Href), class("connect-link")}
			if isExternal(link.Href) {
				attrs = append(attrs, a("target", "_blank"), a("rel", "noopener noreferrer"))
			}
			h.element("a", link.Text, with(attrs, InView(Frame{X: 20}, 0.4, Stagger(0.4, 0.1, i)).attrs())...)
		}
		h.close("div")
		h.close("div")

		h.open("div", InView(Frame{X: 20}, 0.4, 0.7).attrs()...)
		h.element("h3", "Location")
		h.open("p", class("muted"))
		h.text("Available for online projects")
		h.void("br")
		h.text("and local on-site consults")
		h.close("p")
		h.close("div")
		h.close("div")

		h.close("div")
		h.close("div")
		h.close("div")
		h.close("section")
	})
}

// HomePage renders the full home page
func HomePage(page Page, projects []models.Project) templ.Component {
	return Layout(page,
		Header(page),
		render(func(h *htmlWriter) {
			h.open("main")
			h.component(Hero())
			h.component(ProjectsGrid(projects))
			h.component(About())
			h.component(Contact())
			h.close("main")
		}),
		Footer(page),
	)
}
