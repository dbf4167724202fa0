package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"bastianbuilt.com/internal/content"
	"bastianbuilt.com/internal/models"
	"bastianbuilt.com/internal/services"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func renderDoc(t *testing.T, c templ.Component) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(renderString(t, c)))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attrOf(n *html.Node, key string) (string, bool) {
	for _, at := range n.Attr {
		if at.Key == key {
			return at.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, cls string) bool {
	v, _ := attrOf(n, "class")
	for _, c := range strings.Fields(v) {
		if c == cls {
			return true
		}
	}
	return false
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == tag }
}

func byClass(tag, cls string) func(*html.Node) bool {
	return func(n *html.Node) bool { return byTag(tag)(n) && hasClass(n, cls) }
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func testPage(path string) Page {
	return NewPage(path, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
}

func testProject() *models.Project {
	return &models.Project{
		Slug:        "bracket",
		Title:       "Mount <Bracket>",
		Description: "A bracket",
		Image:       models.MediaItem{Src: "/bracket/hero.jpg"},
		Tags:        []string{"PA-CF", "Fusion 360"},
		Overview:    "Overview text",
		Features:    []string{"Strong", "Light"},
		Specs:       []models.Spec{{Label: "Material", Value: "PA-CF"}, {Label: "Weight", Value: "40g"}},
		Process:     []string{"Scan", "Model", "Print"},
		Gallery: []models.MediaItem{
			{Src: "/bracket/1.jpg"},
			{Src: "/bracket/2.mp4", Poster: "/bracket/2.jpg"},
			{Src: "/bracket/3.jpg", Alt: models.AltText("Installed")},
		},
	}
}

func TestFrameString(t *testing.T) {
	tests := []struct {
		frame Frame
		want  string
	}{
		{Frame{}, "opacity:0"},
		{Frame{Opacity: 1}, "opacity:1"},
		{Frame{Y: 50}, "opacity:0;y:50"},
		{Frame{X: -20}, "opacity:0;x:-20"},
		{Frame{Scale: 0.9}, "opacity:0;scale:0.9"},
		{Frame{Opacity: 0.1, Scale: 1}, "opacity:0.1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.frame.String())
	}
}

func TestEaseString(t *testing.T) {
	assert.Equal(t, "cubic-bezier(0.6,0.05,0.01,0.9)", EaseSnappy.String())
	assert.Equal(t, "cubic-bezier(0.42,0,0.58,1)", EaseInOut.String())
	assert.Equal(t, "ease", Ease{}.String())
}

func TestStagger(t *testing.T) {
	assert.Equal(t, 0.0, Stagger(0, 0.2, 0))
	assert.Equal(t, 0.4, Stagger(0, 0.2, 2))
	assert.Equal(t, 0.6, Stagger(0.4, 0.1, 2))
	assert.Equal(t, 0.45, Stagger(0, 0.15, 3))
}

func TestMotionAttrs(t *testing.T) {
	m := InView(Frame{Y: 20}, 0.5, 0.2).WithEase(EaseInOut).WithMargin("-100px")
	got := map[string]string{}
	for _, at := range m.attrs() {
		got[at.key] = at.val
	}

	assert.Equal(t, "view", got["data-motion"])
	assert.Equal(t, "opacity:0;y:20", got["data-motion-from"])
	assert.Equal(t, "opacity:1", got["data-motion-to"])
	assert.Equal(t, "0.5", got["data-motion-duration"])
	assert.Equal(t, "0.2", got["data-motion-delay"])
	assert.Equal(t, "cubic-bezier(0.42,0,0.58,1)", got["data-motion-ease"])
	assert.Equal(t, "-100px", got["data-motion-margin"])
	assert.Contains(t, got, "data-motion-once")
}

func TestNavLabel(t *testing.T) {
	assert.Equal(t, "Work", NavLabel("work"))
	assert.Equal(t, "About", NavLabel("about"))
	assert.Equal(t, "Contact", NavLabel("contact"))
}

func TestHeaderLinks(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
	}{
		{"/", "#"},
		{"/projects/bracket", "/#"},
		{"/missing", "/#"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc := renderDoc(t, Header(testPage(tt.path)))
			links := findAll(doc, byClass("a", "nav-link"))
			require.Len(t, links, len(Sections))
			for i, link := range links {
				got, _ := attrOf(link, "href")
				assert.Equal(t, tt.prefix+Sections[i], got)
				assert.Equal(t, NavLabel(Sections[i]), textOf(link))
			}

			toggles := findAll(doc, byClass("button", "menu-toggle"))
			require.Len(t, toggles, 1)
			label, _ := attrOf(toggles[0], "aria-label")
			assert.Equal(t, "Toggle menu", label)
		})
	}
}

func TestFooter(t *testing.T) {
	doc := renderDoc(t, Footer(testPage("/")))
	paragraphs := findAll(doc, byTag("p"))
	require.Len(t, paragraphs, 2)
	assert.Equal(t, "© 2025 Bastian Built. All rights reserved.", textOf(paragraphs[0]))
	assert.Equal(t, "Crafted with precision and passion", textOf(paragraphs[1]))
}

func TestHomePage(t *testing.T) {
	projects := content.Default().Projects
	doc := renderDoc(t, HomePage(testPage("/"), projects))

	titles := findAll(doc, byTag("title"))
	require.Len(t, titles, 1)
	assert.Equal(t, SiteTitle, textOf(titles[0]))

	metas := findAll(doc, func(n *html.Node) bool {
		name, _ := attrOf(n, "name")
		return byTag("meta")(n) && name == "description"
	})
	require.Len(t, metas, 1)
	desc, _ := attrOf(metas[0], "content")
	assert.Equal(t, SiteDescription, desc)

	for _, id := range []string{"hero", "work", "about", "contact"} {
		sections := findAll(doc, func(n *html.Node) bool {
			got, _ := attrOf(n, "id")
			return byTag("section")(n) && got == id
		})
		assert.Len(t, sections, 1, "section %s", id)
	}

	cards := findAll(doc, byClass("a", "project-card"))
	require.Len(t, cards, len(projects))
	for i, card := range cards {
		got, _ := attrOf(card, "href")
		assert.Equal(t, "/projects/"+projects[i].Slug, got)

		media := findAll(card, func(n *html.Node) bool { return byTag("img")(n) || byTag("video")(n) })
		require.Len(t, media, 1)
		preview := services.PreviewMedia(&projects[i])
		if media[0].Data == "img" {
			alt, _ := attrOf(media[0], "alt")
			assert.Equal(t, projects[i].Title+" - Preview", alt)
		} else {
			label, _ := attrOf(media[0], "aria-label")
			assert.Equal(t, preview.Alt, label)
		}
	}

	forms := findAll(doc, byTag("form"))
	require.Len(t, forms, 1)
	action, _ := attrOf(forms[0], "action")
	method, _ := attrOf(forms[0], "method")
	assert.Equal(t, "/api/contact", action)
	assert.Equal(t, "post", method)
	for _, name := range []string{"name", "email", "message"} {
		fields := findAll(forms[0], func(n *html.Node) bool {
			got, _ := attrOf(n, "name")
			return n.Type == html.ElementNode && got == name
		})
		assert.Len(t, fields, 1, "field %s", name)
	}

	rendered := renderString(t, HomePage(testPage("/"), projects))
	assert.Contains(t, rendered, "Industrial Design &amp; 3D Printing")
	assert.Contains(t, rendered, "Selected Work")
	assert.Contains(t, rendered, "Start a Project")
	assert.Contains(t, rendered, "mailto:bastian@hitchon.me")
	assert.Contains(t, rendered, `href="https://instagram.com/bastian.built/" class="connect-link" target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, rendered, "Reverse Engineering (Scan/Measure → CAD)")
}

func TestProjectsGridVideoPreview(t *testing.T) {
	p := models.Project{
		Slug:  "clip",
		Title: "Clip",
		Image: models.MediaItem{Src: "/clip/demo.MP4?v=2", Poster: "/clip/poster.jpg"},
	}

	doc := renderDoc(t, ProjectsGrid([]models.Project{p}))
	videos := findAll(doc, byTag("video"))
	require.Len(t, videos, 1)

	poster, _ := attrOf(videos[0], "poster")
	assert.Equal(t, "/clip/poster.jpg", poster)
	for _, key := range []string{"autoplay", "muted", "loop", "playsinline"} {
		_, ok := attrOf(videos[0], key)
		assert.True(t, ok, key)
	}

	sources := findAll(videos[0], byTag("source"))
	require.Len(t, sources, 1)
	src, _ := attrOf(sources[0], "src")
	assert.Equal(t, "/clip/demo.MP4?v=2", src)
}

func TestProjectsGridPlaceholder(t *testing.T) {
	doc := renderDoc(t, ProjectsGrid([]models.Project{{Slug: "empty", Title: "Empty"}}))
	imgs := findAll(doc, byTag("img"))
	require.Len(t, imgs, 1)
	src, _ := attrOf(imgs[0], "src")
	alt, _ := attrOf(imgs[0], "alt")
	assert.Equal(t, "/placeholder.svg", src)
	assert.Equal(t, "Empty - Preview", alt)
}

func TestProjectPage(t *testing.T) {
	p := testProject()
	lb := NewLightbox("/projects/bracket", services.GalleryMedia(p), -1)
	rendered := renderString(t, ProjectPage(testPage("/projects/bracket"), p, lb))
	doc, err := html.Parse(strings.NewReader(rendered))
	require.NoError(t, err)

	assert.Contains(t, rendered, "Mount &lt;Bracket&gt;")
	assert.NotContains(t, rendered, "<Bracket>")

	heroes := findAll(doc, byClass("img", "project-hero-media"))
	require.Len(t, heroes, 1)
	alt, _ := attrOf(heroes[0], "alt")
	assert.Equal(t, "Mount <Bracket> - Hero", alt)
	y, _ := attrOf(heroes[0], "data-parallax-y")
	assert.Equal(t, "30%", y)

	specs := findAll(doc, byTag("dt"))
	require.Len(t, specs, 2)
	assert.Equal(t, "Material", textOf(specs[0]))
	values := findAll(doc, byTag("dd"))
	assert.Equal(t, "40g", textOf(values[1]))

	steps := findAll(doc, byClass("span", "process-number"))
	require.Len(t, steps, 3)
	assert.Equal(t, "3", textOf(steps[2]))

	items := findAll(doc, byClass("a", "gallery-item"))
	require.Len(t, items, 3)
	first, _ := attrOf(items[0], "href")
	assert.Equal(t, "/projects/bracket?media=0", first)
	galleryImgs := findAll(items[0], byTag("img"))
	require.Len(t, galleryImgs, 1)
	galleryAlt, _ := attrOf(galleryImgs[0], "alt")
	assert.Equal(t, "Mount <Bracket> - Media 1", galleryAlt)
	assert.Len(t, findAll(items[1], byTag("video")), 1)
	explicitAlt, _ := attrOf(findAll(items[2], byTag("img"))[0], "alt")
	assert.Equal(t, "Installed", explicitAlt)

	assert.Empty(t, findAll(doc, byClass("div", "lightbox")))

	backLinks := findAll(doc, byClass("a", "back-link"))
	require.Len(t, backLinks, 1)
	back, _ := attrOf(backLinks[0], "href")
	assert.Equal(t, "/#work", back)
	assert.Contains(t, rendered, "View All Projects")
	assert.Contains(t, rendered, "Key Features")
	assert.Contains(t, rendered, "Design Process")
}

func TestProjectPageWithoutGallery(t *testing.T) {
	p := testProject()
	p.Gallery = nil
	rendered := renderString(t, ProjectPage(testPage("/projects/bracket"), p, NewLightbox("/projects/bracket", nil, 0)))
	assert.NotContains(t, rendered, "Gallery")
	assert.NotContains(t, rendered, `class="lightbox"`)
}

func TestLightboxNavigation(t *testing.T) {
	items := services.GalleryMedia(testProject())

	tests := []struct {
		name     string
		selected int
		open     bool
		next     int
		prev     int
		counter  string
	}{
		{"first", 0, true, 1, 2, "1 / 3"},
		{"middle", 1, true, 2, 0, "2 / 3"},
		{"last wraps", 2, true, 0, 1, "3 / 3"},
		{"negative", -1, false, -1, -1, ""},
		{"out of range", 3, false, -1, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := NewLightbox("/projects/bracket", items, tt.selected)
			assert.Equal(t, tt.open, lb.IsOpen())
			assert.Equal(t, tt.next, lb.Next())
			assert.Equal(t, tt.prev, lb.Prev())
			assert.Equal(t, tt.counter, lb.Counter())
		})
	}
}

func TestLightboxSingleItem(t *testing.T) {
	lb := NewLightbox("/p", services.GalleryMedia(testProject())[:1], 0)
	assert.Equal(t, 0, lb.Next())
	assert.Equal(t, 0, lb.Prev())
	assert.Equal(t, "1 / 1", lb.Counter())
}

func TestLightboxComponent(t *testing.T) {
	items := services.GalleryMedia(testProject())

	t.Run("video item", func(t *testing.T) {
		doc := renderDoc(t, NewLightbox("/projects/bracket", items, 1).Component())

		boxes := findAll(doc, byClass("div", "lightbox"))
		require.Len(t, boxes, 1)

		prev, _ := attrOf(findAll(doc, byClass("a", "lightbox-prev"))[0], "href")
		next, _ := attrOf(findAll(doc, byClass("a", "lightbox-next"))[0], "href")
		closeHref, _ := attrOf(findAll(doc, byClass("a", "lightbox-close"))[0], "href")
		assert.Equal(t, "/projects/bracket?media=0", prev)
		assert.Equal(t, "/projects/bracket?media=2", next)
		assert.Equal(t, "/projects/bracket", closeHref)

		videos := findAll(doc, byTag("video"))
		require.Len(t, videos, 1)
		_, controls := attrOf(videos[0], "controls")
		assert.True(t, controls)
		src, _ := attrOf(videos[0], "src")
		assert.Equal(t, "/bracket/2.mp4", src)

		counter := findAll(doc, byClass("div", "lightbox-counter"))
		require.Len(t, counter, 1)
		assert.Equal(t, "2 / 3", textOf(counter[0]))
	})

	t.Run("closed renders nothing", func(t *testing.T) {
		assert.Empty(t, renderString(t, NewLightbox("/projects/bracket", items, 9).Component()))
	})
}

func TestNotFoundPage(t *testing.T) {
	doc := renderDoc(t, NotFoundPage(testPage("/projects/missing")))

	main := findAll(doc, byClass("main", "not-found"))
	require.Len(t, main, 1)
	text := textOf(main[0])
	assert.Contains(t, text, "404")
	assert.Contains(t, text, "Project Not Found")
	assert.Contains(t, text, "The project you're looking for doesn't exist.")

	links := findAll(main[0], byTag("a"))
	require.Len(t, links, 1)
	got, _ := attrOf(links[0], "href")
	assert.Equal(t, "/#work", got)
	assert.Equal(t, "View All Projects", textOf(links[0]))
}
