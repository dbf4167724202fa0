// Package sitemap lists the site's public pages for search engines. Pages
// are discovered by walking the router; parameterised routes are listed
// only when an expander can enumerate their concrete paths.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// DefaultIgnoredDirs are path segments whose routes are never listed
var DefaultIgnoredDirs = []string{"api", "static", "media", "components"}

// Expander returns the concrete paths for a parameterised route pattern
type Expander func() []string

// Options configures a Builder
type Options struct {
	BaseURL        string
	IgnoredDirs    []string
	IgnoreExact    []string
	IgnorePrefixes []string
	Expanders      map[string]Expander
	Now            func() time.Time
}

// Entry is one sitemap URL
type Entry struct {
	Loc          string
	LastModified time.Time
}

// Builder produces sitemap entries from a route tree
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder. BaseURL must already be normalized.
func NewBuilder(opts Options) *Builder {
	if opts.IgnoredDirs == nil {
		opts.IgnoredDirs = DefaultIgnoredDirs
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{opts: opts}
}

// Routes returns the GET route patterns registered on r
func Routes(r chi.Routes) ([]string, error) {
	var routes []string
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method == http.MethodGet {
			routes = append(routes, route)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}
	return routes, nil
}

// Build lists every public page reachable through r
func (b *Builder) Build(r chi.Routes) ([]Entry, error) {
	routes, err := Routes(r)
	if err != nil {
		return nil, err
	}
	return b.Entries(routes), nil
}

// Entries converts route patterns into sitemap entries sharing one
// timestamp
func (b *Builder) Entries(routes []string) []Entry {
	paths := b.Paths(routes)
	now := b.opts.Now().UTC()

	entries := make([]Entry, len(paths))
	for i, p := range paths {
		entries[i] = Entry{Loc: b.opts.BaseURL + p, LastModified: now}
	}
	return entries
}

// Paths filters and expands route patterns. Static paths come first in
// lexical order, then expanded paths in the order their expander returned
// them.
func (b *Builder) Paths(routes []string) []string {
	seen := make(map[string]struct{})
	var static, expanded []string

	add := func(list *[]string, p string) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		*list = append(*list, p)
	}

	// Iterate patterns in a stable order so expansion is deterministic.
	patterns := append([]string(nil), routes...)
	sort.Strings(patterns)

	for _, route := range patterns {
		route = normalize(route)
		if !b.listable(route) {
			continue
		}

		if isDynamic(route) {
			expand, ok := b.opts.Expanders[route]
			if !ok {
				continue
			}
			for _, p := range expand() {
				p = normalize(p)
				if b.listable(p) && !isDynamic(p) {
					add(&expanded, p)
				}
			}
			continue
		}

		add(&static, route)
	}

	sort.Strings(static)
	return append(static, expanded...)
}

func (b *Builder) listable(route string) bool {
	if strings.Contains(route, "*") {
		return false
	}

	segments := strings.Split(strings.Trim(route, "/"), "/")
	for _, seg := range segments {
		if strings.HasPrefix(seg, "_") {
			return false
		}
		for _, dir := range b.opts.IgnoredDirs {
			if seg == dir {
				return false
			}
		}
	}

	if last := segments[len(segments)-1]; strings.Contains(last, ".") {
		return false
	}

	return !b.ignored(route)
}

func (b *Builder) ignored(route string) bool {
	for _, exact := range b.opts.IgnoreExact {
		if route == exact {
			return true
		}
	}
	for _, prefix := range b.opts.IgnorePrefixes {
		trimmed := strings.TrimSuffix(prefix, "/")
		if route == trimmed || strings.HasPrefix(route, trimmed+"/") {
			return true
		}
	}
	return false
}

func isDynamic(route string) bool {
	return strings.Contains(route, "{")
}

func normalize(route string) string {
	if route == "" || route == "/" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return strings.TrimRight(route, "/")
}

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// WriteXML writes entries as a sitemaps.org urlset document
func WriteXML(w io.Writer, entries []Entry) error {
	set := urlset{Xmlns: xmlns, URLs: make([]urlXML, len(entries))}
	for i, e := range entries {
		set.URLs[i] = urlXML{Loc: e.Loc, LastMod: e.LastModified.Format(time.RFC3339)}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Robots returns a robots.txt that allows everything and points at the
// sitemap
func Robots(baseURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + baseURL + "/sitemap.xml\n"
}
