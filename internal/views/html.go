package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// attr is one HTML attribute. Boolean attributes have no value.
type attr struct {
	key     string
	val     string
	boolean bool
}

func a(key, val string) attr { return attr{key: key, val: val} }

func flag(key string) attr { return attr{key: key, boolean: true} }

func class(val string) attr { return a("class", val) }

func href(url string) attr { return a("href", url) }

// htmlWriter writes markup and keeps the first write error
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) int(n int) {
	h.raw(strconv.Itoa(n))
}

func (h *htmlWriter) open(tag string, attrs ...attr) {
	h.raw("<" + tag)
	h.attrs(attrs)
	h.raw(">")
}

// void writes an element without a closing tag
func (h *htmlWriter) void(tag string, attrs ...attr) {
	h.open(tag, attrs...)
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes a text-only element
func (h *htmlWriter) element(tag, text string, attrs ...attr) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) attrs(attrs []attr) {
	for _, at := range attrs {
		if at.key == "" {
			continue
		}
		h.raw(" " + at.key)
		if !at.boolean {
			h.raw(`="` + templ.EscapeString(at.val) + `"`)
		}
	}
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// render adapts a writer callback into a templ.Component. It stands in for
// the code templ generate would emit into _templ.go files, so components
// stay plain templ.Component values for templ.Handler and Render.
func render(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		fn(h)
		return h.err
	})
}
