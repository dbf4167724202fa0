package views

import (
	"math"
	"strconv"
	"strings"
)

// Frame is one keyframe of an entrance animation. A zero Scale means 1.
type Frame struct {
	Opacity float64
	X       float64
	Y       float64
	Scale   float64
}

// String encodes the frame as "opacity:0;y:50" for the site script
func (f Frame) String() string {
	parts := []string{"opacity:" + formatNumber(f.Opacity)}
	if f.X != 0 {
		parts = append(parts, "x:"+formatNumber(f.X))
	}
	if f.Y != 0 {
		parts = append(parts, "y:"+formatNumber(f.Y))
	}
	if f.Scale != 0 && f.Scale != 1 {
		parts = append(parts, "scale:"+formatNumber(f.Scale))
	}
	return strings.Join(parts, ";")
}

// Ease is a cubic-bezier timing function
type Ease [4]float64

// Timing curves used across the site
var (
	EaseSnappy = Ease{0.6, 0.05, 0.01, 0.9}
	EaseInOut  = Ease{0.42, 0, 0.58, 1}
)

// String returns the CSS cubic-bezier() form, or "ease" for the zero value
func (e Ease) String() string {
	if e == (Ease{}) {
		return "ease"
	}
	nums := make([]string, len(e))
	for i, v := range e {
		nums[i] = formatNumber(v)
	}
	return "cubic-bezier(" + strings.Join(nums, ",") + ")"
}

// Trigger says when an animation starts
type Trigger string

const (
	TriggerMount Trigger = "mount"
	TriggerView  Trigger = "view"
)

// Motion describes an entrance animation played by the site script
type Motion struct {
	From     Frame
	To       Frame
	Duration float64
	Delay    float64
	Ease     Ease
	Trigger  Trigger
	Once     bool
	Margin   string
}

// OnMount animates from `from` to full opacity as soon as the page loads
func OnMount(from Frame, duration, delay float64) Motion {
	return Motion{From: from, To: Frame{Opacity: 1}, Duration: duration, Delay: delay, Trigger: TriggerMount}
}

// InView animates once when the element scrolls into view
func InView(from Frame, duration, delay float64) Motion {
	return Motion{From: from, To: Frame{Opacity: 1}, Duration: duration, Delay: delay, Trigger: TriggerView, Once: true}
}

// WithEase returns m using ease
func (m Motion) WithEase(ease Ease) Motion {
	m.Ease = ease
	return m
}

// WithMargin returns m with a viewport margin such as "-100px"
func (m Motion) WithMargin(margin string) Motion {
	m.Margin = margin
	return m
}

// WithTarget returns m ending at to instead of full opacity
func (m Motion) WithTarget(to Frame) Motion {
	m.To = to
	return m
}

func (m Motion) attrs() []attr {
	trigger := m.Trigger
	if trigger == "" {
		trigger = TriggerMount
	}
	attrs := []attr{
		a("data-motion", string(trigger)),
		a("data-motion-from", m.From.String()),
		a("data-motion-to", m.To.String()),
		a("data-motion-duration", formatNumber(m.Duration)),
		a("data-motion-ease", m.Ease.String()),
	}
	if m.Delay != 0 {
		attrs = append(attrs, a("data-motion-delay", formatNumber(m.Delay)))
	}
	if m.Once {
		attrs = append(attrs, flag("data-motion-once"))
	}
	if m.Margin != "" {
		attrs = append(attrs, a("data-motion-margin", m.Margin))
	}
	return attrs
}

// Stagger returns the delay of the i-th item in a staggered sequence
func Stagger(base, step float64, i int) float64 {
	return roundMillis(base + step*float64(i))
}

// Parallax links an element's offset and opacity to scroll progress
// through its section
type Parallax struct {
	Y         string
	FadeUntil float64
}

var (
	HomeParallax    = Parallax{Y: "50%", FadeUntil: 0.5}
	ProjectParallax = Parallax{Y: "30%", FadeUntil: 0.5}
)

// root marks the section whose scroll progress drives the effect
func (p Parallax) root() attr {
	return flag("data-parallax-root")
}

func (p Parallax) offset() attr {
	return a("data-parallax-y", p.Y)
}

func (p Parallax) fade() attr {
	return a("data-parallax-fade", formatNumber(p.FadeUntil))
}

func roundMillis(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(roundMillis(v), 'f', -1, 64)
}

// with merges attribute lists
func with(lists ...[]attr) []attr {
	var out []attr
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
