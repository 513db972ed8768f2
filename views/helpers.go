package views

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// page adapts a gomponents tree to templ.Component, the render contract
// of the handlers.
func page(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// embed renders a templ.Component inside a gomponents tree.
func embed(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// ThumbURL routes local /public images through the thumbnail handler.
// Remote images are returned unchanged.
func ThumbURL(src string, width int) string {
	rest, ok := strings.CutPrefix(src, "/public/")
	if !ok || rest == "" {
		return src
	}
	return "/thumbs/" + strconv.Itoa(width) + "/" + rest
}

// LocaleURL is the switch link for a locale that returns to next.
func LocaleURL(key, next string) string {
	u := "/locale/" + url.PathEscape(key)
	if next != "" {
		u += "?next=" + url.QueryEscape(next)
	}
	return u
}

var flags = map[string]string{
	"FlagUSA":    "🇺🇸",
	"FlagBrazil": "🇧🇷",
}

var milestoneIcons = map[string]string{
	"calendar":      "📅",
	"map-pin":       "📍",
	"external-link": "↗",
}

// classIf appends class to base when on is true.
func classIf(base string, on bool, class string) string {
	if on {
		return base + " " + class
	}
	return base
}

func badge(text string) g.Node {
	return h.Span(h.Class("badge"), g.Text(text))
}

func badges(tags []string) g.Node {
	return g.Map(tags, badge)
}

func externalLink(href string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Group(children))
}

func sectionHeader(title, description string) g.Node {
	return h.Div(h.Class("section-header"),
		h.H2(g.Text(title)),
		g.If(description != "", h.P(h.Class("muted"), g.Text(description))),
	)
}

func avatar(site SiteConfig, size int, class string) g.Node {
	if site.ProfilePhoto == "" {
		return h.Span(h.Class("avatar avatar-fallback "+class), g.Text(site.Initials))
	}
	return h.Img(h.Class("avatar "+class), h.Src(ThumbURL(site.ProfilePhoto, size)), h.Alt(site.Author),
		g.Attr("width", strconv.Itoa(size)), g.Attr("height", strconv.Itoa(size)))
}

func timeEl(datetime, text string) g.Node {
	return g.El("time", g.Attr("datetime", datetime), g.Text(text))
}
