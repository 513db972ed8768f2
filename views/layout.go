package views

import (
	"github.com/estevanpithan/folio/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Layout wraps body in the document shell: head metadata, header
// navigation with the locale switch, and the footer.
func Layout(ch Chrome, body ...g.Node) g.Node {
	title := ch.Site.Name
	if ch.Meta.Title != "" && ch.Meta.Title != ch.Site.Name {
		title = ch.Meta.Title + " | " + ch.Site.Name
	}
	description := ch.Meta.Description
	if description == "" {
		description = ch.Site.Description
	}
	ogType := ch.Meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	return h.Doctype(
		h.HTML(h.Lang(ch.Locale.Tag.String()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				h.Meta(h.Name("description"), h.Content(description)),
				h.Meta(h.Name("csrf-token"), h.Content(ch.CSRF)),
				g.If(ch.Meta.URL != "", h.Link(h.Rel("canonical"), h.Href(ch.Meta.URL))),
				h.Meta(g.Attr("property", "og:title"), h.Content(title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(description)),
				h.Meta(g.Attr("property", "og:type"), h.Content(ogType)),
				g.If(ch.Meta.URL != "", h.Meta(g.Attr("property", "og:url"), h.Content(ch.Meta.URL))),
				g.If(ch.Meta.Image != "", h.Meta(g.Attr("property", "og:image"), h.Content(ch.Meta.Image))),
				h.Link(h.Rel("alternate"), h.Type("application/rss+xml"), g.Attr("title", ch.Site.Name), h.Href("/feed.xml")),
				h.Link(h.Rel("stylesheet"), h.Href("/assets/folio.css")),
				h.Script(h.Src("/assets/folio.js"), g.Attr("defer")),
				g.If(ch.Meta.JSONLD != "", h.Script(h.Type("application/ld+json"), g.Raw(ch.Meta.JSONLD))),
			),
			h.Body(
				header(ch),
				h.Main(h.ID("main"), g.Group(body)),
				footer(ch),
				h.Div(h.ID("toasts"), h.Class("toasts"), g.Attr("aria-live", "polite")),
			),
		),
	)
}

func brand(ch Chrome) g.Node {
	return h.A(h.Href("/about"), h.Class("brand"),
		h.Span(h.Class("brand-mark"), g.Text(ch.Site.Initials)),
		h.Span(h.Class("brand-name"), g.Text(ch.Site.Author)),
	)
}

func navLinks(ch Chrome) g.Node {
	return g.Map(navigation, func(item navItem) g.Node {
		active := item.Key == ch.Nav
		return h.A(h.Href(item.Href),
			h.Class(classIf("nav-link", active, "active")),
			g.If(active, g.Attr("aria-current", "page")),
			g.Text(ch.T("nav."+item.Key)),
		)
	})
}

func localeSwitch(ch Chrome) g.Node {
	return h.Div(h.Class("locale-switch"), g.Attr("aria-label", ch.T("locale.switch")),
		g.Map(ch.Locales, func(b *i18n.Bundle) g.Node {
			current := b.Key == ch.Locale.Key
			return h.A(h.Href(LocaleURL(b.Key, ch.Path)),
				h.Class(classIf("locale-link", current, "active")),
				h.Lang(b.Tag.String()),
				g.Attr("hreflang", b.Tag.String()),
				g.Attr("title", b.Tag.String()),
				g.If(current, g.Attr("aria-current", "true")),
				g.Text(flags[b.IconName]),
				h.Span(h.Class("sr-only"), g.Text(b.Tag.String())),
			)
		}),
	)
}

func header(ch Chrome) g.Node {
	return h.Header(h.Class("site-header"),
		h.Div(h.Class("container header-bar"),
			brand(ch),
			h.Nav(h.ID("site-nav"), h.Class("site-nav"), navLinks(ch)),
			h.Div(h.Class("header-tools"),
				localeSwitch(ch),
				h.Button(h.Type("button"), h.Class("nav-toggle"),
					g.Attr("aria-controls", "site-nav"), g.Attr("aria-expanded", "false"),
					h.Span(h.Class("nav-toggle-icon"), g.Text("☰")),
					h.Span(h.Class("sr-only"), g.Text(ch.T("nav.toggle"))),
				),
			),
		),
	)
}

type socialLink struct {
	Name string
	Href string
}

func socialLinks(site SiteConfig) []socialLink {
	var links []socialLink
	if site.LinkedInURL != "" {
		links = append(links, socialLink{"LinkedIn", site.LinkedInURL})
	}
	if site.GitHubURL != "" {
		links = append(links, socialLink{"GitHub", site.GitHubURL})
	}
	if site.TwitterURL != "" {
		links = append(links, socialLink{"Twitter", site.TwitterURL})
	}
	if site.Email != "" {
		links = append(links, socialLink{"Email", "mailto:" + site.Email})
	}
	return links
}

func footer(ch Chrome) g.Node {
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container footer-bar"),
			h.P(h.Class("muted"), g.Text(ch.T("footer.built_by", i18n.Args{"name": ch.Site.Author}))),
			h.Ul(h.Class("social-links"),
				g.Map(socialLinks(ch.Site), func(l socialLink) g.Node {
					return h.Li(externalLink(l.Href, g.Attr("aria-label", l.Name), g.Text(l.Name)))
				}),
			),
		),
	)
}
