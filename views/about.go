package views

import (
	"context"

	"github.com/a-h/templ"
	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About renders the landing page: hero, bio, journey timeline and
// experience cards.
func About(ch Chrome, data AboutData) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch,
			hero(ch),
			bio(ch),
			journey(ch, data.Milestones),
			experience(ch, data.Experience),
		)
	})
}

func hero(ch Chrome) g.Node {
	style := ""
	if ch.Site.HeroImage != "" {
		style = "background-image: url('" + ThumbURL(ch.Site.HeroImage, 960) + "')"
	}
	return h.Section(h.Class("hero"), g.If(style != "", g.Attr("style", style)),
		h.Div(h.Class("hero-overlay")),
		h.Div(h.Class("container hero-content"),
			h.H1(g.Text(ch.T("about.greeting")+" "), h.Span(h.Class("accent"), g.Text(ch.Site.Author))),
			h.P(h.Class("lead"), g.Text(ch.Site.Tagline)),
			h.Div(h.Class("hero-actions"),
				h.A(h.Href("/hire"), h.Class("button"), g.Text("↗ "+ch.T("about.hire_me"))),
				g.If(ch.Site.CVURL != "",
					h.A(h.Href(ch.Site.CVURL), h.Class("button button-outline"), g.Attr("download"), g.Text("⤓ "+ch.T("about.download_cv"))),
				),
			),
		),
	)
}

func bio(ch Chrome) g.Node {
	return h.Section(h.Class("section"),
		h.Div(h.Class("container two-col"),
			h.Div(
				h.H2(g.Text(ch.T("about.title"))),
				h.Div(h.Class("bio muted"),
					g.Map(ch.Site.Bio, func(p string) g.Node { return h.P(g.Text(p)) }),
				),
				h.Div(h.Class("skills"), badges(ch.Site.Skills)),
			),
			h.Div(h.Class("portrait"), avatar(ch.Site, 320, "avatar-xl")),
		),
	)
}

func journey(ch Chrome, milestones []catalog.Milestone) g.Node {
	return h.Section(h.Class("section section-muted"),
		h.Div(h.Class("container narrow"),
			sectionHeader(ch.T("about.journey.title"), ch.T("about.journey.description")),
			h.Ol(h.Class("timeline"),
				g.Map(milestones, func(m catalog.Milestone) g.Node {
					return h.Li(h.Class("card timeline-item"),
						h.Span(h.Class("timeline-icon"), g.Attr("aria-hidden", "true"), g.Text(milestoneIcons[m.Icon])),
						h.Div(
							h.H3(g.Text(m.Title)),
							h.P(h.Class("muted"), g.Text(m.Year+" • "+m.Detail)),
						),
					)
				}),
			),
		),
	)
}

func experience(ch Chrome, entries []catalog.Experience) g.Node {
	return h.Section(h.Class("section"),
		h.Div(h.Class("container"),
			sectionHeader(ch.T("about.experience.title"), ch.T("about.experience.description")),
			h.Div(h.Class("grid grid-2"),
				g.Map(entries, func(e catalog.Experience) g.Node {
					return h.Div(h.Class("card experience-card"),
						g.If(e.LogoURL != "",
							h.Img(h.Class("logo"), h.Src(ThumbURL(e.LogoURL, 320)),
								h.Alt(ch.T("about.logo_alt", i18n.Args{"company": e.Company})),
								g.Attr("width", "48"), g.Attr("height", "48"), g.Attr("loading", "lazy")),
						),
						h.Div(
							h.H3(g.Text(e.Company)),
							h.P(h.Class("accent"), g.Text(e.Role)),
							h.P(h.Class("muted small"), g.Text(e.Period)),
							h.P(h.Class("muted small"), g.Text(e.Summary)),
						),
					)
				}),
			),
		),
	)
}
