package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Projects renders the project showcase with one tab per category.
func Projects(ch Chrome, data ProjectsData) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch,
			h.Section(h.Class("section"),
				h.Div(h.Class("container"),
					sectionHeader(ch.T("projects.title"), ch.T("projects.description")),
					categoryTabs(ch, data),
					g.If(len(data.Projects) == 0, h.P(h.Class("empty muted"), g.Text(ch.T("projects.empty")))),
					h.Div(h.Class("grid grid-3"), h.ID("projects"),
						g.Map(data.Projects, func(p catalog.Project) g.Node { return projectCard(ch, p) }),
					),
				),
			),
		)
	})
}

func categoryTabs(ch Chrome, data ProjectsData) g.Node {
	return h.Nav(h.Class("tabs"), g.Attr("role", "tablist"),
		g.Map(data.Categories, func(c catalog.Category) g.Node {
			active := c == data.Category
			return h.A(h.Href("/projects?category="+string(c)),
				h.Class(classIf("tab", active, "active")),
				g.Attr("role", "tab"),
				g.Attr("aria-selected", strconv.FormatBool(active)),
				g.Text(ch.T("projects.tab."+string(c))),
			)
		}),
	)
}

func projectCard(ch Chrome, p catalog.Project) g.Node {
	meta := p.Company
	if p.Year > 0 {
		if meta != "" {
			meta += " • "
		}
		meta += strconv.Itoa(p.Year)
	}
	return h.Article(h.Class("card project-card"),
		g.If(p.ImageURL != "",
			h.Img(h.Class("card-image"), h.Src(ThumbURL(p.ImageURL, 640)), h.Alt(p.Title), g.Attr("loading", "lazy")),
		),
		h.Div(h.Class("card-body"),
			h.H3(g.Text(p.Title)),
			g.If(meta != "", h.P(h.Class("muted small"), g.Text(meta))),
			h.P(h.Class("muted"), g.Text(p.Summary)),
			h.Div(h.Class("tags"), badges(p.Tags)),
			g.If(p.LinkURL != "",
				externalLink(p.LinkURL, h.Class("card-link"),
					g.Attr("aria-label", ch.T("projects.view", i18n.Args{"title": p.Title})),
					g.Text("↗"),
				),
			),
		),
	)
}
