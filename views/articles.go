package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/listing"
	"github.com/estevanpithan/folio/markdown"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const cardTags = 3

// Articles renders the searchable article list.
func Articles(ch Chrome, data ArticlesData) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch,
			h.Section(h.Class("section"),
				h.Div(h.Class("container"),
					sectionHeader(ch.T("articles.title"), ch.T("articles.description")),
					h.Div(h.Class("list-toolbar"),
						searchForm(ch, data.State),
						viewToggle(ch, data.State),
					),
					articleResults(ch, data),
				),
			),
		)
	})
}

// ArticleResults renders only the result block, for live search swaps.
func ArticleResults(ch Chrome, data ArticlesData) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return articleResults(ch, data)
	})
}

func searchForm(ch Chrome, s listing.State) g.Node {
	return g.El("form", h.Class("search"), h.Method("get"), h.Action("/articles"), g.Attr("role", "search"),
		h.Input(h.Type("search"), h.Name("q"), h.ID("article-search"), h.Value(s.Query),
			h.Placeholder(ch.T("articles.search")), g.Attr("aria-label", ch.T("articles.search")),
			g.Attr("autocomplete", "off"), g.Attr("data-live-search", "#article-results")),
		h.Input(h.Type("hidden"), h.Name("prev"), h.Value(s.Query)),
		h.Input(h.Type("hidden"), h.Name("page"), h.Value(strconv.Itoa(s.Page))),
		g.If(s.View == listing.List, h.Input(h.Type("hidden"), h.Name("view"), h.Value(string(s.View)))),
		h.Button(h.Type("submit"), h.Class("button"), g.Text(ch.T("articles.search_button"))),
	)
}

func viewToggle(ch Chrome, s listing.State) g.Node {
	link := func(m listing.ViewMode, label, icon string) g.Node {
		active := s.View == m
		return h.A(h.Href(s.WithView(m).URL("/articles")),
			h.Class(classIf("view-toggle", active, "active")),
			g.Attr("aria-label", label), g.Attr("title", label),
			g.Attr("aria-pressed", strconv.FormatBool(active)),
			g.Text(icon),
		)
	}
	return h.Div(h.Class("view-toggles"),
		link(listing.Grid, ch.T("articles.grid_view"), "▦"),
		link(listing.List, ch.T("articles.list_view"), "☰"),
	)
}

func articleResults(ch Chrome, data ArticlesData) g.Node {
	list := data.State.View == listing.List
	return h.Div(h.ID("article-results"), g.Attr("data-page", strconv.Itoa(data.Page.Number)),
		g.If(data.Page.Total == 0, h.P(h.Class("empty muted"), g.Text(ch.T("articles.no_results")))),
		h.Div(h.Class(classIf("articles grid grid-3", list, "as-list")),
			g.Map(data.Page.Items, func(a catalog.Article) g.Node { return articleCard(ch, a, list) }),
		),
		g.If(data.Page.ShowControls(), pagination(ch, data)),
	)
}

func articleCard(ch Chrome, a catalog.Article, list bool) g.Node {
	tags := a.Tags
	if len(tags) > cardTags {
		tags = tags[:cardTags]
	}
	return h.Article(h.Class(classIf("card article-card", list, "article-row")),
		g.If(a.ImageURL != "",
			h.A(h.Href(a.Link()), h.Class("card-image-link"), g.Attr("tabindex", "-1"),
				h.Img(h.Class("card-image"), h.Src(ThumbURL(a.ImageURL, 640)), h.Alt(a.Title), g.Attr("loading", "lazy")),
			),
		),
		h.Div(h.Class("card-body"),
			h.P(h.Class("muted small"), timeEl(a.Date, a.DisplayDate())),
			h.H3(h.A(h.Href(a.Link()), g.Text(a.Title))),
			h.P(h.Class("muted"), g.Text(a.Excerpt)),
			h.Div(h.Class("tags"), badges(tags)),
			h.A(h.Href(a.Link()), h.Class("read-more"), g.Text(ch.T("articles.read_more")+" →")),
		),
	)
}

func pagination(ch Chrome, data ArticlesData) g.Node {
	p := data.Page
	s := data.State
	step := func(enabled bool, target int, label string) g.Node {
		if !enabled {
			return h.Span(h.Class("page-link disabled"), g.Attr("aria-disabled", "true"), g.Text(label))
		}
		return h.A(h.Class("page-link"), h.Href(s.WithPage(target).URL("/articles")), g.Text(label))
	}
	return h.Nav(h.Class("pagination"), g.Attr("aria-label", "pagination"),
		step(p.HasPrev(), p.Prev(), "← "+ch.T("articles.previous")),
		g.Map(p.Numbers(), func(n int) g.Node {
			current := n == p.Number
			return h.A(h.Href(s.WithPage(n).URL("/articles")),
				h.Class(classIf("page-link", current, "active")),
				g.If(current, g.Attr("aria-current", "page")),
				g.Text(strconv.Itoa(n)),
			)
		}),
		step(p.HasNext(), p.Next(), ch.T("articles.next")+" →"),
	)
}

// ArticleDetail renders a single article.
func ArticleDetail(ch Chrome, a catalog.Article) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch,
			h.Article(h.Class("section article"),
				h.Div(h.Class("container narrow"),
					backLink(ch),
					h.Header(h.Class("article-header"),
						h.P(h.Class("muted small"), timeEl(a.Date, a.DisplayDate())),
						h.H1(g.Text(a.Title)),
						h.P(h.Class("lead muted"), g.Text(a.Excerpt)),
						h.Div(h.Class("tags"), badges(a.Tags)),
					),
					g.If(a.ImageURL != "",
						h.Img(h.Class("article-image"), h.Src(ThumbURL(a.ImageURL, 960)), h.Alt(a.Title)),
					),
					h.Div(h.Class("article-body"), embed(ctx, markdown.Markdown(a.Content))),
					comments(ch),
				),
			),
		)
	})
}

func backLink(ch Chrome) g.Node {
	return h.A(h.Href("/articles"), h.Class("back-link"), g.Text("← "+ch.T("article.back")))
}

func comments(ch Chrome) g.Node {
	return h.Section(h.Class("card comments"),
		h.H2(g.Text(ch.T("article.comments.title"))),
		h.H3(g.Text(ch.T("article.comments.soon"))),
		h.P(h.Class("muted"),
			g.Text(ch.T("article.comments.body")+" "),
			g.If(ch.Site.TwitterURL != "", externalLink(ch.Site.TwitterURL, g.Text(ch.T("article.comments.twitter")))),
			g.If(ch.Site.TwitterURL == "", g.Text(ch.T("article.comments.twitter"))),
			g.Text(" "+ch.T("article.comments.after")),
		),
	)
}

// ArticleNotFound is shown for an unknown slug.
func ArticleNotFound(ch Chrome) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch,
			h.Section(h.Class("section"),
				h.Div(h.Class("container narrow center"),
					h.H1(g.Text(ch.T("article.not_found"))),
					backLink(ch),
				),
			),
		)
	})
}
