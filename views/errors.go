package views

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is the page for unmatched routes.
func NotFound(ch Chrome) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch, errorBody(ch.T("notfound.title"), ch.T("notfound.body"),
			h.A(h.Href("/about"), h.Class("button"), g.Text(ch.T("notfound.home")))))
	})
}

// ServerError is the page for unexpected failures.
func ServerError(ch Chrome) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch, errorBody(ch.T("error.title"), ch.T("error.body"), nil))
	})
}

func errorBody(title, body string, action g.Node) g.Node {
	return h.Section(h.Class("section"),
		h.Div(h.Class("container narrow center error-page"),
			h.H1(g.Text(title)),
			h.P(h.Class("muted"), g.Text(body)),
			action,
		),
	)
}
