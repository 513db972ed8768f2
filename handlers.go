package folio

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/contact"
	"github.com/estevanpithan/folio/i18n"
	"github.com/estevanpithan/folio/listing"
	"github.com/estevanpithan/folio/media"
	"github.com/estevanpithan/folio/views"
)

// locale picks the request's bundle: the session choice, then
// Accept-Language, then the default.
func (a *App) locale(c echo.Context) *i18n.Bundle {
	if key := sessionLocale(c); a.Locales.Has(key) {
		return a.Locales.Lookup(key)
	}
	return a.Locales.Match(c.Request().Header.Get("Accept-Language"))
}

func (a *App) chrome(c echo.Context, nav string) views.Chrome {
	return views.Chrome{
		Site:    a.Config.viewConfig(),
		Locale:  a.locale(c),
		Locales: a.Locales.Bundles(),
		Nav:     nav,
		Path:    c.Request().URL.RequestURI(),
		CSRF:    CsrfToken(c),
	}
}

func handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/about")
}

func (a *App) handleAbout(c echo.Context) error {
	ch := a.chrome(c, views.NavAbout)
	ch.Meta = views.PageMeta{
		Title:  ch.T("nav.about"),
		URL:    BuildURL(a.Config.URL, "about"),
		Image:  absoluteURL(a.Config.URL, a.Config.ProfilePhoto),
		JSONLD: PersonJsonLD(a.Config),
	}
	return a.Render(c, a.Views.About(ch, views.AboutData{
		Milestones: a.Catalog.Milestones(),
		Experience: a.Catalog.Experience(),
	}))
}

func (a *App) handleProjects(c echo.Context) error {
	category, ok := catalog.ParseCategory(c.QueryParam("category"))
	if !ok {
		category = catalog.Professional
	}
	ch := a.chrome(c, views.NavProjects)
	ch.Meta = views.PageMeta{
		Title:       ch.T("projects.title"),
		Description: ch.T("projects.description"),
		URL:         BuildURL(a.Config.URL, "projects"),
	}
	return a.Render(c, a.Views.Projects(ch, views.ProjectsData{
		Category:   category,
		Categories: catalog.Categories,
		Projects:   a.Catalog.Projects(category),
	}))
}

func (a *App) handleArticles(c echo.Context) error {
	q := c.QueryParam("q")
	state := listing.State{
		Query: q,
		Page:  listing.ParsePage(c.QueryParam("page")),
		View:  listing.ParseViewMode(c.QueryParam("view")),
	}
	// The search form sends the query it was rendered with; a new query
	// starts again at page 1.
	if c.QueryParams().Has("prev") {
		state.Query = c.QueryParam("prev")
		state.SetQuery(q)
	}

	results := a.Catalog.SearchArticles(state.Query)
	state.SetPage(state.Page, listing.PageCount(len(results), listing.PageSize))
	data := views.ArticlesData{
		State: state,
		Page:  listing.Paginate(results, state.Page, listing.PageSize),
	}

	ch := a.chrome(c, views.NavArticles)
	if c.QueryParam("partial") == "results" {
		return a.Render(c, a.Views.ArticleResults(ch, data))
	}
	ch.Meta = views.PageMeta{
		Title:       ch.T("articles.title"),
		Description: ch.T("articles.description"),
		URL:         BuildURL(a.Config.URL, "articles"),
	}
	return a.Render(c, a.Views.Articles(ch, data))
}

func (a *App) handleArticle(c echo.Context) error {
	ch := a.chrome(c, views.NavArticles)
	article, err := a.Catalog.Article(c.Param("slug"))
	if errors.Is(err, catalog.ErrNotFound) {
		ch.Meta = views.PageMeta{Title: ch.T("article.not_found")}
		return a.RenderStatus(c, http.StatusNotFound, a.Views.ArticleNotFound(ch))
	}
	if err != nil {
		return err
	}
	ch.Meta = views.PageMeta{
		Title:       article.Title,
		Description: article.Excerpt,
		URL:         BuildURL(a.Config.URL, "articles", article.Slug),
		OGType:      "article",
		Image:       absoluteURL(a.Config.URL, article.ImageURL),
		JSONLD:      ArticleJsonLD(article, a.Config),
	}
	return a.Render(c, a.Views.ArticleDetail(ch, article))
}

func (a *App) hireChrome(c echo.Context) views.Chrome {
	ch := a.chrome(c, views.NavHire)
	ch.Meta = views.PageMeta{
		Title:       ch.T("hire.title"),
		Description: ch.T("hire.description"),
		URL:         BuildURL(a.Config.URL, "hire"),
	}
	return ch
}

func (a *App) handleHire(c echo.Context) error {
	var data views.HireData
	if popFlash(c, flashSent) {
		data.Form.Notice = &contact.Notice{SentAt: time.Now()}
	}
	return a.Render(c, a.Views.Hire(a.hireChrome(c), data))
}

// renderContact answers a contact submission: the form alone for enhanced
// requests, the whole page otherwise.
func (a *App) renderContact(c echo.Context, code int, data views.HireData) error {
	ch := a.hireChrome(c)
	if isPartial(c) {
		return a.RenderStatus(c, code, a.Views.ContactForm(ch, data))
	}
	return a.RenderStatus(c, code, a.Views.Hire(ch, data))
}

func (a *App) handleContact(c echo.Context) error {
	form := contact.NewForm(contact.Fields{})
	for _, field := range []string{contact.FieldName, contact.FieldEmail, contact.FieldMessage} {
		form.Set(field, c.FormValue(field))
	}

	ip := c.RealIP()
	if !a.limiter.Allow(ip) {
		a.Logger.Warn("contact rate limit hit", zap.String("remote_ip", ip))
		return a.renderContact(c, http.StatusTooManyRequests, views.HireData{Form: form.Snapshot(), Limited: true})
	}

	notice, err := a.submitter.Submit(c.Request().Context(), form)
	switch {
	case errors.Is(err, contact.ErrIncomplete):
		return a.renderContact(c, http.StatusUnprocessableEntity, views.HireData{Form: form.Snapshot()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.Logger.Debug("contact submission abandoned", zap.String("remote_ip", ip))
		return nil
	case err != nil:
		return err
	}

	a.Logger.Info("contact message accepted",
		zap.String("receipt", notice.Receipt.String()),
		zap.String("remote_ip", ip),
	)
	if isPartial(c) {
		return a.renderContact(c, http.StatusOK, views.HireData{Form: form.Snapshot()})
	}
	if err := addFlash(c, flashSent); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/hire")
}

func (a *App) handleLocale(c echo.Context) error {
	b := a.Locales.Lookup(c.Param("key"))
	if err := setSessionLocale(c, b.Key); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, safeRedirect(c.QueryParam("next"), "/about"))
}

func (a *App) handleThumbnail(c echo.Context) error {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil {
		return echo.ErrNotFound
	}
	b, err := a.thumbs.Thumbnail(c.Param("*"), width)
	switch {
	case errors.Is(err, media.ErrUnsupportedWidth),
		errors.Is(err, media.ErrInvalidPath),
		errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, fs.ErrNotExist):
		return echo.ErrNotFound
	case errors.Is(err, media.ErrTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge)
	case err != nil:
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", b)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Catalog.Articles())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Catalog.Articles())
}

func (a *App) handleRobots(c echo.Context) error {
	custom := filepath.Join(a.Config.StaticDir, "robots.txt")
	if _, err := os.Stat(custom); err == nil {
		return c.File(custom)
	}
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+BuildURL(a.Config.URL, "sitemap.xml")+"\n")
}

func (a *App) handleNotFound(c echo.Context) error {
	return echo.ErrNotFound
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		ch := a.chrome(c, "")
		ch.Meta = views.PageMeta{Title: ch.T("notfound.title")}
		_ = a.RenderStatus(c, http.StatusNotFound, a.Views.NotFound(ch))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
		ch := a.chrome(c, "")
		ch.Meta = views.PageMeta{Title: ch.T("error.title")}
		_ = a.RenderStatus(c, code, a.Views.ServerError(ch))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
