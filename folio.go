// Package folio is a personal portfolio site built with Go, Echo and
// templ-compatible views. It serves the about page, a project showcase,
// searchable articles and a contact form from bundled data, plus RSS,
// sitemap and image thumbnails.
//
// The markup lives in the views package and is reached through ViewFuncs,
// so a site can replace any page while folio keeps the handler logic,
// middleware and data.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/contact"
	"github.com/estevanpithan/folio/data"
	"github.com/estevanpithan/folio/i18n"
	"github.com/estevanpithan/folio/media"
	"github.com/estevanpithan/folio/views"
)

const shutdownTimeout = 10 * time.Second

// ViewFuncs holds the page components the handlers render.
type ViewFuncs struct {
	About           func(views.Chrome, views.AboutData) templ.Component
	Projects        func(views.Chrome, views.ProjectsData) templ.Component
	Articles        func(views.Chrome, views.ArticlesData) templ.Component
	ArticleResults  func(views.Chrome, views.ArticlesData) templ.Component
	ArticleDetail   func(views.Chrome, catalog.Article) templ.Component
	ArticleNotFound func(views.Chrome) templ.Component
	Hire            func(views.Chrome, views.HireData) templ.Component
	ContactForm     func(views.Chrome, views.HireData) templ.Component
	NotFound        func(views.Chrome) templ.Component
	ServerError     func(views.Chrome) templ.Component
}

// DefaultViews returns the built-in pages.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		About:           views.About,
		Projects:        views.Projects,
		Articles:        views.Articles,
		ArticleResults:  views.ArticleResults,
		ArticleDetail:   views.ArticleDetail,
		ArticleNotFound: views.ArticleNotFound,
		Hire:            views.Hire,
		ContactForm:     views.ContactForm,
		NotFound:        views.NotFound,
		ServerError:     views.ServerError,
	}
}

// App is the central folio application. It wires together the catalog,
// locale table, handlers, middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *catalog.Catalog
	Locales *i18n.Table
	Views   ViewFuncs
	Logger  *zap.Logger

	limiter      *SubmissionLimiter
	submitter    *contact.Submitter
	thumbs       *media.Thumbnailer
	customRoutes []func(*App)
	ready        bool
}

// WithCatalog replaces the bundled catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) { a.Catalog = c }
}

// WithLocales replaces the bundled locale table.
func WithLocales(t *i18n.Table) Option {
	return func(a *App) { a.Locales = t }
}

// WithLogger sets the logger (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.Logger = l }
}

// WithViews replaces the page components.
func WithViews(v ViewFuncs) Option {
	return func(a *App) { a.Views = v }
}

// WithSubmitter replaces the contact submitter, e.g. to shorten its delay.
func WithSubmitter(s *contact.Submitter) Option {
	return func(a *App) { a.submitter = s }
}

// New creates an App. Anything not supplied through opts is loaded from
// the bundled data.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.Catalog == nil {
		c, err := catalog.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("folio: load catalog: %w", err)
		}
		a.Catalog = c
	}
	if a.Locales == nil {
		t, err := i18n.Load(data.FS, a.Config.DefaultLocale)
		if err != nil {
			return nil, fmt.Errorf("folio: load locales: %w", err)
		}
		a.Locales = t
	}
	if !a.Locales.Has(a.Config.DefaultLocale) {
		return nil, fmt.Errorf("%w: default_locale %q", ErrInvalidConfig, a.Config.DefaultLocale)
	}
	if a.submitter == nil {
		a.submitter = contact.NewSubmitter(a.Config.ContactDelay)
	}
	a.limiter = NewSubmissionLimiter(a.Config.ContactLimit, a.Config.ContactWindow)
	a.thumbs = media.NewThumbnailer(os.DirFS(a.Config.StaticDir), 0)

	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	if a.Config.GeneratedSecret() {
		a.Logger.Warn("session_secret not set, using a random per-process secret; sessions will not survive restarts")
	}
	return a, nil
}

// Setup registers middleware and routes. It is idempotent and called by
// Run; tests call it before using a.Echo directly.
func (a *App) Setup() {
	if a.ready {
		return
	}
	a.ready = true
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.StaticFS("/assets", assets)
	e.Static("/public", a.Config.StaticDir)
	e.GET("/thumbs/:width/*", a.handleThumbnail)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", handleRootRedirect)
	e.GET("/about", a.handleAbout)
	e.GET("/projects", a.handleProjects)
	e.GET("/articles", a.handleArticles)
	e.GET("/articles/:slug", a.handleArticle)
	e.GET("/hire", a.handleHire)
	e.POST("/hire", a.handleContact)
	e.GET("/locale/:key", a.handleLocale)

	e.RouteNotFound("/*", a.handleNotFound)
}

// Run serves until ctx is canceled or SIGINT/SIGTERM arrives, then drains
// in-flight requests for up to 10 seconds.
func (a *App) Run(ctx context.Context) error {
	a.Setup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("folio: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Echo.Shutdown(sctx); err != nil {
			return fmt.Errorf("folio: shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Close releases background resources. Call this when the app is shutting
// down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}
