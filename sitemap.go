package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estevanpithan/folio/catalog"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapPages are the fixed pages listed before the articles.
var sitemapPages = []string{"about", "projects", "articles", "hire"}

func (a *App) renderSitemap(c echo.Context, articles []catalog.Article) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(sitemapPages)+len(articles))
	for _, p := range sitemapPages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p)})
	}
	for _, art := range articles {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "articles", art.Slug),
			LastMod: art.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
