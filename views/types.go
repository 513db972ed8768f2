package views

import (
	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/contact"
	"github.com/estevanpithan/folio/i18n"
	"github.com/estevanpithan/folio/listing"
)

// SiteConfig holds the owner and site settings the pages render. Every
// handler passes it through Chrome so nothing is hardcoded.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
	Initials    string
	Tagline     string
	Bio         []string
	Skills      []string

	Email        string
	Phone        string
	LinkedInURL  string
	GitHubURL    string
	TwitterURL   string
	ProfilePhoto string
	HeroImage    string
	CVURL        string
	HourlyRate   float64
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
}

// Chrome is everything the layout needs besides the page body.
type Chrome struct {
	Site    SiteConfig
	Meta    PageMeta
	Locale  *i18n.Bundle
	Locales []*i18n.Bundle
	Nav     string // active navigation key
	Path    string // current path and query, the locale switch returns here
	CSRF    string
}

// T translates key in the request's locale.
func (c Chrome) T(key string, args ...i18n.Args) string {
	return c.Locale.T(key, args...)
}

// Navigation keys.
const (
	NavAbout    = "about"
	NavProjects = "projects"
	NavArticles = "articles"
	NavHire     = "hire"
)

type navItem struct {
	Key  string
	Href string
}

var navigation = []navItem{
	{NavAbout, "/about"},
	{NavProjects, "/projects"},
	{NavArticles, "/articles"},
	{NavHire, "/hire"},
}

// AboutData is the About page model.
type AboutData struct {
	Milestones []catalog.Milestone
	Experience []catalog.Experience
}

// ProjectsData is the Projects page model.
type ProjectsData struct {
	Category   catalog.Category
	Categories []catalog.Category
	Projects   []catalog.Project
}

// ArticlesData is the Articles page model.
type ArticlesData struct {
	State listing.State
	Page  listing.Page[catalog.Article]
}

// HireData is the Hire page model.
type HireData struct {
	Form    contact.View
	Limited bool
}
