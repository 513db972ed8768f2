package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/estevanpithan/folio/catalog"
)

// BuildURL joins a base URL with path segments. Routes have no trailing
// slash, so none is added.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// absoluteURL resolves a site-relative reference against base. Absolute
// URLs and empty strings are returned unchanged.
func absoluteURL(base, ref string) string {
	if ref == "" || !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return strings.TrimSuffix(base, "/") + ref
}

// safeRedirect accepts only local paths as redirect targets.
func safeRedirect(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}

// PersonJsonLD returns a JSON-LD string for the site owner.
func PersonJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     cfg.Author,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	if cfg.ProfilePhoto != "" {
		data["image"] = absoluteURL(cfg.URL, cfg.ProfilePhoto)
	}
	var sameAs []string
	for _, u := range []string{cfg.LinkedInURL, cfg.GitHubURL, cfg.TwitterURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if len(cfg.Skills) > 0 {
		data["knowsAbout"] = cfg.Skills
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleJsonLD returns a JSON-LD string for an Article schema.
func ArticleJsonLD(a catalog.Article, cfg SiteConfig) string {
	articleURL := BuildURL(cfg.URL, "articles", a.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      a.Title,
		"description":   a.Excerpt,
		"datePublished": a.Date,
		"url":           articleURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   articleURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if a.ImageURL != "" {
		data["image"] = absoluteURL(cfg.URL, a.ImageURL)
	}
	if len(a.Tags) > 0 {
		data["keywords"] = strings.Join(a.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
