package folio

import (
	"encoding/json"
	"testing"

	"github.com/estevanpithan/folio/catalog"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://folio.example", nil, "https://folio.example"},
		{"https://folio.example", []string{"about"}, "https://folio.example/about"},
		{"https://folio.example/", []string{"articles", "css-grid"}, "https://folio.example/articles/css-grid"},
		{"https://folio.example/blog", []string{"sitemap.xml"}, "https://folio.example/blog/sitemap.xml"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %q) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		next     string
		expected string
	}{
		{"", "/about"},
		{"/hire", "/hire"},
		{"/articles?q=css&page=2", "/articles?q=css&page=2"},
		{"//evil.example", "/about"},
		{"/\\evil.example", "/about"},
		{"https://evil.example", "/about"},
		{"hire", "/about"},
	}
	for _, tt := range tests {
		if got := safeRedirect(tt.next, "/about"); got != tt.expected {
			t.Errorf("safeRedirect(%q) = %q, want %q", tt.next, got, tt.expected)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	if got := absoluteURL("https://folio.example/", "/public/me.jpg"); got != "https://folio.example/public/me.jpg" {
		t.Errorf("absoluteURL relative = %q", got)
	}
	if got := absoluteURL("https://folio.example", "https://cdn.example/a.jpg"); got != "https://cdn.example/a.jpg" {
		t.Errorf("absoluteURL absolute = %q", got)
	}
	if got := absoluteURL("https://folio.example", ""); got != "" {
		t.Errorf("absoluteURL empty = %q", got)
	}
}

func TestPersonJsonLD(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "https://folio.example"
	cfg.ProfilePhoto = "/public/me.jpg"

	var data map[string]any
	if err := json.Unmarshal([]byte(PersonJsonLD(cfg)), &data); err != nil {
		t.Fatalf("PersonJsonLD is not JSON: %v", err)
	}
	if data["@type"] != "Person" || data["name"] != cfg.Author {
		t.Errorf("unexpected person: %v", data)
	}
	if data["image"] != "https://folio.example/public/me.jpg" {
		t.Errorf("image = %v", data["image"])
	}
	if sameAs, _ := data["sameAs"].([]any); len(sameAs) != 3 {
		t.Errorf("sameAs = %v, want 3 profiles", data["sameAs"])
	}
}

func TestArticleJsonLD(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "https://folio.example"
	a := catalog.Article{
		Slug:    "css-grid",
		Title:   "Grid </script>",
		Date:    "2024-05-01",
		Excerpt: "Layouts",
		Tags:    []string{"CSS", "Layout"},
	}

	out := ArticleJsonLD(a, cfg)
	var data map[string]any
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("ArticleJsonLD is not JSON: %v", err)
	}
	if data["url"] != "https://folio.example/articles/css-grid" {
		t.Errorf("url = %v", data["url"])
	}
	if data["keywords"] != "CSS, Layout" {
		t.Errorf("keywords = %v", data["keywords"])
	}
	if data["headline"] != "Grid </script>" {
		t.Errorf("headline = %v", data["headline"])
	}
	for i := 0; i+len("</script") <= len(out); i++ {
		if out[i:i+len("</script")] == "</script" {
			t.Fatalf("JSON-LD must not contain a closing script tag: %s", out)
		}
	}
}
