package catalog

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []Project {
	var ps []Project
	for i := 0; i < 5; i++ {
		ps = append(ps, Project{ID: "pro-" + string(rune('a'+i)), Category: Professional, Title: "Work"})
	}
	for i := 0; i < 3; i++ {
		ps = append(ps, Project{ID: "per-" + string(rune('a'+i)), Category: Personal, Title: "Side"})
	}
	return ps
}

func sampleArticles() []Article {
	return []Article{
		{ID: "1", Slug: "go-concurrency", Title: "Go Concurrency", Date: "2024-01-02", Excerpt: "Channels and goroutines"},
		{ID: "2", Slug: "css-grid", Title: "CSS Grid", Date: "2024-02-03", Excerpt: "Layouts with GRID areas"},
		{ID: "3", Slug: "testing", Title: "Testing", Date: "2024-03-04", Excerpt: "Table driven tests in go"},
	}
}

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Articles())
	assert.NotEmpty(t, c.Experience())
	assert.NotEmpty(t, c.Milestones())
	for _, p := range c.AllProjects() {
		assert.True(t, p.Category.Valid(), "project %s has category %q", p.ID, p.Category)
	}
}

func TestNewRejectsDuplicateSlug(t *testing.T) {
	articles := sampleArticles()
	articles[2].Slug = articles[0].Slug

	_, err := New(articles, nil, nil, nil)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestNewRejectsInvalidSlug(t *testing.T) {
	for _, slug := range []string{"", "Has Spaces", "trailing-", "UPPER"} {
		articles := sampleArticles()
		articles[0].Slug = slug
		_, err := New(articles, nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidSlug, "slug %q", slug)
	}
}

func TestNewRejectsInvalidDate(t *testing.T) {
	articles := sampleArticles()
	articles[1].Date = "03/02/2024"

	_, err := New(articles, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	projects := sampleProjects()
	projects[0].Category = "hobby"

	_, err := New(nil, projects, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestArticleBySlug(t *testing.T) {
	c, err := New(sampleArticles(), nil, nil, nil)
	require.NoError(t, err)

	a, err := c.Article("css-grid")
	require.NoError(t, err)
	assert.Equal(t, "CSS Grid", a.Title)
	assert.Equal(t, "/articles/css-grid", a.Link())

	_, err = c.Article("does-not-exist")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSearchArticlesIsCaseInsensitive(t *testing.T) {
	c, err := New(sampleArticles(), nil, nil, nil)
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"go-concurrency", "css-grid", "testing"}},
		{"GO", []string{"go-concurrency", "testing"}},
		{"grid", []string{"css-grid"}},
		{"channels", []string{"go-concurrency"}},
		{"rust", nil},
	}
	for _, tt := range tests {
		var got []string
		for _, a := range c.SearchArticles(tt.query) {
			got = append(got, a.Slug)
		}
		assert.Equal(t, tt.want, got, "query %q", tt.query)
	}
}

func TestSearchArticlesMatchesOnlyTitleOrExcerpt(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	for _, q := range []string{"a", "CSS", "react", "budget", "zzz", "Go"} {
		got := c.SearchArticles(q)
		matched := make(map[string]bool, len(got))
		for _, a := range got {
			matched[a.Slug] = true
		}
		lq := strings.ToLower(q)
		for _, a := range c.Articles() {
			want := strings.Contains(strings.ToLower(a.Title), lq) || strings.Contains(strings.ToLower(a.Excerpt), lq)
			assert.Equal(t, want, matched[a.Slug], "query %q article %s", q, a.Slug)
		}
	}
}

func TestProjectsByCategory(t *testing.T) {
	c, err := New(nil, sampleProjects(), nil, nil)
	require.NoError(t, err)

	assert.Len(t, c.Projects(Personal), 3)
	assert.Len(t, c.Projects(Professional), 5)
	for _, p := range c.Projects(Personal) {
		assert.Equal(t, Personal, p.Category)
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("personal")
	assert.True(t, ok)
	assert.Equal(t, Personal, c)

	_, ok = ParseCategory("Personal")
	assert.False(t, ok)
}

func TestLoadReportsMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		ArticlesFile: {Data: []byte(`[]`)},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProjectsFile)
}

func TestDisplayDate(t *testing.T) {
	a := Article{Date: "2024-11-12"}
	assert.Equal(t, "November 12, 2024", a.DisplayDate())

	a.Date = "soon"
	assert.Equal(t, "soon", a.DisplayDate())
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World":       "hello-world",
		"  Go 1.24 is out ": "go-1-24-is-out",
		"already-a-slug":    "already-a-slug",
		"!!!":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}
