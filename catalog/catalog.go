// Package catalog loads the site's static collections and answers the
// lookups the pages need: articles by slug, article search and projects by
// category. A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/estevanpithan/folio/data"
)

var (
	// ErrNotFound is returned when no article has the requested slug.
	ErrNotFound = errors.New("catalog: not found")
	// ErrDuplicateSlug is returned when two articles share a slug.
	ErrDuplicateSlug = errors.New("catalog: duplicate article slug")
	// ErrInvalidSlug is returned for empty or non URL-safe slugs.
	ErrInvalidSlug = errors.New("catalog: invalid article slug")
	// ErrInvalidDate is returned when an article date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("catalog: invalid article date")
	// ErrInvalidCategory is returned for a project outside the known categories.
	ErrInvalidCategory = errors.New("catalog: invalid project category")
)

// Bundled file names inside the data filesystem.
const (
	ArticlesFile   = "articles.json"
	ProjectsFile   = "projects.json"
	ExperienceFile = "experience.json"
	MilestonesFile = "milestones.json"
)

// Catalog holds every collection rendered by the site.
type Catalog struct {
	articles   []Article
	bySlug     map[string]int
	projects   []Project
	experience []Experience
	milestones []Milestone
}

// New validates the collections and builds a Catalog. Collection order is
// preserved everywhere it is exposed.
func New(articles []Article, projects []Project, experience []Experience, milestones []Milestone) (*Catalog, error) {
	c := &Catalog{
		articles:   slices.Clone(articles),
		bySlug:     make(map[string]int, len(articles)),
		projects:   slices.Clone(projects),
		experience: slices.Clone(experience),
		milestones: slices.Clone(milestones),
	}
	for i, a := range c.articles {
		if !IsSlug(a.Slug) {
			return nil, fmt.Errorf("%w: %q (article %s)", ErrInvalidSlug, a.Slug, a.ID)
		}
		if _, ok := c.bySlug[a.Slug]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, a.Slug)
		}
		if _, err := a.Published(); err != nil {
			return nil, fmt.Errorf("%w: %q (article %s)", ErrInvalidDate, a.Date, a.Slug)
		}
		c.bySlug[a.Slug] = i
	}
	for _, p := range c.projects {
		if !p.Category.Valid() {
			return nil, fmt.Errorf("%w: %q (project %s)", ErrInvalidCategory, p.Category, p.ID)
		}
	}
	return c, nil
}

// Load reads the four bundled collections from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		articles   []Article
		projects   []Project
		experience []Experience
		milestones []Milestone
	)
	if err := readJSON(fsys, ArticlesFile, &articles); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, ProjectsFile, &projects); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, ExperienceFile, &experience); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, MilestonesFile, &milestones); err != nil {
		return nil, err
	}
	return New(articles, projects, experience, milestones)
}

// LoadDefault loads the collections compiled into the binary.
func LoadDefault() (*Catalog, error) {
	return Load(data.FS)
}

func readJSON(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

// Articles returns every article in collection order.
func (c *Catalog) Articles() []Article {
	return slices.Clone(c.articles)
}

// Article returns the article with the given slug.
func (c *Catalog) Article(slug string) (Article, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Article{}, ErrNotFound
	}
	return c.articles[i], nil
}

// SearchArticles returns the articles whose title or excerpt contains query,
// ignoring case. An empty query matches every article.
func (c *Catalog) SearchArticles(query string) []Article {
	q := strings.ToLower(query)
	out := make([]Article, 0, len(c.articles))
	for _, a := range c.articles {
		if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Excerpt), q) {
			out = append(out, a)
		}
	}
	return out
}

// Projects returns the projects in the given category.
func (c *Catalog) Projects(category Category) []Project {
	var out []Project
	for _, p := range c.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// AllProjects returns every project in collection order.
func (c *Catalog) AllProjects() []Project {
	return slices.Clone(c.projects)
}

// Experience returns the work history entries.
func (c *Catalog) Experience() []Experience {
	return slices.Clone(c.experience)
}

// Milestones returns the journey timeline entries.
func (c *Catalog) Milestones() []Milestone {
	return slices.Clone(c.milestones)
}
