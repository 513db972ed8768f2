package catalog

import (
	"net/url"
	"time"
)

// DateLayout is the on-disk format of article dates.
const DateLayout = "2006-01-02"

// Category partitions the project collection. Only Professional and
// Personal exist.
type Category string

const (
	Professional Category = "professional"
	Personal     Category = "personal"
)

// Categories lists every category in tab order.
var Categories = []Category{Professional, Personal}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == Professional || c == Personal
}

// ParseCategory maps a query value to a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// Article is a published piece of writing. Content uses the small
// markdown-like syntax understood by the markdown package.
type Article struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Excerpt  string   `json:"excerpt"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
}

// Link is the site-relative URL of the article.
func (a Article) Link() string {
	return "/articles/" + url.PathEscape(a.Slug)
}

// Published parses Date.
func (a Article) Published() (time.Time, error) {
	return time.Parse(DateLayout, a.Date)
}

// DisplayDate formats Date as "January 2, 2006", or returns it unchanged
// when it does not parse.
func (a Article) DisplayDate() string {
	t, err := a.Published()
	if err != nil {
		return a.Date
	}
	return t.Format("January 2, 2006")
}

// Project is a showcase entry.
type Project struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	ImageURL string   `json:"imageUrl"`
	LinkURL  string   `json:"linkUrl,omitempty"`
	Year     int      `json:"year,omitempty"`
	Company  string   `json:"company,omitempty"`
	Tags     []string `json:"tags"`
}

// Experience is one work history entry.
type Experience struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Period  string `json:"period"`
	Summary string `json:"summary"`
	LogoURL string `json:"logoUrl"`
}

// Milestone is one step of the journey timeline.
type Milestone struct {
	ID     string `json:"id"`
	Year   string `json:"year"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Icon   string `json:"icon"`
}
