// Package listing is the view model behind the searchable, paginated
// article list: page arithmetic, clamping and the URL-carried list state.
package listing

import (
	"net/url"
	"strconv"
)

// PageSize is the number of items shown per page.
const PageSize = 6

// ViewMode selects the layout of a list.
type ViewMode string

const (
	Grid ViewMode = "grid"
	List ViewMode = "list"
)

// ParseViewMode maps a query value to a ViewMode, defaulting to Grid.
func ParseViewMode(s string) ViewMode {
	if ViewMode(s) == List {
		return List
	}
	return Grid
}

// PageCount returns ceil(n/size), or 0 for an empty list.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Clamp limits page to [1, pageCount]. With no pages it returns 1.
func Clamp(page, pageCount int) int {
	if pageCount < 1 {
		return 1
	}
	return min(max(page, 1), pageCount)
}

// ParsePage reads a 1-based page number; anything unusable means page 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Page is one page of a filtered list.
type Page[T any] struct {
	Items  []T
	Number int // current page, 1-based
	Count  int // number of pages
	Total  int // number of filtered items
}

// Paginate returns the page of items starting at (page-1)*size. The page
// number is clamped first.
func Paginate[T any](items []T, page, size int) Page[T] {
	count := PageCount(len(items), size)
	n := Clamp(page, count)
	p := Page[T]{Number: n, Count: count, Total: len(items)}
	start := (n - 1) * size
	if start >= len(items) {
		return p
	}
	end := min(start+size, len(items))
	p.Items = items[start:end]
	return p
}

// ShowControls reports whether pagination controls should render.
func (p Page[T]) ShowControls() bool { return p.Count > 1 }

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.Count }

// Prev is the clamped previous page number.
func (p Page[T]) Prev() int { return Clamp(p.Number-1, p.Count) }

// Next is the clamped next page number.
func (p Page[T]) Next() int { return Clamp(p.Number+1, p.Count) }

// Numbers lists every page number, 1 through Count.
func (p Page[T]) Numbers() []int {
	out := make([]int, p.Count)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// State is the list state a page carries in its URL.
type State struct {
	Query string
	Page  int
	View  ViewMode
}

// NewState returns the state of a freshly opened list.
func NewState() State {
	return State{Page: 1, View: Grid}
}

// SetQuery changes the search string. A different query starts over at
// page 1.
func (s *State) SetQuery(q string) {
	if q == s.Query {
		return
	}
	s.Query = q
	s.Page = 1
}

// SetPage moves to page p, clamped to [1, pageCount].
func (s *State) SetPage(p, pageCount int) {
	s.Page = Clamp(p, pageCount)
}

// Values encodes the state as query parameters, leaving defaults out.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.Page > 1 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	if s.View != "" && s.View != Grid {
		v.Set("view", string(s.View))
	}
	return v
}

// URL returns path with the encoded state appended.
func (s State) URL(path string) string {
	if q := s.Values().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

// WithPage returns a copy of s on page p.
func (s State) WithPage(p int) State {
	s.Page = p
	return s
}

// WithView returns a copy of s using view mode m.
func (s State) WithView(m ViewMode) State {
	s.View = m
	return s
}
