// Package i18n holds the locale table: translation bundles keyed by locale,
// fallback rules, {{name}} interpolation and currency formatting.
package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/estevanpithan/folio/data"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Locale keys.
const (
	EnUS = "enUS"
	PtBR = "ptBR"

	// DefaultKey is the fallback locale.
	DefaultKey = EnUS
)

// ErrUnknownLocale is returned when a table is built around a default key
// that has no bundle.
var ErrUnknownLocale = errors.New("unknown locale")

// Source describes where a bundle's translations live.
type Source struct {
	Key  string
	Tag  string
	Icon string
	File string
}

// Sources lists the bundled locales in display order.
var Sources = []Source{
	{Key: EnUS, Tag: "en-US", Icon: "FlagUSA", File: "locales/en-US.yaml"},
	{Key: PtBR, Tag: "pt-BR", Icon: "FlagBrazil", File: "locales/pt-BR.yaml"},
}

// Bundle is one locale: its tag, icon identifier and flat translation map.
type Bundle struct {
	Key         string
	Tag         language.Tag
	IconName    string
	Translation map[string]string

	fallback *Bundle
}

// Args are interpolation values keyed by placeholder name.
type Args map[string]any

// T returns the translation for key. A missing key falls back to the
// default bundle and then to the key itself.
func (b *Bundle) T(key string, args ...Args) string {
	s, ok := b.Translation[key]
	if !ok && b.fallback != nil {
		s, ok = b.fallback.Translation[key]
	}
	if !ok {
		s = key
	}
	if len(args) == 0 {
		return s
	}
	return b.Interpolate(s, args[0])
}

var rePlaceholder = regexp.MustCompile(`\{\{\s*(\w+)\s*(?:,\s*(\w+)\s*)?\}\}`)

// Interpolate replaces {{name}} and {{name, currency}} placeholders in s.
// Unknown names are left untouched.
func (b *Bundle) Interpolate(s string, args Args) string {
	return rePlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		sub := rePlaceholder.FindStringSubmatch(m)
		v, ok := args[sub[1]]
		if !ok {
			return m
		}
		if sub[2] == "currency" {
			if amount, ok := toFloat(v); ok {
				return FormatCurrency(b.Tag, amount)
			}
		}
		return fmt.Sprint(v)
	})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Table maps locale keys to bundles. It is built once and only read after.
type Table struct {
	bundles map[string]*Bundle
	order   []*Bundle
	def     *Bundle
	matcher language.Matcher
}

// NewTable builds a table. defaultKey must name one of the bundles.
func NewTable(defaultKey string, bundles ...*Bundle) (*Table, error) {
	t := &Table{bundles: make(map[string]*Bundle, len(bundles))}
	tags := make([]language.Tag, 0, len(bundles))
	for _, b := range bundles {
		t.bundles[b.Key] = b
		t.order = append(t.order, b)
		tags = append(tags, b.Tag)
	}
	def, ok := t.bundles[defaultKey]
	if !ok {
		return nil, fmt.Errorf("default %q: %w", defaultKey, ErrUnknownLocale)
	}
	t.def = def
	for _, b := range bundles {
		if b != def {
			b.fallback = def
		}
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// Load reads every Source from fsys.
func Load(fsys fs.FS, defaultKey string) (*Table, error) {
	bundles := make([]*Bundle, 0, len(Sources))
	for _, src := range Sources {
		b, err := readBundle(fsys, src)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return NewTable(defaultKey, bundles...)
}

// LoadDefault loads the embedded locale files with enUS as the default.
func LoadDefault() (*Table, error) {
	return Load(data.FS, DefaultKey)
}

func readBundle(fsys fs.FS, src Source) (*Bundle, error) {
	tag, err := language.Parse(src.Tag)
	if err != nil {
		return nil, fmt.Errorf("locale %s: parse tag: %w", src.Key, err)
	}
	raw, err := fs.ReadFile(fsys, src.File)
	if err != nil {
		return nil, fmt.Errorf("locale %s: read %s: %w", src.Key, path.Base(src.File), err)
	}
	tr := map[string]string{}
	if err := yaml.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("locale %s: decode: %w", src.Key, err)
	}
	return &Bundle{Key: src.Key, Tag: tag, IconName: src.Icon, Translation: tr}, nil
}

// Lookup returns the bundle for key, or the default bundle.
func (t *Table) Lookup(key string) *Bundle {
	if b, ok := t.bundles[key]; ok {
		return b
	}
	return t.def
}

// Has reports whether key names a bundle.
func (t *Table) Has(key string) bool {
	_, ok := t.bundles[key]
	return ok
}

// Default returns the fallback bundle.
func (t *Table) Default() *Bundle { return t.def }

// Bundles returns the bundles in display order.
func (t *Table) Bundles() []*Bundle {
	return append([]*Bundle(nil), t.order...)
}

// Match picks the bundle that best fits an Accept-Language header. No
// usable match means the default bundle.
func (t *Table) Match(acceptLanguage string) *Bundle {
	if strings.TrimSpace(acceptLanguage) == "" {
		return t.def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.def
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(t.order) {
		return t.def
	}
	return t.order[idx]
}

// MissingKeys lists, per locale key, the translation keys the default
// bundle has and that locale lacks. Complete tables return an empty map.
func (t *Table) MissingKeys() map[string][]string {
	out := map[string][]string{}
	for _, b := range t.order {
		if b == t.def {
			continue
		}
		for key := range t.def.Translation {
			if _, ok := b.Translation[key]; !ok {
				out[b.Key] = append(out[b.Key], key)
			}
		}
		slices.Sort(out[b.Key])
	}
	return out
}
