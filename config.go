package folio

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/estevanpithan/folio/i18n"
	"github.com/estevanpithan/folio/views"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_ADDR.
const EnvPrefix = "FOLIO"

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string   `mapstructure:"name"`        // Site name
	URL         string   `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string   `mapstructure:"description"` // Meta and feed description
	Author      string   `mapstructure:"author"`      // Owner's full name
	Initials    string   `mapstructure:"initials"`    // Avatar fallback and brand mark
	Tagline     string   `mapstructure:"tagline"`
	Bio         []string `mapstructure:"bio"` // About paragraphs
	Skills      []string `mapstructure:"skills"`

	Email        string  `mapstructure:"email"`
	Phone        string  `mapstructure:"phone"`
	LinkedInURL  string  `mapstructure:"linkedin_url"`
	GitHubURL    string  `mapstructure:"github_url"`
	TwitterURL   string  `mapstructure:"twitter_url"`
	ProfilePhoto string  `mapstructure:"profile_photo"` // /public/... path or absolute URL
	HeroImage    string  `mapstructure:"hero_image"`
	CVURL        string  `mapstructure:"cv_url"`
	HourlyRate   float64 `mapstructure:"hourly_rate"`

	Addr          string `mapstructure:"addr"`       // Listen address (default ":3000")
	StaticDir     string `mapstructure:"static_dir"` // Served at /public (default "public")
	SessionSecret string `mapstructure:"session_secret"`
	CookieSecure  bool   `mapstructure:"cookie_secure"` // Set true for HTTPS
	DefaultLocale string `mapstructure:"default_locale"`
	PrettyHTML    bool   `mapstructure:"pretty_html"`

	ContactDelay  time.Duration `mapstructure:"contact_delay"`  // Simulated send time (default 1s)
	ContactLimit  int           `mapstructure:"contact_limit"`  // Submissions per window and IP (default 5)
	ContactWindow time.Duration `mapstructure:"contact_window"` // default 1m

	generatedSecret bool
}

// DefaultConfig returns the configuration of the bundled portfolio.
func DefaultConfig() SiteConfig {
	return SiteConfig{
		Name:        "Estevan Pithan",
		URL:         "http://localhost:3000",
		Description: "Frontend engineer crafting accessible, fast and friendly web experiences.",
		Author:      "Estevan Pithan",
		Initials:    "EP",
		Tagline:     "Frontend Engineer & UI Enthusiast crafting beautiful, accessible web experiences with modern technologies",
		Bio: []string{
			"I'm a passionate frontend engineer with over 6 years of experience building scalable web applications and intuitive user interfaces. My journey began with a curiosity for how websites work, which evolved into a deep appreciation for the intersection of design and technology.",
			"I specialize in React, TypeScript, and modern CSS frameworks, with a keen eye for performance optimization and accessibility. I believe that great software should not only function flawlessly but also provide delightful user experiences.",
			"When I'm not coding, you'll find me exploring new design trends, contributing to open-source projects, or sharing knowledge through technical writing and mentoring.",
		},
		Skills:        []string{"React", "TypeScript", "Next.js", "Tailwind CSS", "Node.js", "GraphQL"},
		Email:         "hello@example.com",
		Phone:         "+1 555 0100",
		LinkedInURL:   "https://www.linkedin.com/in/estevanpithan",
		GitHubURL:     "https://github.com/estevanpithan",
		TwitterURL:    "https://twitter.com/estevanpithan",
		HourlyRate:    75,
		Addr:          ":3000",
		StaticDir:     "public",
		DefaultLocale: i18n.DefaultKey,
		ContactDelay:  time.Second,
		ContactLimit:  5,
		ContactWindow: time.Minute,
	}
}

func (c *SiteConfig) setDefaults() {
	def := DefaultConfig()
	if c.Name == "" {
		c.Name = def.Name
	}
	if c.URL == "" {
		c.URL = def.URL
	}
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.Initials == "" {
		c.Initials = initials(c.Author)
	}
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.StaticDir == "" {
		c.StaticDir = def.StaticDir
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = def.DefaultLocale
	}
	if c.ContactDelay <= 0 {
		c.ContactDelay = def.ContactDelay
	}
	if c.ContactLimit <= 0 {
		c.ContactLimit = def.ContactLimit
	}
	if c.ContactWindow <= 0 {
		c.ContactWindow = def.ContactWindow
	}
	if c.SessionSecret == "" {
		c.SessionSecret = randomSecret()
		c.generatedSecret = true
	}
}

func (c SiteConfig) validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: url %q must be absolute", ErrInvalidConfig, c.URL)
	}
	if c.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly_rate must not be negative", ErrInvalidConfig)
	}
	return nil
}

// GeneratedSecret reports whether the session secret was generated for
// this process because none was configured.
func (c SiteConfig) GeneratedSecret() bool { return c.generatedSecret }

func (c SiteConfig) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:         c.Name,
		URL:          c.URL,
		Description:  c.Description,
		Author:       c.Author,
		Initials:     c.Initials,
		Tagline:      c.Tagline,
		Bio:          c.Bio,
		Skills:       c.Skills,
		Email:        c.Email,
		Phone:        c.Phone,
		LinkedInURL:  c.LinkedInURL,
		GitHubURL:    c.GitHubURL,
		TwitterURL:   c.TwitterURL,
		ProfilePhoto: c.ProfilePhoto,
		HeroImage:    c.HeroImage,
		CVURL:        c.CVURL,
		HourlyRate:   c.HourlyRate,
	}
}

// LoadConfig builds a SiteConfig from, in increasing priority: defaults,
// the YAML file at path (optional), FOLIO_* environment variables and the
// flags in fs that were set explicitly.
func LoadConfig(path string, fs *pflag.FlagSet) (SiteConfig, error) {
	v := viper.New()
	setViperDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if fs != nil {
		for _, key := range []string{"addr", "url", "static_dir", "pretty_html"} {
			if f := fs.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return SiteConfig{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// setViperDefaults registers every key so environment variables can
// override keys that are absent from the config file.
func setViperDefaults(v *viper.Viper, d SiteConfig) {
	v.SetDefault("name", d.Name)
	v.SetDefault("url", d.URL)
	v.SetDefault("description", d.Description)
	// Empty so setDefaults derives them from name.
	v.SetDefault("author", "")
	v.SetDefault("initials", "")
	v.SetDefault("tagline", d.Tagline)
	v.SetDefault("bio", d.Bio)
	v.SetDefault("skills", d.Skills)
	v.SetDefault("email", d.Email)
	v.SetDefault("phone", d.Phone)
	v.SetDefault("linkedin_url", d.LinkedInURL)
	v.SetDefault("github_url", d.GitHubURL)
	v.SetDefault("twitter_url", d.TwitterURL)
	v.SetDefault("profile_photo", d.ProfilePhoto)
	v.SetDefault("hero_image", d.HeroImage)
	v.SetDefault("cv_url", d.CVURL)
	v.SetDefault("hourly_rate", d.HourlyRate)
	v.SetDefault("addr", d.Addr)
	v.SetDefault("static_dir", d.StaticDir)
	v.SetDefault("session_secret", d.SessionSecret)
	v.SetDefault("cookie_secure", d.CookieSecure)
	v.SetDefault("default_locale", d.DefaultLocale)
	v.SetDefault("pretty_html", d.PrettyHTML)
	v.SetDefault("contact_delay", d.ContactDelay)
	v.SetDefault("contact_limit", d.ContactLimit)
	v.SetDefault("contact_window", d.ContactWindow)
}

func initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(f)
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("folio: read random: %v", err))
	}
	return hex.EncodeToString(b)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory served at /public (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}
