// Package config provides configuration management for the crawler.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL     = errors.New("site.base_url is required")
	ErrInvalidBaseURL     = errors.New("site.base_url must be an absolute http(s) URL")
	ErrMissingSection     = errors.New("site.section must start with '/'")
	ErrMissingArticlePath = errors.New("site.article_path is required")
	ErrInvalidTimeout     = errors.New("http.timeout_sec must be at least 1")
	ErrInvalidDelay       = errors.New("delays must be non-negative")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete crawler configuration.
type Config struct {
	Crawler CrawlerConfig `yaml:"crawler"`
}

// CrawlerConfig contains crawler-specific settings.
type CrawlerConfig struct {
	Site    SiteConfig    `yaml:"site"`
	HTTP    HTTPConfig    `yaml:"http"`
	Delays  DelayConfig   `yaml:"delays"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig describes the crawled site: URL families, the title
// decoration to strip, and the literal strings that bound body text.
type SiteConfig struct {
	BaseURL      string   `yaml:"base_url"`
	Section      string   `yaml:"section"`
	ArticlePath  string   `yaml:"article_path"`
	TitleSuffix  string   `yaml:"title_suffix"`
	StopMarkers  []string `yaml:"stop_markers"`
	NoiseStrings []string `yaml:"noise_strings"`
}

// HTTPConfig defines HTTP client behavior.
type HTTPConfig struct {
	TimeoutSec int `yaml:"timeout_sec"`
}

// DelayConfig defines the fixed politeness delays between requests.
type DelayConfig struct {
	ArticleMs int `yaml:"article_ms"`
	PageMs    int `yaml:"page_ms"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Path        string `yaml:"path"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowProgress bool   `yaml:"show_progress"`
}

// DefaultConfig returns the configuration for the 902.gr labour section.
func DefaultConfig() *Config {
	return &Config{
		Crawler: CrawlerConfig{
			Site: SiteConfig{
				BaseURL:     "https://www.902.gr",
				Section:     "/ergatiki-taxi",
				ArticlePath: "/eidisi/ergatiki-taxi/",
				TitleSuffix: "| 902.gr",
				StopMarkers: []string{
					"Δες ακόμα",
					"ΡΟΗ ΕΙΔΗΣΕΩΝ",
					"Αναζήτηση",
					"ΠΕΡΙΣΣΟΤΕΡΑ",
				},
				NoiseStrings: []string{
					"Facebook logo",
					"Twitter logo",
					"Print Mail logo",
					"Print HTML logo",
					"Print PDF logo",
				},
			},
			HTTP: HTTPConfig{
				TimeoutSec: 30,
			},
			Delays: DelayConfig{
				ArticleMs: 400,
				PageMs:    800,
			},
			Output: OutputConfig{
				PrettyPrint: true,
			},
			Logging: LoggingConfig{
				Level:        "info",
				ShowProgress: false,
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields absent from
// the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	site := c.Crawler.Site

	if site.BaseURL == "" {
		return ErrMissingBaseURL
	}

	u, err := url.Parse(site.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, site.BaseURL)
	}

	if !strings.HasPrefix(site.Section, "/") {
		return fmt.Errorf("%w: %q", ErrMissingSection, site.Section)
	}

	if site.ArticlePath == "" {
		return ErrMissingArticlePath
	}

	if c.Crawler.HTTP.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Crawler.Delays.ArticleMs < 0 || c.Crawler.Delays.PageMs < 0 {
		return ErrInvalidDelay
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Crawler.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// ListingURL returns the section listing URL for a zero-based page index.
func (c *Config) ListingURL(page int) string {
	u := c.Crawler.Site.BaseURL + c.Crawler.Site.Section
	if page > 0 {
		u = fmt.Sprintf("%s?page=%d", u, page)
	}

	return u
}

// HTTPTimeout returns the per-request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Crawler.HTTP.TimeoutSec) * time.Second
}

// ArticleDelay returns the delay applied after each article fetch.
func (c *Config) ArticleDelay() time.Duration {
	return time.Duration(c.Crawler.Delays.ArticleMs) * time.Millisecond
}

// PageDelay returns the delay applied after each listing-page fetch.
func (c *Config) PageDelay() time.Duration {
	return time.Duration(c.Crawler.Delays.PageMs) * time.Millisecond
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Site: %s%s, Timeout: %ds, Delays: %dms/%dms}",
		c.Crawler.Site.BaseURL,
		c.Crawler.Site.Section,
		c.Crawler.HTTP.TimeoutSec,
		c.Crawler.Delays.ArticleMs,
		c.Crawler.Delays.PageMs,
	)
}
