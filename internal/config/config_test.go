package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.Crawler.Site.BaseURL = "" },
			wantErr: ErrMissingBaseURL,
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.Crawler.Site.BaseURL = "902.gr" },
			wantErr: ErrInvalidBaseURL,
		},
		{
			name:    "section without slash",
			mutate:  func(c *Config) { c.Crawler.Site.Section = "ergatiki-taxi" },
			wantErr: ErrMissingSection,
		},
		{
			name:    "missing article path",
			mutate:  func(c *Config) { c.Crawler.Site.ArticlePath = "" },
			wantErr: ErrMissingArticlePath,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Crawler.HTTP.TimeoutSec = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.Crawler.Delays.PageMs = -1 },
			wantErr: ErrInvalidDelay,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Crawler.Logging.Level = "trace" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestListingURL(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.ListingURL(0); got != "https://www.902.gr/ergatiki-taxi" {
		t.Errorf("ListingURL(0) = %q", got)
	}

	if got := cfg.ListingURL(3); got != "https://www.902.gr/ergatiki-taxi?page=3" {
		t.Errorf("ListingURL(3) = %q", got)
	}
}

func TestLoadConfig_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.yaml")
	yaml := `crawler:
  site:
    section: /diethni
  delays:
    article_ms: 100
`

	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Crawler.Site.Section != "/diethni" {
		t.Errorf("Section = %q, want /diethni", cfg.Crawler.Site.Section)
	}

	if cfg.Crawler.Delays.ArticleMs != 100 {
		t.Errorf("ArticleMs = %d, want 100", cfg.Crawler.Delays.ArticleMs)
	}

	// Untouched fields keep their defaults.
	if cfg.Crawler.Site.BaseURL != "https://www.902.gr" {
		t.Errorf("BaseURL = %q, want default", cfg.Crawler.Site.BaseURL)
	}

	if cfg.Crawler.HTTP.TimeoutSec != 30 {
		t.Errorf("TimeoutSec = %d, want 30", cfg.Crawler.HTTP.TimeoutSec)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig succeeded for a missing file")
	}
}
