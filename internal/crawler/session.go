// Package crawler implements the crawl/extraction pipeline: fetching
// listing and article pages, collecting article links, and recovering
// structured records from loosely ordered page text.
package crawler

import (
	"net/http"

	"ergatika/internal/config"
)

// Session holds the HTTP client and the fixed request headers shared by
// every fetch in a run.
type Session struct {
	client  *http.Client
	headers http.Header
}

// NewSession creates a session with the configured timeout and
// browser-like headers the site expects.
func NewSession(cfg *config.Config) *Session {
	headers := http.Header{}
	headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	headers.Set("Accept-Language", "el-GR,el;q=0.9,en;q=0.8")

	return &Session{
		client: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		headers: headers,
	}
}
