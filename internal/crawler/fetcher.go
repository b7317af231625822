package crawler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnexpectedStatusCode indicates an HTTP response with a non-success status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Fetch issues a GET for the URL and returns the parsed document.
// Any transport failure or non-success status is an error; the crawl
// controller treats every fetch error as fatal for the run.
func (s *Session) Fetch(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = s.headers.Clone()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %d for %s", ErrUnexpectedStatusCode, resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return doc, nil
}
