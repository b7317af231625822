package labels

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"ergatika/internal/models"
)

// Store maps article URLs to labels. It is persisted as a JSON object
// keyed by url and never mutates article records.
type Store map[string]models.Label

// Load reads a label store from a JSON file. A missing file yields an
// empty store.
func Load(filepath string) (Store, error) {
	data, err := os.ReadFile(filepath)
	if os.IsNotExist(err) {
		return Store{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse labels file: %w", err)
	}

	// The flat-map file format carries the url in the key; older files
	// may omit it from the value.
	for url, label := range store {
		if label.URL == "" {
			label.URL = url
			store[url] = label
		}
	}

	return store, nil
}

// Save writes the store to a JSON file.
func (s Store) Save(filepath string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal labels: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write labels file: %w", err)
	}

	return nil
}

// Set inserts or replaces the label for its URL.
func (s Store) Set(label models.Label) {
	s[label.URL] = label
}

// Unlabeled returns the articles with no label yet, preserving order.
func (s Store) Unlabeled(articles []models.Article) []models.Article {
	var out []models.Article

	for _, a := range articles {
		if _, labeled := s[a.URL]; !labeled {
			out = append(out, a)
		}
	}

	return out
}

// URLs returns the labeled URLs in sorted order.
func (s Store) URLs() []string {
	urls := make([]string, 0, len(s))
	for u := range s {
		urls = append(urls, u)
	}

	sort.Strings(urls)

	return urls
}

// CountByClassification tallies labels per strike_or_labour_unrest value.
func (s Store) CountByClassification() map[string]int {
	counts := make(map[string]int)
	for _, label := range s {
		counts[label.StrikeOrLabourUnrest]++
	}

	return counts
}
