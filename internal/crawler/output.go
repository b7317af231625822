package crawler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ergatika/internal/models"
)

// EncodeArticles marshals records as a flat JSON array with HTML
// escaping off, so Greek text stays readable in the output.
func EncodeArticles(articles []models.Article, pretty bool) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(articles); err != nil {
		return nil, fmt.Errorf("failed to marshal articles: %w", err)
	}

	return buf.Bytes(), nil
}

// SaveArticles writes the record array to a JSON file, creating parent
// directories as needed. Records are written once, at the end of a run.
func SaveArticles(articles []models.Article, outputPath string, pretty bool) error {
	data, err := EncodeArticles(articles, pretty)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadArticles reads a record array written by a previous run.
func LoadArticles(filepath string) ([]models.Article, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read articles file: %w", err)
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse articles file: %w", err)
	}

	return articles, nil
}
