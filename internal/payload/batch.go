// Package payload builds request payloads for batch external labeling.
package payload

import (
	"encoding/json"
	"fmt"
	"os"

	"ergatika/internal/labels"
	"ergatika/internal/models"
	"ergatika/pkg/utils"
)

// MaxBodyChars caps the article body included per batch entry, rune
// counted so Greek text is not cut mid-character.
const MaxBodyChars = 2000

// batchInstructions tells the external labeler what to do with the payload.
const batchInstructions = "Label each article below. For each article, determine if it's about labour unrest " +
	"(strikes, work stoppages, union actions, workplace accidents, etc.). " +
	"Output a JSON array with one label object per article."

// BatchArticle is one article as presented to the external labeler,
// with a truncated body.
type BatchArticle struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	PublishedAt string   `json:"published_at"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body"`
}

// BatchRequest combines the label schema with the articles to label.
type BatchRequest struct {
	Instructions string         `json:"instructions"`
	Schema       labels.Schema  `json:"schema"`
	Articles     []BatchArticle `json:"articles"`
}

// BuildBatch assembles a request for up to batchSize unlabeled
// articles. Returns nil when everything is already labeled.
func BuildBatch(articles []models.Article, store labels.Store, batchSize int) *BatchRequest {
	unlabeled := store.Unlabeled(articles)
	if len(unlabeled) == 0 {
		return nil
	}

	if batchSize > 0 && len(unlabeled) > batchSize {
		unlabeled = unlabeled[:batchSize]
	}

	request := &BatchRequest{
		Instructions: batchInstructions,
		Schema:       labels.DefaultSchema(),
		Articles:     make([]BatchArticle, 0, len(unlabeled)),
	}

	for _, a := range unlabeled {
		request.Articles = append(request.Articles, BatchArticle{
			URL:         a.URL,
			Title:       a.Title,
			PublishedAt: a.PublishedAt.Format(models.MinuteLayout),
			Tags:        a.Tags,
			Body:        utils.TruncateRunes(a.Body, MaxBodyChars),
		})
	}

	return request
}

// Save writes the batch request as JSON, keeping non-ASCII text readable.
func (r *BatchRequest) Save(filepath string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}

	return nil
}
