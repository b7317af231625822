package payload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ergatika/internal/labels"
	"ergatika/internal/models"
)

func testArticles(n int) []models.Article {
	articles := make([]models.Article, 0, n)
	base := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		articles = append(articles, models.Article{
			URL:         "https://www.902.gr/eidisi/ergatiki-taxi/" + string(rune('a'+i)),
			Title:       "Άρθρο " + string(rune('a'+i)),
			PublishedAt: models.NewMinuteTime(base.Add(time.Duration(i) * time.Hour)),
			Tags:        []string{"ΑΠΕΡΓΙΑ"},
			Body:        "Σώμα κειμένου.",
		})
	}

	return articles
}

func TestBuildBatch_ExcludesLabeled(t *testing.T) {
	articles := testArticles(3)

	store := labels.Store{}
	store.Set(models.Label{URL: articles[1].URL, StrikeOrLabourUnrest: "yes"})

	batch := BuildBatch(articles, store, 5)
	if batch == nil {
		t.Fatal("BuildBatch returned nil")
	}

	if len(batch.Articles) != 2 {
		t.Fatalf("batch has %d articles, want 2", len(batch.Articles))
	}

	for _, a := range batch.Articles {
		if a.URL == articles[1].URL {
			t.Errorf("labeled article %s included in batch", a.URL)
		}
	}
}

func TestBuildBatch_RespectsBatchSize(t *testing.T) {
	batch := BuildBatch(testArticles(7), labels.Store{}, 5)
	if batch == nil {
		t.Fatal("BuildBatch returned nil")
	}

	if len(batch.Articles) != 5 {
		t.Errorf("batch has %d articles, want 5", len(batch.Articles))
	}

	// Order follows the input article order.
	if batch.Articles[0].URL != "https://www.902.gr/eidisi/ergatiki-taxi/a" {
		t.Errorf("first batch article = %s", batch.Articles[0].URL)
	}
}

func TestBuildBatch_NilWhenAllLabeled(t *testing.T) {
	articles := testArticles(2)

	store := labels.Store{}
	for _, a := range articles {
		store.Set(models.Label{URL: a.URL, StrikeOrLabourUnrest: "no"})
	}

	if batch := BuildBatch(articles, store, 5); batch != nil {
		t.Errorf("BuildBatch = %+v, want nil", batch)
	}
}

func TestBuildBatch_TruncatesBodyByRunes(t *testing.T) {
	articles := testArticles(1)
	articles[0].Body = strings.Repeat("α", MaxBodyChars+100)

	batch := BuildBatch(articles, labels.Store{}, 1)
	if batch == nil {
		t.Fatal("BuildBatch returned nil")
	}

	got := []rune(batch.Articles[0].Body)
	if len(got) != MaxBodyChars {
		t.Errorf("body has %d runes, want %d", len(got), MaxBodyChars)
	}
}

func TestBuildBatch_FormatsPublishedAt(t *testing.T) {
	batch := BuildBatch(testArticles(1), labels.Store{}, 1)
	if batch == nil {
		t.Fatal("BuildBatch returned nil")
	}

	if got := batch.Articles[0].PublishedAt; got != "2024-03-15T09:30" {
		t.Errorf("PublishedAt = %q, want 2024-03-15T09:30", got)
	}
}

func TestBatchRequest_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")

	batch := BuildBatch(testArticles(2), labels.Store{}, 5)
	if err := batch.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read batch file: %v", err)
	}

	var decoded BatchRequest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("saved batch is not valid JSON: %v", err)
	}

	if decoded.Instructions == "" || len(decoded.Articles) != 2 {
		t.Errorf("saved batch lost content: %d articles", len(decoded.Articles))
	}

	if len(decoded.Schema.StrikeOrLabourUnrest) == 0 {
		t.Error("saved batch has empty schema")
	}
}
