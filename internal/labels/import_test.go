package labels

import (
	"errors"
	"os"
	"testing"

	"ergatika/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestImport_ArrayShape(t *testing.T) {
	store := Store{}

	data := `[
		{"url": "https://a", "strike_or_labour_unrest": "yes", "event_type": "strike"},
		{"url": "https://b", "strike_or_labour_unrest": "no"}
	]`

	merged, err := store.Import([]byte(data))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if merged != 2 {
		t.Errorf("merged = %d, want 2", merged)
	}

	if store["https://a"].EventType != "strike" {
		t.Errorf("label for https://a = %+v", store["https://a"])
	}
}

func TestImport_WrappedShape(t *testing.T) {
	store := Store{}

	data := `{"labels": [{"url": "https://a", "strike_or_labour_unrest": "unknown"}]}`

	merged, err := store.Import([]byte(data))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if merged != 1 {
		t.Errorf("merged = %d, want 1", merged)
	}

	if store["https://a"].StrikeOrLabourUnrest != "unknown" {
		t.Errorf("label for https://a = %+v", store["https://a"])
	}
}

func TestImport_FlatMapShape(t *testing.T) {
	store := Store{}

	// The flat map shape carries no url field; the key supplies it.
	data := `{
		"https://a": {"strike_or_labour_unrest": "yes"},
		"https://b": {"strike_or_labour_unrest": "no", "sector": "transport"}
	}`

	merged, err := store.Import([]byte(data))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if merged != 2 {
		t.Errorf("merged = %d, want 2", merged)
	}

	if store["https://b"].URL != "https://b" {
		t.Errorf("URL = %q, want key injected", store["https://b"].URL)
	}

	if store["https://b"].Sector != "transport" {
		t.Errorf("Sector = %q, want transport", store["https://b"].Sector)
	}
}

func TestImport_SkipsEntriesWithoutURL(t *testing.T) {
	store := Store{}

	data := `[{"strike_or_labour_unrest": "yes"}, {"url": "https://a", "strike_or_labour_unrest": "no"}]`

	merged, err := store.Import([]byte(data))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if merged != 1 {
		t.Errorf("merged = %d, want 1", merged)
	}

	if len(store) != 1 {
		t.Errorf("store has %d labels, want 1", len(store))
	}
}

func TestImport_LastWriteWins(t *testing.T) {
	store := Store{}
	store.Set(models.Label{URL: "https://a", StrikeOrLabourUnrest: "no"})

	merged, err := store.Import([]byte(`[{"url": "https://a", "strike_or_labour_unrest": "yes"}]`))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if merged != 1 {
		t.Errorf("merged = %d, want 1", merged)
	}

	if store["https://a"].StrikeOrLabourUnrest != "yes" {
		t.Errorf("re-import did not overwrite: %+v", store["https://a"])
	}
}

func TestImport_UnrecognizedShape(t *testing.T) {
	store := Store{}

	if _, err := store.Import([]byte(`"just a string"`)); !errors.Is(err, ErrUnrecognizedShape) {
		t.Errorf("Import = %v, want ErrUnrecognizedShape", err)
	}
}
