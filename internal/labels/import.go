package labels

import (
	"encoding/json"
	"errors"
	"fmt"

	"ergatika/internal/models"
)

// ErrUnrecognizedShape is returned when an import payload is none of
// the accepted result shapes.
var ErrUnrecognizedShape = errors.New("unrecognized label result shape")

// importPayload is the single decoded form every accepted shape is
// normalized into before merging.
type importPayload struct {
	entries []models.Label
}

// decodeImport accepts any of the three result shapes — an array of
// label objects, an object with a nested "labels" array, or a flat
// url-to-label map — and normalizes them up front. For the flat map
// shape the key is injected as each value's url.
func decodeImport(data []byte) (*importPayload, error) {
	var asArray []models.Label
	if err := json.Unmarshal(data, &asArray); err == nil {
		return &importPayload{entries: asArray}, nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(data, &asObject); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedShape, err)
	}

	if nested, ok := asObject["labels"]; ok {
		var wrapped []models.Label
		if err := json.Unmarshal(nested, &wrapped); err != nil {
			return nil, fmt.Errorf("invalid nested labels array: %w", err)
		}

		return &importPayload{entries: wrapped}, nil
	}

	entries := make([]models.Label, 0, len(asObject))

	for url, raw := range asObject {
		var label models.Label
		if err := json.Unmarshal(raw, &label); err != nil {
			return nil, fmt.Errorf("invalid label for %s: %w", url, err)
		}

		label.URL = url
		entries = append(entries, label)
	}

	return &importPayload{entries: entries}, nil
}

// Import merges a result payload into the store, last write wins per
// url. Entries without a url are silently skipped. Returns the number
// of labels merged.
func (s Store) Import(data []byte) (int, error) {
	payload, err := decodeImport(data)
	if err != nil {
		return 0, err
	}

	merged := 0

	for _, label := range payload.entries {
		if label.URL == "" {
			continue
		}

		s[label.URL] = label
		merged++
	}

	return merged, nil
}
