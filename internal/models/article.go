// Package models defines data structures shared by the crawler and the labeling tools.
package models

import (
	"fmt"
	"time"
)

// MinuteLayout is the wire format for publication timestamps.
const MinuteLayout = "2006-01-02T15:04"

// MinuteTime is a timestamp with minute precision. It marshals to and
// from ISO-8601 without seconds, matching the article output format.
type MinuteTime struct {
	time.Time
}

// NewMinuteTime truncates t to minute precision.
func NewMinuteTime(t time.Time) MinuteTime {
	return MinuteTime{t.Truncate(time.Minute)}
}

// MarshalJSON renders the timestamp as "2006-01-02T15:04".
func (m MinuteTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Format(MinuteLayout) + `"`), nil
}

// UnmarshalJSON parses a "2006-01-02T15:04" timestamp.
func (m *MinuteTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", s)
	}

	t, err := time.Parse(MinuteLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}

	m.Time = t

	return nil
}

// Article is one extracted news record. Records are immutable once
// produced; a run never emits two records with the same URL.
type Article struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	PublishedAt MinuteTime `json:"published_at"`
	Tags        []string   `json:"tags"`
	Body        string     `json:"body,omitempty"`
}
