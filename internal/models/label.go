package models

// Label is one manual or imported classification for an article,
// keyed by the article URL. Labels live in a separate store and never
// mutate article records.
type Label struct {
	URL                  string `json:"url"`
	StrikeOrLabourUnrest string `json:"strike_or_labour_unrest,omitempty"`
	EventType            string `json:"event_type,omitempty"`
	Sector               string `json:"sector,omitempty"`
	Scope                string `json:"scope,omitempty"`
	ActionDate           string `json:"action_date,omitempty"`
	Location             string `json:"location,omitempty"`
	PrimaryActor         string `json:"primary_actor,omitempty"`
	LabeledAt            string `json:"labeled_at,omitempty"`
}
