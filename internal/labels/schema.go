// Package labels maintains the label store: a url-keyed map of
// classification labels kept separate from article records.
package labels

// Schema lists the allowed values for each categorical label field.
type Schema struct {
	StrikeOrLabourUnrest []string `json:"strike_or_labour_unrest"`
	EventType            []string `json:"event_type"`
	Sector               []string `json:"sector"`
	Scope                []string `json:"scope"`
}

// DefaultSchema returns the labour-unrest labeling schema.
func DefaultSchema() Schema {
	return Schema{
		StrikeOrLabourUnrest: []string{"yes", "no"},
		EventType: []string{
			"strike",
			"work_stoppage",
			"protest",
			"lockout",
			"union_call",
			"negotiation",
			"workplace_accident",
			"other",
		},
		Sector: []string{
			"transport",
			"education",
			"health",
			"manufacturing",
			"construction",
			"public_services",
			"retail",
			"food_industry",
			"energy",
			"telecommunications",
			"finance",
			"tourism",
			"agriculture",
			"maritime",
			"other",
		},
		Scope: []string{"company", "local", "regional", "national", "general"},
	}
}
