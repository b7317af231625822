// Package validator provides validation for crawled article records.
package validator

import (
	"fmt"
	"time"

	"ergatika/internal/models"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	URL     string
	Message string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    ValidationStats
	IsValid  bool
}

// ValidationStats contains validation statistics.
type ValidationStats struct {
	TotalRecords   int
	ValidRecords   int
	InvalidRecords int
}

// Validate checks a crawled record array against the output invariants:
// unique URLs, a recoverable published_at on every record, and, when a
// cutoff was configured, no record older than it. Empty titles or
// bodies are warnings, not errors.
func Validate(records []models.Article, cutoff *time.Time) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}
	result.Stats.TotalRecords = len(records)

	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		valid := true

		if record.URL == "" {
			result.Errors = append(result.Errors, ValidationError{Message: "record has no url"})
			valid = false
		} else if _, dup := seen[record.URL]; dup {
			result.Errors = append(result.Errors, ValidationError{
				URL:     record.URL,
				Message: "duplicate url",
			})
			valid = false
		} else {
			seen[record.URL] = struct{}{}
		}

		if record.PublishedAt.IsZero() {
			result.Errors = append(result.Errors, ValidationError{
				URL:     record.URL,
				Message: "missing published_at",
			})
			valid = false
		} else if cutoff != nil && record.PublishedAt.Before(*cutoff) {
			result.Errors = append(result.Errors, ValidationError{
				URL: record.URL,
				Message: fmt.Sprintf("published_at %s precedes cutoff %s",
					record.PublishedAt.Format(models.MinuteLayout),
					cutoff.Format(models.MinuteLayout)),
			})
			valid = false
		}

		if record.Title == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("empty title: %s", record.URL))
		}

		if record.Body == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("no body extracted: %s", record.URL))
		}

		if valid {
			result.Stats.ValidRecords++
		} else {
			result.Stats.InvalidRecords++
			result.IsValid = false
		}
	}

	return result
}

// PrintErrors prints validation errors.
func (r *ValidationResult) PrintErrors() {
	for _, e := range r.Errors {
		if e.URL != "" {
			fmt.Printf("  ❌ %s: %s\n", e.URL, e.Message)
		} else {
			fmt.Printf("  ❌ %s\n", e.Message)
		}
	}
}

// PrintWarnings prints validation warnings.
func (r *ValidationResult) PrintWarnings() {
	for _, w := range r.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
}

// String returns a summary of the validation result.
func (r *ValidationResult) String() string {
	status := "VALID"
	if !r.IsValid {
		status = "INVALID"
	}

	return fmt.Sprintf(
		"Validation %s: %d records, %d valid, %d invalid, %d warnings",
		status,
		r.Stats.TotalRecords,
		r.Stats.ValidRecords,
		r.Stats.InvalidRecords,
		len(r.Warnings),
	)
}
