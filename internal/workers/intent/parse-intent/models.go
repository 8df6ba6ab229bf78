// internal/workers/intent/parse-intent/models.go
package parseintent

import "leadrank-workers/internal/models"

type Input struct {
	Purpose     string                 `json:"purpose"`
	Sector      string                 `json:"sector"`
	Region      string                 `json:"region"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

type Output struct {
	Intent models.Intent `json:"intent"`
	// PurposeKnown is false when the purpose falls outside the five
	// recognized values; ranking then degrades to baseline-only scoring.
	PurposeKnown bool `json:"purposeKnown"`
}
