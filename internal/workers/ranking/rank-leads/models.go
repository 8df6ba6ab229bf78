// internal/workers/ranking/rank-leads/models.go
package rankleads

import "leadrank-workers/internal/models"

type Input struct {
	EnrichedLeads []models.Lead `json:"enrichedLeads"`
	Intent        models.Intent `json:"intent"`
	// EvaluationTime pins the scoring clock (RFC 3339). When absent the
	// handler pins the current time once for the whole pass, so a single
	// invocation is always internally consistent.
	EvaluationTime string `json:"evaluationTime,omitempty"`
}

type Output struct {
	RankedLeads []models.Lead `json:"rankedLeads"`
	Count       int           `json:"count"`
	TopScore    float64       `json:"topScore"`
}
