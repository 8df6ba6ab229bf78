// internal/workers/leads/enrich-leads/models.go
package enrichleads

import "leadrank-workers/internal/models"

type Input struct {
	CompanyNames []string `json:"companyNames"`
}

type Output struct {
	EnrichedLeads []models.Lead `json:"enrichedLeads"`
	Count         int           `json:"count"`
	// Skipped counts requested companies with no enrichment available.
	Skipped int `json:"skipped"`
}
