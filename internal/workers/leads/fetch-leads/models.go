// internal/workers/leads/fetch-leads/models.go
package fetchleads

import "leadrank-workers/internal/models"

type Input struct {
	Sector string `json:"sector"`
	Region string `json:"region"`
}

type Output struct {
	Leads        []models.RawLead `json:"leads"`
	CompanyNames []string         `json:"companyNames"`
	Count        int              `json:"count"`
}
