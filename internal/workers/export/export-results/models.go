// internal/workers/export/export-results/models.go
package exportresults

import "leadrank-workers/internal/models"

type Input struct {
	RankedLeads []models.Lead `json:"rankedLeads"`
	// Columns selects and orders the CSV columns. Empty means the default
	// column set.
	Columns        []string `json:"columns,omitempty"`
	RecipientEmail string   `json:"recipientEmail,omitempty"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
}

type Output struct {
	ExportID  string `json:"exportId"`
	CSV       string `json:"csv"`
	RowCount  int    `json:"rowCount"`
	EmailSent bool   `json:"emailSent"`
	SMSSent   bool   `json:"smsSent"`
}
