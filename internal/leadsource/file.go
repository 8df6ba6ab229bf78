package leadsource

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// FileSource reads raw leads from a JSON file and filters in memory.
// Intended for local development and tests.
type FileSource struct {
	path   string
	logger logger.Logger
}

func NewFileSource(path string, log logger.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: log.WithFields(map[string]interface{}{"leadSource": "file"}),
	}
}

func (s *FileSource) FetchBySectorRegion(ctx context.Context, sector, region string) ([]models.RawLead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewLeadFetchFailedError("file", err)
	}

	var all []models.RawLead
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, errors.NewLeadFetchFailedError("file", err)
	}

	leads := []models.RawLead{}
	for _, lead := range all {
		if matchesFilter(lead.Sector, sector) && matchesFilter(lead.Region, region) {
			leads = append(leads, lead)
		}
	}

	s.logger.Debug("fetched raw leads", map[string]interface{}{
		"sector": sector,
		"region": region,
		"count":  len(leads),
	})
	return leads, nil
}

func matchesFilter(value, filter string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
