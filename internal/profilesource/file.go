package profilesource

import (
	"context"
	"encoding/json"
	"os"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// FileSource reads enriched profiles from a JSON array file and joins by
// normalized company name in memory.
type FileSource struct {
	path   string
	logger logger.Logger
}

func NewFileSource(path string, log logger.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: log.WithFields(map[string]interface{}{"profileSource": "file"}),
	}
}

func (s *FileSource) FetchByCompanyNames(ctx context.Context, names []string) ([]models.Lead, error) {
	if len(names) == 0 {
		return []models.Lead{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewEnrichmentFailedError(err)
	}

	var all []models.Lead
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, errors.NewEnrichmentFailedError(err)
	}

	byKey := make(map[string]models.Lead, len(all))
	for _, lead := range all {
		byKey[models.NormalizeCompanyName(lead.Company())] = lead
	}

	leads := make([]models.Lead, 0, len(names))
	for _, name := range names {
		if lead, ok := byKey[models.NormalizeCompanyName(name)]; ok {
			leads = append(leads, lead)
		}
	}

	s.logger.Debug("fetched profiles", map[string]interface{}{
		"requested": len(names),
		"found":     len(leads),
	})
	return leads, nil
}
