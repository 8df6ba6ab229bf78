// internal/workers/leads/enrich-leads/handler_test.go
package enrichleads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

type stubProfiles struct {
	profiles map[string]models.Lead
	err      error
}

func (s *stubProfiles) FetchByCompanyNames(_ context.Context, names []string) ([]models.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Lead{}
	for _, n := range names {
		if lead, ok := s.profiles[models.NormalizeCompanyName(n)]; ok {
			out = append(out, lead)
		}
	}
	return out, nil
}

func TestExecuteEnrichesKnownCompanies(t *testing.T) {
	profiles := &stubProfiles{
		profiles: map[string]models.Lead{
			"acme health": {models.FieldCompany: "Acme Health", models.FieldIndustry: "Healthcare"},
		},
	}
	h := NewHandler(LoadConfig(), profiles, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		CompanyNames: []string{"Acme Health", "Ghost Co"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, output.Count)
	assert.Equal(t, 1, output.Skipped)
	assert.Equal(t, "Acme Health", output.EnrichedLeads[0].Company())
}

func TestExecuteEmptyInput(t *testing.T) {
	h := NewHandler(LoadConfig(), &stubProfiles{}, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	assert.Equal(t, 0, output.Skipped)
}

func TestExecuteSourceError(t *testing.T) {
	h := NewHandler(LoadConfig(), &stubProfiles{err: assert.AnError}, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{CompanyNames: []string{"Acme"}})
	assert.Error(t, err)
}
