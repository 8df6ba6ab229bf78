// internal/workers/leads/fetch-leads/handler_test.go
package fetchleads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

type stubSource struct {
	leads []models.RawLead
	err   error

	gotSector string
	gotRegion string
}

func (s *stubSource) FetchBySectorRegion(_ context.Context, sector, region string) ([]models.RawLead, error) {
	s.gotSector = sector
	s.gotRegion = region
	return s.leads, s.err
}

func TestExecuteFetchesAndProjectsNames(t *testing.T) {
	src := &stubSource{
		leads: []models.RawLead{
			{CompanyName: "Acme Health", Sector: "Healthcare", Region: "California"},
			{CompanyName: "BioCore Labs", Sector: "Healthcare", Region: "California"},
		},
	}
	h := NewHandler(LoadConfig(), src, "file", logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Sector: "Healthcare", Region: "California"})
	require.NoError(t, err)

	assert.Equal(t, "Healthcare", src.gotSector)
	assert.Equal(t, "California", src.gotRegion)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, []string{"Acme Health", "BioCore Labs"}, output.CompanyNames)
}

func TestExecuteEmptyResult(t *testing.T) {
	src := &stubSource{leads: []models.RawLead{}}
	h := NewHandler(LoadConfig(), src, "file", logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Sector: "Nothing", Region: "Nowhere"})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.CompanyNames)
}

func TestExecuteSourceError(t *testing.T) {
	src := &stubSource{err: assert.AnError}
	h := NewHandler(LoadConfig(), src, "postgres", logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{})
	assert.Error(t, err)
}
