package profilesource

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

func TestPostgresFetchByCompanyNames(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"company_key", "profile"}).
		AddRow("acme health", `{"Company": "Acme Health", "Industry": "Healthcare"}`).
		AddRow("biocore labs", `{"Company": "BioCore Labs", "Industry": "Biotech"}`)

	mock.ExpectQuery("SELECT company_key, profile").
		WillReturnRows(rows)

	src := NewPostgresSource(db, "enriched_leads", logger.NewNoOpLogger())
	leads, err := src.FetchByCompanyNames(context.Background(), []string{"Acme  Health", "BioCore Labs", "Unknown Co"})
	require.NoError(t, err)

	// Unknown Co has no profile and is skipped; order follows the request.
	require.Len(t, leads, 2)
	assert.Equal(t, "Acme Health", leads[0].Company())
	assert.Equal(t, "BioCore Labs", leads[1].Company())
}

func TestPostgresFetchSkipsMalformedProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"company_key", "profile"}).
		AddRow("acme health", `{broken json`).
		AddRow("biocore labs", `{"Company": "BioCore Labs"}`)

	mock.ExpectQuery("SELECT company_key, profile").
		WillReturnRows(rows)

	src := NewPostgresSource(db, "enriched_leads", logger.NewNoOpLogger())
	leads, err := src.FetchByCompanyNames(context.Background(), []string{"Acme Health", "BioCore Labs"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "BioCore Labs", leads[0].Company())
}

func TestPostgresFetchEmptyNames(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	src := NewPostgresSource(db, "enriched_leads", logger.NewNoOpLogger())
	leads, err := src.FetchByCompanyNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestFileFetchByCompanyNames(t *testing.T) {
	path := writeProfilesFile(t, `[
		{"Company": "Acme Health", "Industry": "Healthcare", "Employees Count": 45},
		{"Company": "TexLogistics", "Industry": "Logistics"}
	]`)

	src := NewFileSource(path, logger.NewNoOpLogger())
	leads, err := src.FetchByCompanyNames(context.Background(), []string{"acme health", "Missing Co"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Acme Health", leads[0].Company())
	assert.Equal(t, 45.0, leads[0].Raw(models.FieldEmployeesCount))
}
