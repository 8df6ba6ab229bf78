package leadsource

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/common/logger"
)

func TestPostgresFetchBySectorRegion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"company_name", "sector", "region"}).
		AddRow("Acme Health", "Healthcare", "California").
		AddRow("BioCore Labs", "Healthcare Technology", "California")

	mock.ExpectQuery("SELECT company_name, sector, region").
		WithArgs("Healthcare", "California").
		WillReturnRows(rows)

	src := NewPostgresSource(db, "raw_leads", logger.NewNoOpLogger())
	leads, err := src.FetchBySectorRegion(context.Background(), "Healthcare", "California")
	require.NoError(t, err)

	require.Len(t, leads, 2)
	assert.Equal(t, "Acme Health", leads[0].CompanyName)
	assert.Equal(t, "Healthcare Technology", leads[1].Sector)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFetchEmptyFiltersMatchAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"company_name", "sector", "region"}).
		AddRow("Any Co", "Logistics", "Texas")

	mock.ExpectQuery("SELECT company_name, sector, region").
		WithArgs("", "").
		WillReturnRows(rows)

	src := NewPostgresSource(db, "raw_leads", logger.NewNoOpLogger())
	leads, err := src.FetchBySectorRegion(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestPostgresFetchQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT company_name, sector, region").
		WillReturnError(assert.AnError)

	src := NewPostgresSource(db, "raw_leads", logger.NewNoOpLogger())
	_, err = src.FetchBySectorRegion(context.Background(), "Healthcare", "")
	assert.Error(t, err)
}
