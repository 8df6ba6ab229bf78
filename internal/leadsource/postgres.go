package leadsource

import (
	"context"
	"database/sql"
	"fmt"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// PostgresSource reads raw leads from a relational table.
type PostgresSource struct {
	db     *sql.DB
	table  string
	logger logger.Logger
}

func NewPostgresSource(db *sql.DB, table string, log logger.Logger) *PostgresSource {
	return &PostgresSource{
		db:     db,
		table:  table,
		logger: log.WithFields(map[string]interface{}{"leadSource": "postgres"}),
	}
}

func (s *PostgresSource) FetchBySectorRegion(ctx context.Context, sector, region string) ([]models.RawLead, error) {
	// ILIKE with empty patterns collapses to match-all via '%%'.
	query := fmt.Sprintf(`
		SELECT company_name, sector, region
		FROM %s
		WHERE sector ILIKE '%%' || $1 || '%%'
		  AND region ILIKE '%%' || $2 || '%%'
		ORDER BY company_name`, s.table)

	rows, err := s.db.QueryContext(ctx, query, sector, region)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewQueryTimeoutError("raw_leads")
		}
		return nil, errors.NewQueryExecutionFailedError("raw_leads", err)
	}
	defer rows.Close()

	leads := []models.RawLead{}
	for rows.Next() {
		var lead models.RawLead
		if err := rows.Scan(&lead.CompanyName, &lead.Sector, &lead.Region); err != nil {
			return nil, errors.NewQueryExecutionFailedError("raw_leads", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("raw_leads", err)
	}

	s.logger.Debug("fetched raw leads", map[string]interface{}{
		"sector": sector,
		"region": region,
		"count":  len(leads),
	})
	return leads, nil
}
