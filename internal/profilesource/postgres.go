package profilesource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// PostgresSource reads enriched profiles from a table with a normalized
// company-name key column and a JSONB profile document.
type PostgresSource struct {
	db     *sql.DB
	table  string
	logger logger.Logger
}

func NewPostgresSource(db *sql.DB, table string, log logger.Logger) *PostgresSource {
	return &PostgresSource{
		db:     db,
		table:  table,
		logger: log.WithFields(map[string]interface{}{"profileSource": "postgres"}),
	}
}

func (s *PostgresSource) FetchByCompanyNames(ctx context.Context, names []string) ([]models.Lead, error) {
	if len(names) == 0 {
		return []models.Lead{}, nil
	}

	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = models.NormalizeCompanyName(n)
	}

	query := fmt.Sprintf(`
		SELECT company_key, profile
		FROM %s
		WHERE company_key = ANY($1)`, s.table)

	rows, err := s.db.QueryContext(ctx, query, pq.Array(normalized))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewQueryTimeoutError("enriched_leads")
		}
		return nil, errors.NewQueryExecutionFailedError("enriched_leads", err)
	}
	defer rows.Close()

	byKey := make(map[string]models.Lead)
	for rows.Next() {
		var key string
		var doc []byte
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, errors.NewQueryExecutionFailedError("enriched_leads", err)
		}
		var lead models.Lead
		if err := json.Unmarshal(doc, &lead); err != nil {
			s.logger.Warn("skipping malformed profile document", map[string]interface{}{
				"companyKey": key,
				"error":      err.Error(),
			})
			continue
		}
		byKey[key] = lead
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("enriched_leads", err)
	}

	// Preserve request order; drop names with no profile.
	leads := make([]models.Lead, 0, len(names))
	for _, key := range normalized {
		if lead, ok := byKey[key]; ok {
			leads = append(leads, lead)
		}
	}

	s.logger.Debug("fetched profiles", map[string]interface{}{
		"requested": len(names),
		"found":     len(leads),
	})
	return leads, nil
}
