// Package profilesource resolves enriched company profiles by company
// name. Profiles come from Postgres or a JSON file, optionally fronted by
// a Redis read-through cache. Companies without enrichment are skipped,
// not errors.
package profilesource

import (
	"context"
	"fmt"

	"leadrank-workers/internal/common/config"
	"leadrank-workers/internal/common/database"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// Source returns enriched leads for the given company names, preserving
// request order. Names are matched after case/whitespace normalization;
// names without a profile are silently omitted.
type Source interface {
	FetchByCompanyNames(ctx context.Context, names []string) ([]models.Lead, error)
}

// New builds the configured profile source, wrapping it in a Redis cache
// when a Redis client is available.
func New(cfg config.LeadsConfig, sourceKind string, pg *database.PostgresClient, rd *database.RedisClient, log logger.Logger) (Source, error) {
	var base Source
	switch sourceKind {
	case "postgres":
		if pg == nil {
			return nil, fmt.Errorf("postgres profile source requires a database connection")
		}
		base = NewPostgresSource(pg.GetDB(), cfg.ProfilesTable, log)
	case "file":
		base = NewFileSource(cfg.EnrichedLeadsFile, log)
	default:
		return nil, fmt.Errorf("unknown profile source %q", sourceKind)
	}

	if rd != nil {
		return NewCachedSource(base, rd.GetClient(), cfg.ProfileCacheTTL, log), nil
	}
	return base, nil
}
