// Package leadsource provides the raw-lead lookups that feed the ranking
// pipeline: sector/region filtered company records from Postgres,
// Elasticsearch, or a JSON file, selected by configuration.
package leadsource

import (
	"context"
	"fmt"

	"leadrank-workers/internal/common/config"
	"leadrank-workers/internal/common/database"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// Source returns raw leads filtered by sector and region. Matching is
// case-insensitive substring; an empty sector or region matches all.
type Source interface {
	FetchBySectorRegion(ctx context.Context, sector, region string) ([]models.RawLead, error)
}

// New builds the configured source implementation.
func New(cfg config.LeadsConfig, pg *database.PostgresClient, es *database.ElasticsearchClient, log logger.Logger) (Source, error) {
	switch cfg.Source {
	case "postgres":
		if pg == nil {
			return nil, fmt.Errorf("postgres lead source requires a database connection")
		}
		return NewPostgresSource(pg.GetDB(), cfg.RawLeadsTable, log), nil
	case "elasticsearch":
		if es == nil {
			return nil, fmt.Errorf("elasticsearch lead source requires a client")
		}
		return NewElasticsearchSource(es.Client, cfg.Index, log), nil
	case "file":
		return NewFileSource(cfg.RawLeadsFile, log), nil
	default:
		return nil, fmt.Errorf("unknown lead source %q", cfg.Source)
	}
}
