package profilesource

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/common/metrics"
	"leadrank-workers/internal/models"
)

const cacheKeyPrefix = "lead:profile:"

// CachedSource is a read-through Redis cache over another profile source.
// Cache failures degrade to the underlying source; they are never fatal.
type CachedSource struct {
	inner  Source
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedSource(inner Source, client *redis.Client, ttlSeconds int, log logger.Logger) *CachedSource {
	return &CachedSource{
		inner:  inner,
		redis:  client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		logger: log.WithFields(map[string]interface{}{"profileSource": "cached"}),
	}
}

func (s *CachedSource) FetchByCompanyNames(ctx context.Context, names []string) ([]models.Lead, error) {
	if len(names) == 0 {
		return []models.Lead{}, nil
	}

	cached := make(map[string]models.Lead)
	missed := []string{}
	for _, name := range names {
		key := cacheKeyPrefix + models.NormalizeCompanyName(name)
		val, err := s.redis.Get(ctx, key).Result()
		if err != nil {
			missed = append(missed, name)
			metrics.ProfileCacheHits.WithLabelValues("miss").Inc()
			continue
		}
		var lead models.Lead
		if err := json.Unmarshal([]byte(val), &lead); err != nil {
			missed = append(missed, name)
			metrics.ProfileCacheHits.WithLabelValues("miss").Inc()
			continue
		}
		cached[models.NormalizeCompanyName(name)] = lead
		metrics.ProfileCacheHits.WithLabelValues("hit").Inc()
	}

	fetched := make(map[string]models.Lead)
	if len(missed) > 0 {
		leads, err := s.inner.FetchByCompanyNames(ctx, missed)
		if err != nil {
			return nil, err
		}
		for _, lead := range leads {
			key := models.NormalizeCompanyName(lead.Company())
			fetched[key] = lead

			data, err := json.Marshal(lead)
			if err != nil {
				continue
			}
			if err := s.redis.Set(ctx, cacheKeyPrefix+key, data, s.ttl).Err(); err != nil {
				s.logger.Warn("profile cache write failed", map[string]interface{}{
					"company": lead.Company(),
					"error":   err.Error(),
				})
			}
		}
	}

	// Reassemble in request order, dropping names with no profile anywhere.
	leads := make([]models.Lead, 0, len(names))
	for _, name := range names {
		key := models.NormalizeCompanyName(name)
		if lead, ok := cached[key]; ok {
			leads = append(leads, lead)
			continue
		}
		if lead, ok := fetched[key]; ok {
			leads = append(leads, lead)
		}
	}
	return leads, nil
}
