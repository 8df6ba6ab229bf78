package leadsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

// ElasticsearchSource reads raw leads from a search index.
type ElasticsearchSource struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewElasticsearchSource(client *elasticsearch.Client, index string, log logger.Logger) *ElasticsearchSource {
	return &ElasticsearchSource{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"leadSource": "elasticsearch"}),
	}
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.RawLead `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *ElasticsearchSource) FetchBySectorRegion(ctx context.Context, sector, region string) ([]models.RawLead, error) {
	query := buildSectorRegionQuery(sector, region)

	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.NewSearchQueryFailedError(err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(body)),
		s.client.Search.WithSize(1000),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError()
		}
		return nil, errors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil, errors.NewIndexNotFoundError(s.index)
		}
		return nil, errors.NewSearchQueryFailedError(fmt.Errorf("search returned %s", res.Status()))
	}

	var parsed esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewSearchQueryFailedError(err)
	}

	leads := make([]models.RawLead, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		leads = append(leads, hit.Source)
	}

	s.logger.Debug("fetched raw leads", map[string]interface{}{
		"sector": sector,
		"region": region,
		"count":  len(leads),
	})
	return leads, nil
}

// buildSectorRegionQuery produces a bool query of case-insensitive
// wildcard filters; empty filters are omitted so an empty request
// matches all documents.
func buildSectorRegionQuery(sector, region string) map[string]interface{} {
	filters := []map[string]interface{}{}
	if sector != "" {
		filters = append(filters, wildcardFilter("sector", sector))
	}
	if region != "" {
		filters = append(filters, wildcardFilter("region", region))
	}

	if len(filters) == 0 {
		return map[string]interface{}{
			"query": map[string]interface{}{"match_all": map[string]interface{}{}},
		}
	}
	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": filters},
		},
	}
}

func wildcardFilter(field, value string) map[string]interface{} {
	return map[string]interface{}{
		"wildcard": map[string]interface{}{
			field: map[string]interface{}{
				"value":            "*" + value + "*",
				"case_insensitive": true,
			},
		},
	}
}
