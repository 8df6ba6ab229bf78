// internal/workers/ranking/rank-leads/handler_test.go
package rankleads

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/models"
)

func newHandler(t *testing.T) *Handler {
	h := NewHandler(LoadConfig(), nil, logger.NewTestLogger(t))
	h.now = func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return h
}

func jobSearchIntent() models.Intent {
	return models.Intent{
		Purpose: models.PurposeJobSearch,
		Sector:  "Healthcare",
		Region:  "California",
		Preferences: models.Preferences{
			JobSearch: &models.JobSearchPreferences{CompanySize: "Small (1-50 employees)"},
		},
	}
}

func TestExecuteRanksAndOrders(t *testing.T) {
	input := &Input{
		EnrichedLeads: []models.Lead{
			{models.FieldCompany: "Weak"},
			{
				models.FieldCompany:        "Strong",
				models.FieldEmployeesCount: 45.0,
				models.FieldHiringActivity: 9.0,
				models.FieldIndustry:       "Healthcare Technology",
				models.FieldCity:           "San Francisco",
				models.FieldState:          "California",
			},
		},
		Intent: jobSearchIntent(),
	}

	output, err := newHandler(t).Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.Count)
	assert.Equal(t, "Strong", output.RankedLeads[0].Company())
	assert.Equal(t, output.RankedLeads[0].Score(), output.TopScore)
	assert.GreaterOrEqual(t, output.TopScore, 105.0)
}

func TestExecuteEmptyLeads(t *testing.T) {
	output, err := newHandler(t).Execute(context.Background(), &Input{Intent: jobSearchIntent()})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.RankedLeads)
	assert.Equal(t, 0.0, output.TopScore)
}

func TestExecutePinnedEvaluationTime(t *testing.T) {
	lead := models.Lead{
		models.FieldCompany:     "Acme",
		models.FieldLastUpdated: "2025-05-01",
	}
	input := &Input{
		EnrichedLeads:  []models.Lead{lead},
		Intent:         jobSearchIntent(),
		EvaluationTime: "2025-06-01T00:00:00Z",
	}

	first, err := newHandler(t).Execute(context.Background(), input)
	require.NoError(t, err)

	second, err := newHandler(t).Execute(context.Background(), &Input{
		EnrichedLeads:  []models.Lead{lead.Clone()},
		Intent:         jobSearchIntent(),
		EvaluationTime: "2025-06-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, first.TopScore, second.TopScore)
}

func TestExecuteRejectsBadEvaluationTime(t *testing.T) {
	_, err := newHandler(t).Execute(context.Background(), &Input{
		EvaluationTime: "yesterday",
	})
	assert.Error(t, err)
}

func TestExecuteUnknownPurposeDegrades(t *testing.T) {
	input := &Input{
		EnrichedLeads: []models.Lead{
			{models.FieldCompany: "Acme", models.FieldHiringActivity: 9.0},
		},
		Intent: models.Intent{Purpose: models.Purpose("Astrology")},
	}

	output, err := newHandler(t).Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	// Hiring activity is purpose-specific; baseline-only scoring here is
	// just completeness.
	assert.Less(t, output.TopScore, 10.0)
}
