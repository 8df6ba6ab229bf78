package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/models"
)

var evalTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

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

func TestRankEmptyInput(t *testing.T) {
	for _, p := range append(models.AllPurposes(), models.PurposeNone) {
		out := Rank([]models.Lead{}, models.Intent{Purpose: p}, evalTime)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
	out := Rank(nil, jobSearchIntent(), evalTime)
	assert.Empty(t, out)
}

func TestRankFloorInvariant(t *testing.T) {
	leads := []models.Lead{
		{models.FieldGrowthPercent: -50.0, models.FieldBBBRating: "F"},
		{models.FieldCompany: "Decent Co", models.FieldHiringActivity: 9.0},
	}

	out := Rank(leads, jobSearchIntent(), evalTime)
	for _, lead := range out {
		assert.GreaterOrEqual(t, lead.Score(), 0.0)
	}
}

func TestRankSortedDescending(t *testing.T) {
	leads := []models.Lead{
		{models.FieldCompany: "Weak"},
		{
			models.FieldCompany:        "Strong",
			models.FieldEmployeesCount: 45.0,
			models.FieldHiringActivity: 9.0,
			models.FieldIndustry:       "Healthcare Technology",
			models.FieldCity:           "San Francisco",
			models.FieldState:          "California",
		},
		{models.FieldCompany: "Middling", models.FieldHiringActivity: 5.0},
	}

	out := Rank(leads, jobSearchIntent(), evalTime)
	require.Len(t, out, 3)
	for i := 0; i < len(out)-1; i++ {
		assert.GreaterOrEqual(t, out[i].Score(), out[i+1].Score())
	}
	assert.Equal(t, "Strong", out[0].Company())
}

func TestRankStableOnTies(t *testing.T) {
	// Identical leads score identically; output must keep input order.
	mk := func(name string) models.Lead {
		return models.Lead{
			models.FieldCompany:        name,
			models.FieldHiringActivity: 7.0,
		}
	}
	leads := []models.Lead{mk("First"), mk("Second"), mk("Third")}

	out := Rank(leads, jobSearchIntent(), evalTime)
	require.Len(t, out, 3)
	assert.Equal(t, "First", out[0].Company())
	assert.Equal(t, "Second", out[1].Company())
	assert.Equal(t, "Third", out[2].Company())
	assert.Equal(t, out[0].Score(), out[1].Score())
}

func TestRankJobSearchScenario(t *testing.T) {
	lead := models.Lead{
		models.FieldIndustry:       "Healthcare Technology",
		models.FieldCity:           "San Francisco",
		models.FieldState:          "California",
		models.FieldEmployeesCount: 45.0,
		models.FieldHiringActivity: 9.0,
		models.FieldGrowthPercent:  15.0,
	}

	out := Rank([]models.Lead{lead}, jobSearchIntent(), evalTime)
	require.Len(t, out, 1)
	// At least CompanySize 20 + HiringActivity 30 + GrowthRate 15
	// + SectorMatch 20 + RegionMatch 20.
	assert.GreaterOrEqual(t, out[0].Score(), 105.0)
}

func TestRankDeterminism(t *testing.T) {
	leads := func() []models.Lead {
		return []models.Lead{
			{models.FieldCompany: "A", models.FieldHiringActivity: 9.0, models.FieldRevenue: "$5M"},
			{models.FieldCompany: "B", models.FieldGrowthPercent: 25.0},
			{models.FieldCompany: "C", models.FieldRecentFunding: "Series B"},
		}
	}

	first := Rank(leads(), jobSearchIntent(), evalTime)
	second := Rank(leads(), jobSearchIntent(), evalTime)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Company(), second[i].Company())
		assert.Equal(t, first[i].Score(), second[i].Score())
	}
}

func TestRankUnknownPurposeDegradesToBaseline(t *testing.T) {
	lead := models.Lead{
		models.FieldCompany:  "Acme",
		models.FieldIndustry: "Healthcare",
		models.FieldCity:     "Austin",
		models.FieldState:    "Texas",
		// Strong purpose-specific signals that must not count here.
		models.FieldHiringActivity: 9.0,
		models.FieldRecentFunding:  "Series D",
	}
	intent := models.Intent{
		Purpose: models.Purpose("Astrology"),
		Sector:  "Healthcare",
		Region:  "Texas",
	}

	out := Rank([]models.Lead{lead}, intent, evalTime)
	require.Len(t, out, 1)

	baselineOnly := Rank([]models.Lead{lead.Clone()}, models.Intent{
		Purpose: models.PurposeNone,
		Sector:  "Healthcare",
		Region:  "Texas",
	}, evalTime)
	assert.Equal(t, baselineOnly[0].Score(), out[0].Score())
}

func TestRankMalformedRevenueDoesNotPanic(t *testing.T) {
	lead := models.Lead{
		models.FieldCompany: "Messy Data Inc",
		models.FieldRevenue: "N/A",
	}
	intent := models.Intent{
		Purpose: models.PurposeInvestorResearch,
		Preferences: models.Preferences{
			Investor: &models.InvestorPreferences{RevenueThreshold: "> $10M"},
		},
	}

	out := Rank([]models.Lead{lead}, intent, evalTime)
	require.Len(t, out, 1)
	assert.GreaterOrEqual(t, out[0].Score(), 0.0)
}

func TestRankPreservesOriginalFields(t *testing.T) {
	lead := models.Lead{
		models.FieldCompany:  "Acme",
		models.FieldIndustry: "Healthcare",
		"Custom Column":      "kept verbatim",
	}

	out := Rank([]models.Lead{lead}, jobSearchIntent(), evalTime)
	require.Len(t, out, 1)
	assert.Equal(t, "kept verbatim", out[0]["Custom Column"])
	assert.Contains(t, out[0], models.FieldRankScore)
}

func TestRankDoesNotDeduplicate(t *testing.T) {
	lead := models.Lead{models.FieldCompany: "Twin Co"}
	out := Rank([]models.Lead{lead.Clone(), lead.Clone()}, jobSearchIntent(), evalTime)
	assert.Len(t, out, 2)
}

func TestRankDoesNotReorderCallerSlice(t *testing.T) {
	weak := models.Lead{models.FieldCompany: "Weak"}
	strong := models.Lead{models.FieldCompany: "Strong", models.FieldHiringActivity: 9.0}
	in := []models.Lead{weak, strong}

	out := Rank(in, jobSearchIntent(), evalTime)

	assert.Equal(t, "Weak", in[0].Company())
	assert.Equal(t, "Strong", in[1].Company())
	assert.Equal(t, "Strong", out[0].Company())
}
