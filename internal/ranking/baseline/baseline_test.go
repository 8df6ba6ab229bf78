package baseline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leadrank-workers/internal/models"
)

var evalTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCompleteness(t *testing.T) {
	empty := models.Lead{}
	assert.Equal(t, 0.0, Completeness(empty))

	full := models.Lead{
		models.FieldCompany:        "Acme Health",
		models.FieldWebsite:        "https://acme.example",
		models.FieldIndustry:       "Healthcare Technology",
		models.FieldEmployeesCount: 45.0,
		models.FieldRevenue:        "$8M",
		models.FieldYearFounded:    2018.0,
		models.FieldHiringActivity: 9.0,
		models.FieldRecentFunding:  "Series A",
		models.FieldOwnerLinkedIn:  "linkedin.com/in/founder",
	}
	assert.Equal(t, 10.0, Completeness(full))

	partial := models.Lead{
		models.FieldCompany:  "Acme Health",
		models.FieldIndustry: "Healthcare",
		models.FieldRevenue:  "N/A", // placeholder values do not count as filled
	}
	assert.InDelta(t, 2.0/9.0*10, Completeness(partial), 1e-9)
}

func TestRecency(t *testing.T) {
	lead := func(date string) models.Lead {
		return models.Lead{models.FieldLastUpdated: date}
	}

	assert.Equal(t, 10.0, Recency(lead("2025-05-01"), evalTime))
	assert.Equal(t, 5.0, Recency(lead("2024-09-01"), evalTime))
	assert.Equal(t, 0.0, Recency(lead("2020-01-01"), evalTime))
	assert.Equal(t, 0.0, Recency(lead("not a date"), evalTime))
	assert.Equal(t, 0.0, Recency(models.Lead{}, evalTime))
	// Future-dated records are suspect, not fresh.
	assert.Equal(t, 0.0, Recency(lead("2026-01-01"), evalTime))
}

func TestSectorMatch(t *testing.T) {
	assert.Equal(t, 20.0, SectorMatch("Healthcare Technology", "Healthcare"))
	assert.Equal(t, 20.0, SectorMatch("Healthcare Technology", "healthcare technology"))
	assert.Equal(t, 10.0, SectorMatch("Medical Technology", "Healthcare Technology"))
	assert.Equal(t, 0.0, SectorMatch("Logistics", "Healthcare"))
	assert.Equal(t, 0.0, SectorMatch("Healthcare", ""))
}

func TestRegionMatch(t *testing.T) {
	assert.Equal(t, 20.0, RegionMatch("San Francisco", "California", "California"))
	assert.Equal(t, 20.0, RegionMatch("Austin", "Texas", "texas"))
	assert.Equal(t, 10.0, RegionMatch("San Jose", "California", "California Bay Area"))
	assert.Equal(t, 0.0, RegionMatch("Miami", "Florida", "Texas"))
	assert.Equal(t, 0.0, RegionMatch("Miami", "Florida", ""))
}

func TestScoreSumsComponents(t *testing.T) {
	lead := models.Lead{
		models.FieldCompany:     "Acme Health",
		models.FieldIndustry:    "Healthcare Technology",
		models.FieldCity:        "San Francisco",
		models.FieldState:       "California",
		models.FieldLastUpdated: "2025-05-15",
	}

	got := Score(lead, "Healthcare", "California", evalTime)
	want := Completeness(lead) + 10 + 20 + 20
	assert.InDelta(t, want, got, 1e-9)
}
