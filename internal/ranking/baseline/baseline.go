// Package baseline is the purpose-agnostic scoring pass that runs for
// every lead before any purpose-specific scoring: data completeness,
// record recency, and sector/region match.
package baseline

import (
	"strings"
	"time"

	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/coerce"
)

// EssentialFields is the fixed field list used for completeness scoring.
var EssentialFields = []string{
	models.FieldCompany,
	models.FieldWebsite,
	models.FieldIndustry,
	models.FieldEmployeesCount,
	models.FieldRevenue,
	models.FieldYearFounded,
	models.FieldHiringActivity,
	models.FieldRecentFunding,
	models.FieldOwnerLinkedIn,
}

// Completeness contributes (filled/total) x 10 over the essential fields.
func Completeness(lead models.Lead) float64 {
	filled := 0
	for _, f := range EssentialFields {
		if lead.Has(f) {
			filled++
		}
	}
	return float64(filled) / float64(len(EssentialFields)) * 10
}

// Recency scores the last-updated date against a pinned evaluation time:
// +10 within 90 days, +5 within a year, 0 otherwise or when unparseable.
func Recency(lead models.Lead, now time.Time) float64 {
	updated, ok := coerce.Date(lead.Raw(models.FieldLastUpdated))
	if !ok {
		return 0
	}
	age := now.Sub(updated)
	switch {
	case age < 0:
		return 0
	case age <= 90*24*time.Hour:
		return 10
	case age <= 365*24*time.Hour:
		return 5
	default:
		return 0
	}
}

// SectorMatch awards +20 when the requested sector is a substring of the
// lead's industry, +10 when any individual sector token appears.
func SectorMatch(industry, sector string) float64 {
	return fieldMatch(industry, sector)
}

// RegionMatch applies the same logic against the lead's city and state,
// falling back to the region's first token for the partial match.
func RegionMatch(city, state, region string) float64 {
	region = strings.TrimSpace(region)
	if region == "" {
		return 0
	}
	location := strings.ToLower(city + " " + state)
	want := strings.ToLower(region)

	if strings.Contains(location, want) {
		return 20
	}
	if tokens := strings.Fields(want); len(tokens) > 0 {
		if strings.Contains(location, tokens[0]) {
			return 10
		}
	}
	return 0
}

func fieldMatch(haystack, needle string) float64 {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return 0
	}
	h := strings.ToLower(haystack)
	n := strings.ToLower(needle)

	if strings.Contains(h, n) {
		return 20
	}
	for _, token := range strings.Fields(n) {
		if strings.Contains(h, token) {
			return 10
		}
	}
	return 0
}

// Score runs the full baseline pass for one lead.
func Score(lead models.Lead, sector, region string, now time.Time) float64 {
	total := Completeness(lead)
	total += Recency(lead, now)
	total += SectorMatch(lead.Str(models.FieldIndustry), sector)
	total += RegionMatch(lead.Str(models.FieldCity), lead.Str(models.FieldState), region)
	return total
}
