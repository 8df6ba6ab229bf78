// Package factors holds the independent scoring rules, one per signal
// category. Each function is pure: given a signal and a preference it
// returns a deterministic score contribution, possibly negative. Missing
// or unusable signals contribute 0.
package factors

import (
	"strings"
	"time"

	"leadrank-workers/internal/ranking/coerce"
)

// CompanySize awards +20 when the employee count falls in the band the
// preference names. A generic "Specific Range" preference yields a flat
// +10 since the band cannot be resolved.
func CompanySize(employeeCount float64, sizePreference string) float64 {
	pref := strings.ToLower(sizePreference)
	switch {
	case pref == "" || pref == "all":
		return 0
	case strings.Contains(pref, "specific range"):
		return 10
	case strings.Contains(pref, "small"):
		if employeeCount >= 1 && employeeCount <= 50 {
			return 20
		}
	case strings.Contains(pref, "medium"):
		if employeeCount >= 51 && employeeCount <= 500 {
			return 20
		}
	case strings.Contains(pref, "large"):
		if employeeCount > 500 {
			return 20
		}
	}
	return 0
}

// RevenueThreshold awards +25 when revenue satisfies a comparison
// expression such as "> $10M". Malformed or absent expressions score 0.
func RevenueThreshold(revenue float64, thresholdExpression string) float64 {
	cmp, ok := coerce.ParseComparison(thresholdExpression)
	if !ok {
		return 0
	}
	if cmp.Satisfies(revenue) {
		return 25
	}
	return 0
}

// GrowthRate tiers the recent employee growth percentage. Shrinking
// headcount is penalized.
func GrowthRate(growthPercent float64) float64 {
	switch {
	case growthPercent > 20:
		return 25
	case growthPercent > 10:
		return 15
	case growthPercent > 0:
		return 5
	case growthPercent < 0:
		return -10
	default:
		return 0
	}
}

// HiringActivity tiers the 0-10 hiring activity index.
func HiringActivity(activityScore float64) float64 {
	switch {
	case activityScore >= 8:
		return 30
	case activityScore >= 6:
		return 20
	case activityScore >= 4:
		return 10
	case activityScore > 0:
		return 5
	default:
		return 0
	}
}

type fundingTier struct {
	keywords []string
	score    float64
}

// Ordered high to low; the first matching tier wins.
var fundingLadder = []fundingTier{
	{[]string{"series d", "$100m"}, 40},
	{[]string{"series c", "$50m"}, 35},
	{[]string{"series b", "$20m", "$30m"}, 30},
	{[]string{"seed", "series a", "$5m", "$2m"}, 20},
	{[]string{"secured", "raised capital", "grant"}, 10},
	{[]string{"publicly traded"}, 5},
}

// RecentFunding matches the funding description against a fixed keyword
// ladder, case-insensitive substring, strongest signal first.
func RecentFunding(fundingDescription string) float64 {
	desc := strings.ToLower(fundingDescription)
	if desc == "" {
		return 0
	}
	for _, tier := range fundingLadder {
		for _, kw := range tier.keywords {
			if strings.Contains(desc, kw) {
				return tier.score
			}
		}
	}
	return 0
}

// Stage is an inferred investment stage.
type Stage string

const (
	StageSeedAngel    Stage = "Seed/Angel"
	StageSeriesAB     Stage = "Series A/B"
	StageGrowthEquity Stage = "Growth Equity"
	StageMature       Stage = "Mature/Public Ready"
	StageUnknown      Stage = "Unknown"
)

type stageRule struct {
	matches func(age, employees, revenue float64, funding string) bool
	stage   Stage
}

// Evaluated top to bottom, first match wins. Funding keywords outrank the
// age/headcount/revenue heuristics since they are direct evidence.
var stageRules = []stageRule{
	{func(_, _, _ float64, f string) bool { return strings.Contains(f, "publicly traded") || strings.Contains(f, "public") }, StageMature},
	{func(_, _, _ float64, f string) bool { return strings.Contains(f, "series c") || strings.Contains(f, "growth equity") }, StageGrowthEquity},
	{func(_, _, _ float64, f string) bool { return strings.Contains(f, "series a") || strings.Contains(f, "series b") }, StageSeriesAB},
	{func(_, _, _ float64, f string) bool { return strings.Contains(f, "seed") || strings.Contains(f, "angel") }, StageSeedAngel},
	{func(age, emp, rev float64, _ string) bool { return age > 0 && age <= 3 && emp <= 20 && rev < 1e6 }, StageSeedAngel},
	{func(age, emp, _ float64, _ string) bool { return age > 0 && age <= 6 && emp <= 100 }, StageSeriesAB},
	{func(age, emp, rev float64, _ string) bool { return age > 0 && age <= 12 && (emp <= 500 || rev < 50e6) }, StageGrowthEquity},
	{func(age, _, rev float64, _ string) bool { return age > 12 || rev >= 50e6 }, StageMature},
}

// InferStage derives the investment stage from company age, headcount,
// revenue and funding-description keywords.
func InferStage(yearFounded, employeeCount, revenue float64, fundingDescription string, now time.Time) Stage {
	age := 0.0
	if yearFounded > 0 {
		age = float64(now.Year()) - yearFounded
	}
	desc := strings.ToLower(fundingDescription)

	for _, rule := range stageRules {
		if rule.matches(age, employeeCount, revenue, desc) {
			return rule.stage
		}
	}
	return StageUnknown
}

// InvestmentStage awards +25 when the inferred stage equals the user's
// preferred stage.
func InvestmentStage(yearFounded, employeeCount, revenue float64, fundingDescription, stagePreference string, now time.Time) float64 {
	pref := strings.TrimSpace(stagePreference)
	if pref == "" || strings.EqualFold(pref, "all") {
		return 0
	}
	inferred := InferStage(yearFounded, employeeCount, revenue, fundingDescription, now)
	if inferred == StageUnknown {
		return 0
	}
	if strings.EqualFold(string(inferred), pref) {
		return 25
	}
	return 0
}
