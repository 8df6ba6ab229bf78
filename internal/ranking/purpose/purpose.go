// Package purpose holds the five purpose-specific ranking strategies.
// Each strategy returns the purpose-specific portion of a lead's score;
// the baseline pass is added by the pipeline. Dispatch is table-driven.
package purpose

import (
	"strings"
	"time"

	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/coerce"
)

// Context carries the per-invocation inputs a strategy may consult.
type Context struct {
	Preferences models.Preferences
	Now         time.Time
}

// ScoreFunc computes the purpose-specific score contribution for a lead.
type ScoreFunc func(lead models.Lead, ctx Context) float64

var rankers = map[models.Purpose]ScoreFunc{
	models.PurposeJobSearch:         JobSearch,
	models.PurposeInvestorResearch:  InvestorResearch,
	models.PurposeSalesProspecting:  SalesProspecting,
	models.PurposeMergerAcquisition: Partnership,
	models.PurposeMarketResearch:    MarketResearch,
}

// For returns the strategy for a purpose, false when the purpose is not
// one of the five recognized values.
func For(p models.Purpose) (ScoreFunc, bool) {
	fn, ok := rankers[p]
	return fn, ok
}

// Shared signal accessors. All degrade to 0 on missing or malformed data.

func employees(lead models.Lead) float64 {
	return coerce.Numeric(lead.Raw(models.FieldEmployeesCount), 0)
}

func revenue(lead models.Lead) float64 {
	return coerce.Numeric(lead.Raw(models.FieldRevenue), 0)
}

func hiringIndex(lead models.Lead) float64 {
	return coerce.Numeric(lead.Raw(models.FieldHiringActivity), 0)
}

func growthPercent(lead models.Lead) float64 {
	return coerce.Numeric(lead.Raw(models.FieldGrowthPercent), 0)
}

// companyAge returns years since founding, 0 when the year is unknown.
func companyAge(lead models.Lead, now time.Time) float64 {
	year := coerce.Numeric(lead.Raw(models.FieldYearFounded), 0)
	if year <= 0 {
		return 0
	}
	age := float64(now.Year()) - year
	if age < 0 {
		return 0
	}
	return age
}

// hasWellFormedWebsite requires at least a dot in the value to count a
// website as usable.
func hasWellFormedWebsite(lead models.Lead) bool {
	w := lead.Str(models.FieldWebsite)
	return w != "" && strings.Contains(w, ".")
}

// bbbScore maps a BBB rating letter to a bonus or penalty.
func bbbScore(rating string) float64 {
	r := strings.ToUpper(strings.TrimSpace(rating))
	switch {
	case r == "":
		return 0
	case strings.HasPrefix(r, "A"):
		return 5
	case strings.HasPrefix(r, "D"), strings.HasPrefix(r, "F"):
		return -10
	default:
		return 0
	}
}

var executiveTitleKeywords = []string{
	"ceo", "cto", "cfo", "coo", "chief", "founder", "president", "owner", "partner",
}

func isExecutiveTitle(title string) bool {
	t := strings.ToLower(title)
	for _, kw := range executiveTitleKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

var innovationKeywords = []string{
	"ai", "robotics", "biotech", "fintech", "clean energy", "genomics",
}

// containsAnyKeyword does case-insensitive matching: substring for
// multi-character keywords, whole-token for short ones like "ai" so that
// words such as "retail" do not false-positive.
func containsAnyKeyword(text string, keywords []string) bool {
	t := strings.ToLower(text)
	tokens := tokenSet(t)
	for _, kw := range keywords {
		if len(kw) <= 2 {
			if tokens[kw] {
				return true
			}
			continue
		}
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func tokenSet(lower string) map[string]bool {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
