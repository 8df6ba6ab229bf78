package purpose

import (
	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/coerce"
	"leadrank-workers/internal/ranking/factors"
)

// InvestorResearch favors companies matching the investor's stage and
// revenue thesis, with bonuses for funding momentum, reachable executives,
// and innovation-heavy product categories.
func InvestorResearch(lead models.Lead, ctx Context) float64 {
	var stagePref, thresholdPref string
	if p := ctx.Preferences.Investor; p != nil {
		stagePref = p.InvestmentStage
		thresholdPref = p.RevenueThreshold
	}

	rev := revenue(lead)
	emp := employees(lead)
	funding := lead.Str(models.FieldRecentFunding)

	yearFounded := coerce.Numeric(lead.Raw(models.FieldYearFounded), 0)

	score := factors.RevenueThreshold(rev, thresholdPref)
	score += factors.InvestmentStage(yearFounded, emp, rev, funding, stagePref, ctx.Now)
	score += factors.RecentFunding(funding)
	score += factors.GrowthRate(growthPercent(lead))

	hasLinkedIn := lead.Has(models.FieldOwnerLinkedIn)
	if hasLinkedIn && isExecutiveTitle(lead.Str(models.FieldOwnerTitle)) {
		score += 15
	} else if hasLinkedIn {
		score += 5
	}

	if containsAnyKeyword(lead.Str(models.FieldProductCategory), innovationKeywords) {
		score += 15
	}

	if rev > 50e6 {
		score += 10
	}
	if emp > 300 {
		score += 5
	}
	if hasWellFormedWebsite(lead) {
		score += 5
	}

	return score
}
