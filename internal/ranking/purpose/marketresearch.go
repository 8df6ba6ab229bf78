package purpose

import (
	"strings"

	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/coerce"
	"leadrank-workers/internal/ranking/factors"
)

// MarketResearch favors companies relevant to the caller's competitive
// landscape: niche overlap, revenue proximity to the caller's own size,
// activity signals, and market-position age tiers.
func MarketResearch(lead models.Lead, ctx Context) float64 {
	var niche, ownRevenueRaw string
	if p := ctx.Preferences.MarketResearch; p != nil {
		niche = p.NicheDescription
		ownRevenueRaw = p.OwnRevenue
	}

	score := nicheMatchScore(lead.Str(models.FieldProductCategory), niche)
	score += revenueProximityScore(revenue(lead), coerce.Numeric(ownRevenueRaw, 0))
	score += factors.HiringActivity(hiringIndex(lead))
	score += factors.RecentFunding(lead.Str(models.FieldRecentFunding))
	score += factors.GrowthRate(growthPercent(lead))

	if age := companyAge(lead, ctx.Now); age > 0 {
		if age <= 5 {
			score += 10 // disruptor
		} else if age > 20 {
			score += 10 // established leader
		}
	}

	if hasWellFormedWebsite(lead) &&
		(lead.Has(models.FieldCompanyLinkedIn) || lead.Has(models.FieldOwnerLinkedIn)) {
		score += 10
	}

	return score
}

// nicheMatchScore awards +35 when the niche appears verbatim in the
// product category, +20 when any niche token appears.
func nicheMatchScore(productCategory, niche string) float64 {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return 0
	}
	pc := strings.ToLower(productCategory)
	n := strings.ToLower(niche)

	if strings.Contains(pc, n) {
		return 35
	}
	for _, token := range strings.Fields(n) {
		if len(token) > 2 && strings.Contains(pc, token) {
			return 20
		}
	}
	return 0
}

// revenueProximityScore bands the lead's revenue against the caller's
// own: similar size means a direct competitor, much larger a market
// leader, much smaller an emerging player. With no own-revenue reference,
// any revenue at all earns a small bonus.
func revenueProximityScore(leadRevenue, ownRevenue float64) float64 {
	if ownRevenue <= 0 {
		if leadRevenue > 0 {
			return 5
		}
		return 0
	}
	if leadRevenue <= 0 {
		return 0
	}

	ratio := leadRevenue / ownRevenue
	switch {
	case ratio >= 0.8 && ratio <= 1.2:
		return 20 // direct competitor size
	case ratio > 2:
		return 15 // market leader
	case ratio < 0.5:
		return 10 // emerging player
	default:
		return 0
	}
}
