package purpose

import (
	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/factors"
)

// JobSearch favors companies that are hiring, growing, and reachable:
// size-band fit, hiring activity, growth, founder/owner visibility, and
// basic online-presence hygiene.
func JobSearch(lead models.Lead, ctx Context) float64 {
	var sizePref string
	if p := ctx.Preferences.JobSearch; p != nil {
		sizePref = p.CompanySize
	}

	score := factors.CompanySize(employees(lead), sizePref)
	score += factors.HiringActivity(hiringIndex(lead))
	score += factors.GrowthRate(growthPercent(lead))

	if lead.Has(models.FieldOwnerLinkedIn) {
		score += 10
	}

	if age := companyAge(lead, ctx.Now); age > 0 {
		if age <= 10 {
			score += 15 // growth-phase employer
		} else if age > 20 {
			score += 10 // established employer
		}
	}

	if hasWellFormedWebsite(lead) {
		score += 5
	} else {
		score -= 5
	}

	if lead.Has(models.FieldCompanyLinkedIn) {
		score += 5
	}

	score += bbbScore(lead.Str(models.FieldBBBRating))

	return score
}
