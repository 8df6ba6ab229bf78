package purpose

import (
	"strings"

	"leadrank-workers/internal/models"
)

type productRelevanceRule struct {
	category string
	keywords []string
	score    float64
}

// Relevance keywords per seller product category, checked against the
// lead's industry and product fields. Evaluated top to bottom, first
// match wins.
var productRelevanceRules = []productRelevanceRule{
	{"crm software", []string{"sales", "customer", "retail", "service", "e-commerce"}, 35},
	{"cloud security", []string{"software", "technology", "finance", "healthcare", "data"}, 35},
	{"hr software", []string{"staffing", "recruit", "human resources", "consulting"}, 35},
}

// SalesProspecting favors companies that look like buyers of the seller's
// product: matching business type, product relevance, contact richness,
// and signs of an active, reputable operation.
func SalesProspecting(lead models.Lead, ctx Context) float64 {
	var buyerType, productCategory string
	if p := ctx.Preferences.Sales; p != nil {
		buyerType = p.BuyerType
		productCategory = p.ProductCategory
	}

	score := businessTypeScore(lead.Str(models.FieldBusinessType), buyerType)
	score += productRelevanceScore(lead, productCategory)
	score += contactRichnessScore(lead)

	if hasWellFormedWebsite(lead) {
		score += 10
	} else {
		score -= 10
	}

	score += bbbScore(lead.Str(models.FieldBBBRating))

	if hiringIndex(lead) >= 7 {
		score += 10
	}

	return score
}

// businessTypeScore awards +30 for an exact business-type match and a
// smaller bonus when one side is the hybrid B2B2C model.
func businessTypeScore(leadType, buyerType string) float64 {
	lt := strings.ToUpper(strings.TrimSpace(leadType))
	bt := strings.ToUpper(strings.TrimSpace(buyerType))
	if lt == "" || bt == "" || bt == "ALL" {
		return 0
	}
	if lt == bt {
		return 30
	}
	if bt == "B2B2C" && (lt == "B2B" || lt == "B2C") {
		return 15
	}
	if lt == "B2B2C" && (bt == "B2B" || bt == "B2C") {
		return 10
	}
	return 0
}

func productRelevanceScore(lead models.Lead, productCategory string) float64 {
	pc := strings.ToLower(strings.TrimSpace(productCategory))
	if pc == "" || pc == "all" {
		return 0
	}

	haystack := lead.Str(models.FieldIndustry) + " " + lead.Str(models.FieldProductCategory)
	for _, rule := range productRelevanceRules {
		if !strings.Contains(pc, rule.category) {
			continue
		}
		if containsAnyKeyword(haystack, rule.keywords) {
			return rule.score
		}
		return 0
	}

	// Generic mid-market fallback for categories without a keyword rule.
	emp := employees(lead)
	if emp >= 50 && emp <= 500 && revenue(lead) > 1e6 {
		return 25
	}
	return 0
}

// contactRichnessScore tiers how reachable the lead is: direct channels
// beat LinkedIn-only, and a lead with no contact path at all is penalized.
func contactRichnessScore(lead models.Lead) float64 {
	email := lead.Has(models.FieldOwnerEmail)
	phone := lead.Has(models.FieldOwnerPhone)
	linkedIn := lead.Has(models.FieldOwnerLinkedIn)

	switch {
	case email && phone:
		return 20
	case linkedIn && !email && !phone:
		return 10
	case email || phone || linkedIn:
		return 5
	default:
		return -15
	}
}
