package purpose

import (
	"strings"

	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/factors"
)

var complementaryProductKeywords = []string{
	"platform", "integration", "analytics", "api", "software", "service",
}

var synergyDiagnosticKeywords = []string{"diagnostic", "telehealth"}

// Partnership scores acquisition targets and strategic partners under
// different rules selected by the alliance-type preference, plus general
// financial-strength and decision-maker-access bonuses.
func Partnership(lead models.Lead, ctx Context) float64 {
	var targetSize, allianceType string
	if p := ctx.Preferences.Partnership; p != nil {
		targetSize = p.TargetSize
		allianceType = p.AllianceType
	}

	emp := employees(lead)
	rev := revenue(lead)
	age := companyAge(lead, ctx.Now)
	funding := lead.Str(models.FieldRecentFunding)

	score := factors.CompanySize(emp, targetSize)

	switch strings.ToLower(strings.TrimSpace(allianceType)) {
	case strings.ToLower(models.AllianceAcquisitionTarget):
		score += acquisitionTargetScore(lead, emp, age, funding)
	case strings.ToLower(models.AllianceStrategicPartner):
		score += strategicPartnerScore(lead, emp, age)
	}

	score += synergyBonus(lead)

	// General strength signals regardless of alliance type.
	if rev > 10e6 {
		score += 10
	}
	if emp > 200 {
		score += 5
	}
	score += factors.GrowthRate(growthPercent(lead))

	if lead.Has(models.FieldOwnerLinkedIn) || isExecutiveTitle(lead.Str(models.FieldOwnerTitle)) {
		score += 10 // decision-maker access
	}

	return score
}

// acquisitionTargetScore rewards young, small, innovative firms. Recent
// funding counts at half weight since a fresh round raises the price;
// no funding history at all suggests a more amenable target.
func acquisitionTargetScore(lead models.Lead, emp, age float64, funding string) float64 {
	var score float64

	young := age > 0 && age <= 8
	small := emp > 0 && emp < 100
	innovative := containsAnyKeyword(lead.Str(models.FieldProductCategory), innovationKeywords)

	if (young && small) || (young && innovative) || (small && innovative) {
		score += 30
	}

	if fundingScore := factors.RecentFunding(funding); fundingScore > 0 {
		score += fundingScore * 0.5
	} else {
		score += 10
	}

	return score
}

// strategicPartnerScore rewards established mid-size firms with a
// complementary product and a real online presence.
func strategicPartnerScore(lead models.Lead, emp, age float64) float64 {
	var score float64

	established := age > 10
	midSize := emp >= 50 && emp <= 1000
	complementary := containsAnyKeyword(lead.Str(models.FieldProductCategory), complementaryProductKeywords)

	if established && midSize && complementary {
		score += 30
	}

	if hasWellFormedWebsite(lead) && lead.Has(models.FieldCompanyLinkedIn) {
		score += 10
	}

	return score
}

// synergyBonus is a narrow sector-specific rule: healthcare companies with
// AI-driven diagnostic or telehealth products.
func synergyBonus(lead models.Lead) float64 {
	industry := strings.ToLower(lead.Str(models.FieldIndustry))
	if !strings.Contains(industry, "health") {
		return 0
	}
	product := lead.Str(models.FieldProductCategory)
	if containsAnyKeyword(product, []string{"ai"}) && containsAnyKeyword(product, synergyDiagnosticKeywords) {
		return 25
	}
	return 0
}
