// internal/models/intent.go
package models

// Purpose selects which ranking strategy governs scoring.
type Purpose string

const (
	PurposeJobSearch         Purpose = "Job Search"
	PurposeInvestorResearch  Purpose = "Investor Research"
	PurposeSalesProspecting  Purpose = "Sales Prospecting"
	PurposeMergerAcquisition Purpose = "Merger and Acquisition/Partnership"
	PurposeMarketResearch    Purpose = "Market Research / Competitive Analysis"
	PurposeNone              Purpose = "Select Purpose"
)

// Known reports whether the purpose maps to one of the five strategies.
// Unknown purposes degrade to baseline-only scoring, they never error.
func (p Purpose) Known() bool {
	switch p {
	case PurposeJobSearch, PurposeInvestorResearch, PurposeSalesProspecting,
		PurposeMergerAcquisition, PurposeMarketResearch:
		return true
	}
	return false
}

// AllPurposes lists the recognized purposes in display order.
func AllPurposes() []Purpose {
	return []Purpose{
		PurposeJobSearch,
		PurposeInvestorResearch,
		PurposeSalesProspecting,
		PurposeMergerAcquisition,
		PurposeMarketResearch,
	}
}

// Alliance types for partnership ranking.
const (
	AllianceAcquisitionTarget = "Acquisition Target"
	AllianceStrategicPartner  = "Strategic Partner"
)

// Intent is the full ranking request: purpose, search filters, and the
// purpose-specific preference variant.
type Intent struct {
	Purpose     Purpose     `json:"purpose"`
	Sector      string      `json:"sector"`
	Region      string      `json:"region"`
	Preferences Preferences `json:"preferences"`
}

// Preferences carries exactly one variant, matching the intent's purpose.
// Absent variants and absent fields mean "no preference" and contribute
// nothing to scoring.
type Preferences struct {
	JobSearch      *JobSearchPreferences      `json:"jobSearch,omitempty"`
	Investor       *InvestorPreferences       `json:"investor,omitempty"`
	Sales          *SalesPreferences          `json:"sales,omitempty"`
	Partnership    *PartnershipPreferences    `json:"partnership,omitempty"`
	MarketResearch *MarketResearchPreferences `json:"marketResearch,omitempty"`
}

type JobSearchPreferences struct {
	// CompanySize is one of the band labels, e.g. "Small (1-50 employees)".
	CompanySize string `json:"companySize,omitempty"`
}

type InvestorPreferences struct {
	// InvestmentStage is one of Seed/Angel, Series A/B, Growth Equity,
	// Mature/Public Ready.
	InvestmentStage string `json:"investmentStage,omitempty"`
	// RevenueThreshold is a comparison expression such as "> $10M".
	RevenueThreshold string `json:"revenueThreshold,omitempty"`
}

type SalesPreferences struct {
	BuyerType       string `json:"buyerType,omitempty"`
	ProductCategory string `json:"productCategory,omitempty"`
}

type PartnershipPreferences struct {
	TargetSize   string `json:"targetSize,omitempty"`
	AllianceType string `json:"allianceType,omitempty"`
}

type MarketResearchPreferences struct {
	NicheDescription string `json:"nicheDescription,omitempty"`
	// OwnRevenue is the caller's own revenue, used for proximity banding.
	OwnRevenue string `json:"ownRevenue,omitempty"`
}
