// internal/models/lead.go
package models

import (
	"fmt"
	"strings"
)

// Field names follow the enriched lead dataset column headers verbatim.
const (
	FieldCompany         = "Company"
	FieldWebsite         = "Website"
	FieldIndustry        = "Industry"
	FieldCity            = "City"
	FieldState           = "State"
	FieldEmployeesCount  = "Employees Count"
	FieldRevenue         = "Revenue"
	FieldYearFounded     = "Year Founded"
	FieldHiringActivity  = "Hiring Activity"
	FieldGrowthPercent   = "Recent Employee Growth %"
	FieldRecentFunding   = "Recent Funding / Investment"
	FieldProductCategory = "Product/Service Category"
	FieldBusinessType    = "Business Type (B2B, B2B2C)"
	FieldBBBRating       = "BBB Rating"
	FieldOwnerTitle      = "Owner's Title"
	FieldOwnerLinkedIn   = "Owner's LinkedIn"
	FieldCompanyLinkedIn = "Company LinkedIn"
	FieldOwnerEmail      = "Owner's Email"
	FieldOwnerPhone      = "Owner's Phone"
	FieldLastUpdated     = "Last Updated"
	FieldRankScore       = "Rank Score"
)

// RawLead is the pre-enrichment record shape used for sector/region filtering.
type RawLead struct {
	CompanyName string `json:"company_name"`
	Sector      string `json:"sector"`
	Region      string `json:"region"`
}

// Lead is an enriched company record. Field presence is never guaranteed;
// callers read through the tolerant accessors below. Scoring treats a Lead
// as immutable input except for the Rank Score field, which it overwrites.
type Lead map[string]interface{}

// Str returns the field as a trimmed string, rendering numeric values
// through fmt. Missing and nil fields yield "".
func (l Lead) Str(field string) string {
	v, ok := l[field]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// Raw returns the field value as stored, nil when absent.
func (l Lead) Raw(field string) interface{} {
	return l[field]
}

// Has reports whether the field holds a non-empty, non-zero value.
func (l Lead) Has(field string) bool {
	v, ok := l[field]
	if !ok || v == nil {
		return false
	}
	switch s := v.(type) {
	case string:
		t := strings.TrimSpace(s)
		return t != "" && !strings.EqualFold(t, "n/a") && !strings.EqualFold(t, "none")
	case float64:
		return s != 0
	case int:
		return s != 0
	case bool:
		return s
	default:
		return true
	}
}

// Company returns the lead's company name, "" if missing.
func (l Lead) Company() string {
	return l.Str(FieldCompany)
}

// SetScore writes the rank score back onto the lead.
func (l Lead) SetScore(score float64) {
	l[FieldRankScore] = score
}

// Score reads the rank score, 0 when unscored.
func (l Lead) Score() float64 {
	switch v := l[FieldRankScore].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Clone returns a shallow copy so the same base dataset can be re-ranked
// concurrently without sharing mutable score state.
func (l Lead) Clone() Lead {
	out := make(Lead, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// CloneLeads copies a slice of leads, preserving order.
func CloneLeads(leads []Lead) []Lead {
	out := make([]Lead, len(leads))
	for i, l := range leads {
		out[i] = l.Clone()
	}
	return out
}

// NormalizeCompanyName canonicalizes a company name for exact-match joins
// between raw and enriched records.
func NormalizeCompanyName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
