// Package ranking orchestrates lead scoring: it dispatches each lead to
// the strategy matching the caller's purpose, writes the rank score back
// onto the lead, and returns the collection sorted by score descending.
package ranking

import (
	"sort"
	"time"

	"leadrank-workers/internal/models"
	"leadrank-workers/internal/ranking/baseline"
	"leadrank-workers/internal/ranking/purpose"
)

// Strategy scores and orders a lead collection. The rule-based strategy
// below is the default; a learned ranker can be substituted behind the
// same interface.
type Strategy interface {
	Rank(leads []models.Lead, intent models.Intent, now time.Time) []models.Lead
}

// RuleStrategy is the deterministic multi-factor scoring strategy.
// It is stateless and safe for concurrent use as long as each call owns
// its lead collection, since scoring writes the score onto each lead.
type RuleStrategy struct{}

// NewRuleStrategy returns the default rule-based ranking strategy.
func NewRuleStrategy() *RuleStrategy {
	return &RuleStrategy{}
}

// Rank scores every lead and returns them ordered by rank score
// descending, stable on ties so equal-scored leads keep their input
// order. The evaluation time is an explicit input so identical calls
// produce identical scores regardless of wall clock. An unrecognized
// purpose degrades to baseline-only scoring. Duplicate company names are
// not collapsed.
func (s *RuleStrategy) Rank(leads []models.Lead, intent models.Intent, now time.Time) []models.Lead {
	if len(leads) == 0 {
		return []models.Lead{}
	}

	extra, hasPurpose := purpose.For(intent.Purpose)
	ctx := purpose.Context{Preferences: intent.Preferences, Now: now}

	for _, lead := range leads {
		score := baseline.Score(lead, intent.Sector, intent.Region, now)
		if hasPurpose {
			score += extra(lead, ctx)
		}
		if score < 0 {
			score = 0
		}
		lead.SetScore(score)
	}

	out := make([]models.Lead, len(leads))
	copy(out, leads)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}

// Rank is a convenience wrapper over the default strategy.
func Rank(leads []models.Lead, intent models.Intent, now time.Time) []models.Lead {
	return NewRuleStrategy().Rank(leads, intent, now)
}
