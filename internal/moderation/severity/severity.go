// Package severity maps violation categories to priority tiers.
// The table is static and versioned; reports capture the tier and table
// version at creation time, so later table changes never reclassify
// existing reports.
package severity

import "github.com/arbiterhq/arbiter/internal/database/types/enum"

// TableVersion identifies the classification table below. Bump it whenever a
// category's tier changes.
const TableVersion = 1

var tiers = map[enum.Category]enum.Severity{
	enum.CategoryHateSpeech:     enum.SeverityCritical,
	enum.CategoryThreats:        enum.SeverityCritical,
	enum.CategoryDoxxing:        enum.SeverityCritical,
	enum.CategoryHarassment:     enum.SeverityHigh,
	enum.CategorySexualContent:  enum.SeverityHigh,
	enum.CategoryViolence:       enum.SeverityHigh,
	enum.CategorySpam:           enum.SeverityMedium,
	enum.CategoryMisinformation: enum.SeverityMedium,
	enum.CategoryTrolling:       enum.SeverityLow,
	enum.CategoryOther:          enum.SeverityLow,
}

// Classify returns the severity tier for a violation category. It is a pure
// function over the fixed category set; unknown values fall back to the
// lowest tier.
func Classify(category enum.Category) enum.Severity {
	tier, ok := tiers[category]
	if !ok {
		return enum.SeverityLow
	}

	return tier
}
