package utils

import "strings"

// Freshness buckets for the dashboard's ripeness distribution.
const (
	FreshnessUnripe   = "unripe"
	FreshnessRipe     = "ripe"
	FreshnessOverripe = "overripe"
)

// ClassifyFreshness maps a free-text freshness label onto one of the three
// buckets. Matching is case-insensitive and first-match-wins: "unripe"
// triggers are checked before "overripe" triggers, so a label containing
// both lands in unripe. Anything unrecognized, including an empty label,
// counts as ripe.
func ClassifyFreshness(label string) string {
	l := strings.ToLower(label)

	if strings.Contains(l, "unripe") || l == "green" || strings.Contains(l, "early") {
		return FreshnessUnripe
	}
	if strings.Contains(l, "overripe") || l == "rotten" || strings.Contains(l, "late") {
		return FreshnessOverripe
	}
	return FreshnessRipe
}
