package utils

import (
	"math"
	"time"

	"freshtrack-be/internal/models"
)

// sampleWeeklyScans is returned for an empty scan set so the weekly chart
// shows demo data instead of a flat line of ones.
var sampleWeeklyScans = []int{2, 5, 8, 12}

// WeeklyScanCounts buckets scans into the last four weeks relative to now.
// Index 0 is three weeks ago, index 3 is the current week. Scans without a
// resolvable anchor date, or older than four weeks, are dropped. Every
// bucket is floored to 1 so chart consumers never divide by zero.
func WeeklyScanCounts(scans []models.Scan, now time.Time) []int {
	if len(scans) == 0 {
		out := make([]int, len(sampleWeeklyScans))
		copy(out, sampleWeeklyScans)
		return out
	}

	counts := make([]int, 4)
	for _, s := range scans {
		anchor, ok := s.AnchorTime()
		if !ok {
			continue
		}
		// Floor, not truncate: an anchor slightly in the future must land
		// at -1 and be dropped, not in the current week.
		diffWeeks := int(math.Floor(now.Sub(anchor).Hours() / (24 * 7)))
		if diffWeeks < 0 || diffWeeks >= 4 {
			continue
		}
		counts[3-diffWeeks]++
	}

	for i, c := range counts {
		if c < 1 {
			counts[i] = 1
		}
	}
	return counts
}
