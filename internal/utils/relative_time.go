package utils

import (
	"fmt"
	"time"

	"freshtrack-be/internal/models"
)

// RelativeTime renders a timestamp as a coarse relative label for the
// activity feed. Unset or unparseable timestamps come out as "Recent";
// this function never fails.
func RelativeTime(ft models.FlexTime, now time.Time) string {
	t, ok := ft.Time()
	if !ok {
		return "Recent"
	}

	mins := int(now.Sub(t).Minutes())
	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d mins ago", mins)
	case mins < 1440:
		return fmt.Sprintf("%d hr ago", mins/60)
	default:
		return fmt.Sprintf("%d days ago", mins/1440)
	}
}
