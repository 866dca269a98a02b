package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RipenessDistribution - shelf scan counts per freshness bucket
type RipenessDistribution struct {
	Unripe   int `json:"unripe" bson:"unripe"`
	Ripe     int `json:"ripe" bson:"ripe"`
	Overripe int `json:"overripe" bson:"overripe"`
}

// Activity - one entry in the dashboard's recent-activity feed
type Activity struct {
	User   string `json:"user" bson:"user"`
	Action string `json:"action" bson:"action"`
	Time   string `json:"time" bson:"time"` // already formatted, e.g. "45 mins ago"
	Type   string `json:"type" bson:"type"` // "scan" or "history"
}

// UserStats - per-user derived numbers
type UserStats struct {
	AverageScansPerUser string `json:"averageScansPerUser" bson:"averageScansPerUser"`
}

// DashboardStats - complete dashboard summary, recomputed on every request
type DashboardStats struct {
	TotalUsers           int                  `json:"totalUsers" bson:"totalUsers"`
	NewUsers             int                  `json:"newUsers" bson:"newUsers"`
	TotalScans           int                  `json:"totalScans" bson:"totalScans"`
	TotalShelfItems      int                  `json:"totalShelfItems" bson:"totalShelfItems"`
	TotalHistoryItems    int                  `json:"totalHistoryItems" bson:"totalHistoryItems"`
	RipenessDistribution RipenessDistribution `json:"ripenessDistribution" bson:"ripenessDistribution"`
	WeeklyScans          []int                `json:"weeklyScans" bson:"weeklyScans"`
	RecentActivities     []Activity           `json:"recentActivities" bson:"recentActivities"`
	UserStats            UserStats            `json:"userStats" bson:"userStats"`
}

// PlaceholderActivity keeps the activity feed non-empty for the UI.
func PlaceholderActivity() Activity {
	return Activity{
		User:   "System",
		Action: "No recent activity",
		Time:   "Recent",
		Type:   "scan",
	}
}

// FallbackStats is returned when the user listing itself fails: zeroed
// counts with placeholder distribution and weekly series so chart
// consumers never divide by zero.
func FallbackStats() *DashboardStats {
	return &DashboardStats{
		TotalUsers:           0,
		NewUsers:             0,
		TotalScans:           0,
		TotalShelfItems:      0,
		TotalHistoryItems:    0,
		RipenessDistribution: RipenessDistribution{Unripe: 1, Ripe: 1, Overripe: 1},
		WeeklyScans:          []int{2, 5, 8, 12},
		RecentActivities:     []Activity{PlaceholderActivity()},
		UserStats:            UserStats{AverageScansPerUser: "0"},
	}
}

// StatsSnapshot is a periodically persisted copy of the dashboard summary.
type StatsSnapshot struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TakenAt time.Time          `json:"takenAt" bson:"takenAt"`
	Stats   DashboardStats     `json:"stats" bson:"stats"`
}
