package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"freshtrack-be/internal/models"
	"freshtrack-be/internal/repository"
	"freshtrack-be/internal/utils"

	"golang.org/x/sync/errgroup"
)

// maxRecentActivities bounds the dashboard activity feed.
const maxRecentActivities = 6

// subFetchLimit caps how many per-user fetches run at once.
const subFetchLimit = 8

// DashboardService folds every user's shelf and history collections into
// the dashboard summary.
type DashboardService struct {
	users UserStore
	scans ScanStore
	now   func() time.Time
}

func NewDashboardService(users UserStore, scans ScanStore) *DashboardService {
	return &DashboardService{
		users: users,
		scans: scans,
		now:   time.Now,
	}
}

// userScans is one user's contribution. A failed sub-fetch leaves the
// slices nil, which folds as zero.
type userScans struct {
	email   string
	shelf   []models.Scan
	history []models.Scan
}

// activityEntry pairs a display activity with the anchor instant it is
// sorted on. Sorting happens on the instant, before formatting; the
// formatted "time" string alone cannot order the feed.
type activityEntry struct {
	activity models.Activity
	at       time.Time
}

// Stats recomputes the dashboard summary. Per-user fetch failures are
// logged and contribute zero; only a failure of the user listing itself
// aborts, in which case the handler serves models.FallbackStats.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	results := make([]userScans, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(subFetchLimit)
	for i, u := range users {
		i, u := i, u
		g.Go(func() error {
			results[i] = s.fetchUserScans(gctx, u)
			return nil
		})
	}
	// Workers never return errors; failures degrade to empty slices.
	_ = g.Wait()

	now := s.now()

	var (
		totalShelf   int
		totalHistory int
		allShelf     []models.Scan
		dist         models.RipenessDistribution
		entries      []activityEntry
	)

	for _, r := range results {
		totalShelf += len(r.shelf)
		totalHistory += len(r.history)

		for _, scan := range r.shelf {
			scan.UserEmail = r.email
			scan.ApplyDefaults()
			allShelf = append(allShelf, scan)

			switch utils.ClassifyFreshness(scan.Freshness) {
			case utils.FreshnessUnripe:
				dist.Unripe++
			case utils.FreshnessOverripe:
				dist.Overripe++
			default:
				dist.Ripe++
			}

			entries = append(entries, s.shelfActivity(scan, now))
		}

		for _, scan := range r.history {
			scan.UserEmail = r.email
			entries = append(entries, s.historyActivity(scan, now))
		}
	}

	totalUsers := len(users)
	totalScans := totalShelf + totalHistory

	// All-zero distribution becomes {1,1,1} so pie-chart consumers never
	// divide by zero.
	if dist.Unripe == 0 && dist.Ripe == 0 && dist.Overripe == 0 {
		dist = models.RipenessDistribution{Unripe: 1, Ripe: 1, Overripe: 1}
	}

	newUsers := totalUsers / 5
	if newUsers < 1 {
		newUsers = 1
	}

	average := "0"
	if totalUsers > 0 {
		average = fmt.Sprintf("%.1f", float64(totalScans)/float64(totalUsers))
	}

	return &models.DashboardStats{
		TotalUsers:           totalUsers,
		NewUsers:             newUsers,
		TotalScans:           totalScans,
		TotalShelfItems:      totalShelf,
		TotalHistoryItems:    totalHistory,
		RipenessDistribution: dist,
		WeeklyScans:          utils.WeeklyScanCounts(allShelf, now),
		RecentActivities:     recentActivities(entries),
		UserStats:            models.UserStats{AverageScansPerUser: average},
	}, nil
}

func (s *DashboardService) fetchUserScans(ctx context.Context, u models.User) userScans {
	r := userScans{email: u.DisplayEmail()}

	shelf, err := s.scans.ListForUser(ctx, u.ID, repository.CollectionShelf)
	if err != nil {
		log.Printf("dashboard: shelf fetch failed for user %s: %v", u.ID, err)
	} else {
		r.shelf = shelf
	}

	history, err := s.scans.ListForUser(ctx, u.ID, repository.CollectionHistory)
	if err != nil {
		log.Printf("dashboard: history fetch failed for user %s: %v", u.ID, err)
	} else {
		r.history = history
	}

	return r
}

func (s *DashboardService) shelfActivity(scan models.Scan, now time.Time) activityEntry {
	anchor := firstSet(scan.ScannedDate, scan.AddedAt)
	at, _ := anchor.Time()

	return activityEntry{
		at: at,
		activity: models.Activity{
			User:   scan.UserEmail,
			Action: fmt.Sprintf("Scanned %s - %s", utils.CleanText(scan.Name), utils.CleanText(scan.Freshness)),
			Time:   utils.RelativeTime(anchor, now),
			Type:   "scan",
		},
	}
}

func (s *DashboardService) historyActivity(scan models.Scan, now time.Time) activityEntry {
	anchor := firstSet(scan.ScannedDate, scan.ArchivedAt)
	at, _ := anchor.Time()

	name := utils.CleanText(scan.Name)
	if name == "" {
		name = "Activity"
	}

	return activityEntry{
		at: at,
		activity: models.Activity{
			User:   scan.UserEmail,
			Action: "History: " + name,
			Time:   utils.RelativeTime(anchor, now),
			Type:   "history",
		},
	}
}

func firstSet(fts ...models.FlexTime) models.FlexTime {
	for _, ft := range fts {
		if ft.IsSet() {
			return ft
		}
	}
	return models.FlexTime{}
}

// recentActivities sorts newest-first on the anchor instant and keeps the
// top entries. Entries without an anchor carry the zero time and sink to
// the bottom. The sort is stable so same-instant entries keep fold order.
func recentActivities(entries []activityEntry) []models.Activity {
	if len(entries) == 0 {
		return []models.Activity{models.PlaceholderActivity()}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > maxRecentActivities {
		entries = entries[:maxRecentActivities]
	}

	out := make([]models.Activity, len(entries))
	for i, e := range entries {
		out[i] = e.activity
	}
	return out
}
