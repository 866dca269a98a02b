package services

import (
	"context"
	"log"

	"freshtrack-be/internal/repository"

	"github.com/robfig/cron/v3"
)

// StartSnapshotWorker schedules a recurring job that recomputes the
// dashboard summary and persists it as a snapshot. Returns the running
// scheduler so the caller can Stop it on shutdown.
func StartSnapshotWorker(ctx context.Context, schedule string, dashboard *DashboardService, snapshots *repository.SnapshotRepository) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		stats, err := dashboard.Stats(ctx)
		if err != nil {
			log.Println("snapshot worker: failed to compute stats:", err)
			return
		}
		if err := snapshots.Insert(ctx, stats); err != nil {
			log.Println("snapshot worker: failed to store snapshot:", err)
			return
		}
		log.Printf("snapshot worker: stored snapshot (%d users, %d scans)", stats.TotalUsers, stats.TotalScans)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("snapshot worker: scheduled with %q", schedule)
	return c, nil
}
