package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"freshtrack-be/internal/models"
	"freshtrack-be/internal/services"

	"github.com/gin-gonic/gin"
)

// SnapshotLister reads persisted dashboard snapshots.
type SnapshotLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.StatsSnapshot, error)
}

type DashboardHandler struct {
	dashboard *services.DashboardService
	snapshots SnapshotLister
}

func NewDashboardHandler(dashboard *services.DashboardService, snapshots SnapshotLister) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		snapshots: snapshots,
	}
}

// GetStats godoc
// @Summary Get dashboard statistics
// @Description Returns user totals, freshness distribution, weekly scan counts and recent activity
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Failure 500 {object} models.StatsResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		log.Println("dashboard stats failed:", err)
		// Chart consumers still get a renderable payload.
		c.JSON(http.StatusInternalServerError, models.StatsResponse{
			Success: false,
			Stats:   models.FallbackStats(),
			Error:   "Failed to load dashboard stats",
		})
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Success: true,
		Stats:   stats,
	})
}

// GetSnapshots godoc
// @Summary List recent dashboard snapshots
// @Tags dashboard
// @Produce json
// @Param limit query int false "Max snapshots" default(24)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/snapshots [get]
func (h *DashboardHandler) GetSnapshots(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	if limit <= 0 || limit > 100 {
		limit = 24
	}

	snapshots, err := h.snapshots.ListRecent(c.Request.Context(), limit)
	if err != nil {
		log.Println("snapshot listing failed:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to load snapshots",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(snapshots),
		"snapshots": snapshots,
	})
}
