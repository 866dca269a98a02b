package handlers

import (
	"log"
	"net/http"

	"freshtrack-be/internal/database"
	"freshtrack-be/internal/models"
	"freshtrack-be/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	debugUserLimit = 3
	debugScanLimit = 2
)

type DebugHandler struct {
	db    *database.MongoDB
	users *repository.UserRepository
	scans *repository.ScanRepository
}

func NewDebugHandler(db *database.MongoDB, users *repository.UserRepository, scans *repository.ScanRepository) *DebugHandler {
	return &DebugHandler{
		db:    db,
		users: users,
		scans: scans,
	}
}

type debugUser struct {
	models.User
	ShelfSamples   []models.Scan `json:"shelfSamples"`
	HistorySamples []models.Scan `json:"historySamples"`
}

// GetDatabase godoc
// @Summary Inspect database contents
// @Description Lists collections and a few sample users with sample scan documents
// @Tags debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /debug/database [get]
func (h *DebugHandler) GetDatabase(c *gin.Context) {
	ctx := c.Request.Context()

	collections, err := h.db.Database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.Println("debug: collection listing failed:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to inspect database",
		})
		return
	}

	users, err := h.users.Sample(ctx, debugUserLimit)
	if err != nil {
		log.Println("debug: user sampling failed:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to sample users",
		})
		return
	}

	samples := make([]debugUser, 0, len(users))
	for _, u := range users {
		du := debugUser{User: u}

		if shelf, err := h.scans.SampleForUser(ctx, u.ID, repository.CollectionShelf, debugScanLimit); err != nil {
			log.Printf("debug: shelf sampling failed for %s: %v", u.ID, err)
		} else {
			du.ShelfSamples = shelf
		}
		if history, err := h.scans.SampleForUser(ctx, u.ID, repository.CollectionHistory, debugScanLimit); err != nil {
			log.Printf("debug: history sampling failed for %s: %v", u.ID, err)
		} else {
			du.HistorySamples = history
		}

		samples = append(samples, du)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"collections": collections,
		"sampleUsers": samples,
	})
}
