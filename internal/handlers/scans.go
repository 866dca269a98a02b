package handlers

import (
	"log"
	"net/http"
	"strings"

	"freshtrack-be/internal/models"
	"freshtrack-be/internal/services"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	catalog *services.CatalogService
}

func NewScanHandler(catalog *services.CatalogService) *ScanHandler {
	return &ScanHandler{catalog: catalog}
}

// GetAllScans godoc
// @Summary List every user's shelf scans
// @Description All shelf scans with owner email attached, newest first
// @Tags scans
// @Produce json
// @Success 200 {object} models.ScanListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /scans/all [get]
func (h *ScanHandler) GetAllScans(c *gin.Context) {
	scans, err := h.catalog.AllScans(c.Request.Context())
	if err != nil {
		log.Println("scan listing failed:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to load scans",
		})
		return
	}

	if scans == nil {
		scans = []models.Scan{}
	}
	c.JSON(http.StatusOK, models.ScanListResponse{
		Success: true,
		Count:   len(scans),
		Scans:   scans,
	})
}

// SearchScans godoc
// @Summary Fuzzy search shelf scans by produce name
// @Tags scans
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.ScanListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /scans/search [get]
func (h *ScanHandler) SearchScans(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, models.ScanListResponse{Success: true, Count: 0, Scans: []models.Scan{}})
		return
	}

	scans, err := h.catalog.SearchScans(c.Request.Context(), query)
	if err != nil {
		log.Println("scan search failed:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to search scans",
		})
		return
	}

	c.JSON(http.StatusOK, models.ScanListResponse{
		Success: true,
		Count:   len(scans),
		Scans:   scans,
	})
}
