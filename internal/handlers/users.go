package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"freshtrack-be/internal/models"
	"freshtrack-be/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	catalog *services.CatalogService
}

func NewUserHandler(catalog *services.CatalogService) *UserHandler {
	return &UserHandler{catalog: catalog}
}

// GetAllUsers godoc
// @Summary List all users with scan counts
// @Tags users
// @Produce json
// @Success 200 {object} models.UserListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/all [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.catalog.UsersWithCounts(c.Request.Context())
	if err != nil {
		log.Println("user listing failed:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to load users",
		})
		return
	}

	c.JSON(http.StatusOK, models.UserListResponse{
		Success: true,
		Count:   len(users),
		Users:   users,
	})
}

// GetUserShelf godoc
// @Summary List one user's shelf documents
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.ScanListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{userId}/shelf [get]
func (h *UserHandler) GetUserShelf(c *gin.Context) {
	h.listScans(c, h.catalog.UserShelf)
}

// GetUserHistory godoc
// @Summary List one user's history documents
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.ScanListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{userId}/history [get]
func (h *UserHandler) GetUserHistory(c *gin.Context) {
	h.listScans(c, h.catalog.UserHistory)
}

func (h *UserHandler) listScans(c *gin.Context, fetch func(ctx context.Context, userID string) ([]models.Scan, error)) {
	userID := c.Param("userId")

	scans, err := fetch(c.Request.Context(), userID)
	if err != nil {
		log.Printf("scan listing failed for user %s: %v", userID, err)
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

// DeleteUser godoc
// @Summary Delete a user and all their data
// @Description Removes shelf documents, history documents, the user document and the identity-provider account
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.DeleteUserResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/delete/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")

	shelfDeleted, historyDeleted, err := h.catalog.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Error:   "User not found",
			})
			return
		}
		log.Printf("user deletion failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to delete user",
		})
		return
	}

	c.JSON(http.StatusOK, models.DeleteUserResponse{
		Success:        true,
		Message:        "User " + userID + " deleted",
		DeletedShelf:   shelfDeleted,
		DeletedHistory: historyDeleted,
	})
}
