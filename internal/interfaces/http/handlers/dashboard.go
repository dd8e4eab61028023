// internal/interfaces/http/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/analytics"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
)

// DashboardHandler handles dashboard statistics endpoints
type DashboardHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *gorm.DB, cache *redis.Client, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analytics.NewService(db, cfg, cache),
		config:           cfg,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard statistics retrieved successfully",
		"data":    stats,
	})
}
