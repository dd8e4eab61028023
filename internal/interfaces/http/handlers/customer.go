// internal/interfaces/http/handlers/customer.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/customer"
)

// CustomerHandler handles customer analytics endpoints
type CustomerHandler struct {
	customerService *customer.Service
	config          *config.Config
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(db *gorm.DB, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{
		customerService: customer.NewService(db, cfg),
		config:          cfg,
	}
}

// GetReturnFrequency handles GET /customers/return-frequency
func (h *CustomerHandler) GetReturnFrequency(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.customerService.ReturnFrequency(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer return frequency retrieved successfully",
		"data":    stats,
	})
}
