// internal/interfaces/http/handlers/assistant.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/assistant"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
)

// AssistantHandler exposes the assistant tool functions over HTTP
type AssistantHandler struct {
	assistantService *assistant.Service
	config           *config.Config
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(db *gorm.DB, cache *redis.Client, cfg *config.Config) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistant.NewService(db, cfg, cache),
		config:           cfg,
	}
}

// ExecuteTool handles POST /assistant/tools/:name
func (h *AssistantHandler) ExecuteTool(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req assistant.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.assistantService.ExecuteTool(c.Request.Context(), userID, c.Param("name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tool executed successfully",
		"data":    result,
	})
}
