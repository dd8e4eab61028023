// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/menu"
)

// MenuHandler handles menu item and weekly plan endpoints
type MenuHandler struct {
	menuService *menu.Service
	config      *config.Config
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(db *gorm.DB, cfg *config.Config) *MenuHandler {
	return &MenuHandler{
		menuService: menu.NewService(db, cfg),
		config:      cfg,
	}
}

// CreateMenuItem handles POST /menu-items
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req menu.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.menuService.CreateMenuItem(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item created successfully",
		"data":    item,
	})
}

// GetMenuItems handles GET /menu-items
func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") == "true"

	items, err := h.menuService.GetMenuItems(userID, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu items retrieved successfully",
		"data":    items,
	})
}

// GetMenuItem handles GET /menu-items/:id
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.menuService.GetMenuItem(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item retrieved successfully",
		"data":    item,
	})
}

// UpdateMenuItem handles PUT /menu-items/:id
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req menu.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.menuService.UpdateMenuItem(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

// DeleteMenuItem handles DELETE /menu-items/:id
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.menuService.DeleteMenuItem(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item deleted successfully",
	})
}

// GetWeekPlan handles GET /menu-plan
func (h *MenuHandler) GetWeekPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plans, err := h.menuService.GetWeekPlan(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu plan retrieved successfully",
		"data":    plans,
	})
}

// SetPlanSlot handles PUT /menu-plan
func (h *MenuHandler) SetPlanSlot(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req menu.PlanSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	plan, err := h.menuService.SetPlanSlot(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu plan updated successfully",
		"data":    plan,
	})
}
