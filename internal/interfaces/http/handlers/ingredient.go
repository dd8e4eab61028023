// internal/interfaces/http/handlers/ingredient.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/analytics"
	"github.com/your-org/restaurant-backend/internal/domain/ingredient"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
)

// IngredientHandler handles ingredient endpoints
type IngredientHandler struct {
	ingredientService *ingredient.Service
	analyticsService  *analytics.Service
	config            *config.Config
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(db *gorm.DB, cache *redis.Client, cfg *config.Config) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredient.NewService(db, cfg),
		analyticsService:  analytics.NewService(db, cfg, cache),
		config:            cfg,
	}
}

// ingredientView decorates an ingredient with its derived classifications
type ingredientView struct {
	ingredient.Ingredient
	StockStatus     ingredient.StockState  `json:"stock_status"`
	ExpiryStatus    ingredient.ExpiryState `json:"expiry_status"`
	DaysUntilExpiry int                    `json:"days_until_expiry"`
	IsSlowMoving    bool                   `json:"is_slow_moving"`
	TotalValue      float64                `json:"total_value"`
}

func toView(ing *ingredient.Ingredient, now time.Time) ingredientView {
	expiry, days := ingredient.ExpiryStatus(ing, now)
	return ingredientView{
		Ingredient:      *ing,
		StockStatus:     ingredient.StockStatus(ing),
		ExpiryStatus:    expiry,
		DaysUntilExpiry: days,
		IsSlowMoving:    ingredient.IsSlowMoving(ing, now),
		TotalValue:      ing.TotalValue(),
	}
}

// CreateIngredient handles POST /ingredients
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ingredient.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ing, err := h.ingredientService.CreateIngredient(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ingredient created successfully",
		"data":    ing,
	})
}

// GetIngredients handles GET /ingredients
func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category := ingredient.Category(c.Query("category"))
	search := c.Query("search")

	ingredients, err := h.ingredientService.GetIngredients(userID, category, search)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	views := make([]ingredientView, 0, len(ingredients))
	for idx := range ingredients {
		views = append(views, toView(&ingredients[idx], now))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredients retrieved successfully",
		"data":    views,
	})
}

// GetIngredient handles GET /ingredients/:id
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ing, err := h.ingredientService.GetIngredient(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredient retrieved successfully",
		"data":    toView(ing, time.Now()),
	})
}

// UpdateIngredient handles PUT /ingredients/:id
func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ingredient.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ing, err := h.ingredientService.UpdateIngredient(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredient updated successfully",
		"data":    ing,
	})
}

// DeleteIngredient handles DELETE /ingredients/:id
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ingredientService.DeleteIngredient(userID, id); err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredient deleted successfully",
	})
}

// Restock handles POST /ingredients/:id/restock
func (h *IngredientHandler) Restock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ingredient.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ing, log, err := h.ingredientService.Restock(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredient restocked successfully",
		"data": gin.H{
			"ingredient": ing,
			"log":        log,
		},
	})
}

// GetMovements handles GET /ingredients/movements
func (h *IngredientHandler) GetMovements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var ingredientID *uint
	if raw := c.Query("ingredient_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid ingredient_id",
			})
			return
		}
		parsed := uint(id)
		ingredientID = &parsed
	}

	since := time.Now().AddDate(0, -1, 0)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid since date, expected YYYY-MM-DD",
			})
			return
		}
		since = parsed
	}

	movements, err := h.ingredientService.MovementHistory(userID, ingredientID, since)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movements retrieved successfully",
		"data":    movements,
	})
}

// GetUsage handles GET /ingredients/usage
func (h *IngredientHandler) GetUsage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	points, err := h.ingredientService.UsageSeries(userID, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usage retrieved successfully",
		"data":    points,
	})
}

// GetSuppliers handles GET /ingredients/suppliers
func (h *IngredientHandler) GetSuppliers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.ingredientService.PreferredSuppliers(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suppliers retrieved successfully",
		"data":    stats,
	})
}
