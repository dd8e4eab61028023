// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/analytics"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
	"github.com/your-org/restaurant-backend/internal/pkg/pdf"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService     *order.Service
	analyticsService *analytics.Service
	pdfService       *pdf.Service
	config           *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, cache *redis.Client, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orderService:     order.NewService(db, cfg),
		analyticsService: analytics.NewService(db, cfg, cache),
		pdfService:       pdf.NewService(cfg),
		config:           cfg,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ord, err := h.orderService.CreateOrder(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    ord,
	})
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	filter := &order.ListFilter{
		Status: order.Status(c.Query("status")),
		Search: c.Query("search"),
	}
	if raw := c.Query("page"); raw != "" {
		filter.Page, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("date_from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DateFrom = &parsed
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DateTo = &parsed
		}
	}

	resp, err := h.orderService.GetOrders(userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    resp,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.orderService.GetOrder(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    ord,
	})
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req order.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ord, err := h.orderService.UpdateOrder(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"data":    ord,
	})
}

// UpdateOrderStatus handles PATCH /orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status order.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ord, err := h.orderService.UpdateStatus(userID, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    ord,
	})
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(userID, id); err != nil {
		respondError(c, err)
		return
	}
	h.analyticsService.InvalidateStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// GetReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.orderService.GetOrder(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := h.pdfService.GenerateReceipt(ord)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", ord.Code)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
