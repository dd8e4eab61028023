// internal/interfaces/http/handlers/finance.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/finance"
)

// FinanceHandler handles financial record endpoints
type FinanceHandler struct {
	financeService *finance.Service
	config         *config.Config
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(db *gorm.DB, cfg *config.Config) *FinanceHandler {
	return &FinanceHandler{
		financeService: finance.NewService(db, cfg),
		config:         cfg,
	}
}

// CreateRecord handles POST /financial-records
func (h *FinanceHandler) CreateRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req finance.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	record, err := h.financeService.CreateRecord(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Financial record created successfully",
		"data":    record,
	})
}

// GetRecords handles GET /financial-records
func (h *FinanceHandler) GetRecords(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.financeService.GetRecords(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Financial records retrieved successfully",
		"data":    records,
	})
}

// UpdateRecord handles PUT /financial-records/:id
func (h *FinanceHandler) UpdateRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req finance.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	record, err := h.financeService.UpdateRecord(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Financial record updated successfully",
		"data":    record,
	})
}

// DeleteRecord handles DELETE /financial-records/:id
func (h *FinanceHandler) DeleteRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.financeService.DeleteRecord(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Financial record deleted successfully",
	})
}

// GetReport handles GET /financial-records/report
func (h *FinanceHandler) GetReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	// Default to the current month
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			from = parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			to = parsed
		}
	}

	lines, err := h.financeService.Report(userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Financial report retrieved successfully",
		"data":    lines,
	})
}
