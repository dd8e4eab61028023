// internal/domain/ingredient/service.go
package ingredient

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Service handles ingredient inventory business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new ingredient service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateIngredientRequest represents ingredient creation data
type CreateIngredientRequest struct {
	Code             string     `json:"code" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	Category         Category   `json:"category" binding:"required"`
	Unit             Unit       `json:"unit" binding:"required"`
	CurrentStock     float64    `json:"current_stock"`
	MinStock         float64    `json:"min_stock"`
	CostPerUnit      float64    `json:"cost_per_unit"`
	LastPurchaseDate *time.Time `json:"last_purchase_date,omitempty"`
	ManufactureDate  *time.Time `json:"manufacture_date,omitempty"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	SupplierInfo     string     `json:"supplier_info,omitempty"`
}

// UpdateIngredientRequest represents a full-field overwrite. No
// recomputation happens; the caller owns consistency.
type UpdateIngredientRequest struct {
	Code             string     `json:"code" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	Category         Category   `json:"category" binding:"required"`
	Unit             Unit       `json:"unit" binding:"required"`
	CurrentStock     float64    `json:"current_stock"`
	MinStock         float64    `json:"min_stock"`
	CostPerUnit      float64    `json:"cost_per_unit"`
	LastPurchaseDate *time.Time `json:"last_purchase_date,omitempty"`
	ManufactureDate  *time.Time `json:"manufacture_date,omitempty"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	SupplierInfo     string     `json:"supplier_info,omitempty"`
}

// RestockRequest represents a received lot to merge into stock.
// A nil CostPerUnit keeps the ingredient's current price.
type RestockRequest struct {
	Quantity     float64    `json:"quantity" binding:"required"`
	CostPerUnit  *float64   `json:"cost_per_unit,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Reference    string     `json:"reference,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// validateAmount rejects non-finite and negative numeric input instead
// of coercing it to zero.
func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperror.NewValidation(field, "must be a finite number")
	}
	if v < 0 {
		return apperror.NewValidation(field, "must not be negative")
	}
	return nil
}

func validateEnums(category Category, unit Unit) error {
	if !category.IsValid() {
		return apperror.NewValidation("category", fmt.Sprintf("unknown category code '%s'", category))
	}
	if !unit.IsValid() {
		return apperror.NewValidation("unit", fmt.Sprintf("unknown unit code '%s'", unit))
	}
	return nil
}

// CreateIngredient inserts a new ingredient. The supplied stock and cost
// become the weighted-average baseline.
func (s *Service) CreateIngredient(userID uint, req *CreateIngredientRequest) (*Ingredient, error) {
	if err := validateEnums(req.Category, req.Unit); err != nil {
		return nil, err
	}
	if err := validateAmount("current_stock", req.CurrentStock); err != nil {
		return nil, err
	}
	if err := validateAmount("min_stock", req.MinStock); err != nil {
		return nil, err
	}
	if err := validateAmount("cost_per_unit", req.CostPerUnit); err != nil {
		return nil, err
	}

	// Check if code already exists for this account
	var existing Ingredient
	if err := s.db.Where("user_id = ? AND code = ?", userID, req.Code).First(&existing).Error; err == nil {
		return nil, apperror.NewValidation("code", fmt.Sprintf("ingredient with code '%s' already exists", req.Code))
	}

	ing := &Ingredient{
		UserID:           userID,
		Code:             req.Code,
		Name:             req.Name,
		Category:         req.Category,
		Unit:             req.Unit,
		CurrentStock:     req.CurrentStock,
		MinStock:         req.MinStock,
		CostPerUnit:      req.CostPerUnit,
		LastPurchaseDate: req.LastPurchaseDate,
		ManufactureDate:  req.ManufactureDate,
		ExpirationDate:   req.ExpirationDate,
		SupplierInfo:     req.SupplierInfo,
	}

	if err := s.db.Create(ing).Error; err != nil {
		return nil, apperror.NewPersistence("create ingredient", err)
	}

	return ing, nil
}

// GetIngredient retrieves one ingredient scoped to the account
func (s *Service) GetIngredient(userID, id uint) (*Ingredient, error) {
	var ing Ingredient
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&ing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("ingredient", id)
		}
		return nil, apperror.NewPersistence("get ingredient", err)
	}
	return &ing, nil
}

// GetIngredients lists the account's ingredients ordered by name, with
// optional category filter and name/code search.
func (s *Service) GetIngredients(userID uint, category Category, search string) ([]Ingredient, error) {
	query := s.db.Where("user_id = ?", userID)
	if category != "" {
		if !category.IsValid() {
			return nil, apperror.NewValidation("category", fmt.Sprintf("unknown category code '%s'", category))
		}
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}

	var ingredients []Ingredient
	if err := query.Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, apperror.NewPersistence("list ingredients", err)
	}
	return ingredients, nil
}

// UpdateIngredient overwrites every field, including stock and cost,
// bypassing the weighted-average logic. Admin escape hatch.
func (s *Service) UpdateIngredient(userID, id uint, req *UpdateIngredientRequest) (*Ingredient, error) {
	if err := validateEnums(req.Category, req.Unit); err != nil {
		return nil, err
	}
	if err := validateAmount("current_stock", req.CurrentStock); err != nil {
		return nil, err
	}
	if err := validateAmount("min_stock", req.MinStock); err != nil {
		return nil, err
	}
	if err := validateAmount("cost_per_unit", req.CostPerUnit); err != nil {
		return nil, err
	}

	ing, err := s.GetIngredient(userID, id)
	if err != nil {
		return nil, err
	}

	ing.Code = req.Code
	ing.Name = req.Name
	ing.Category = req.Category
	ing.Unit = req.Unit
	ing.CurrentStock = req.CurrentStock
	ing.MinStock = req.MinStock
	ing.CostPerUnit = req.CostPerUnit
	ing.LastPurchaseDate = req.LastPurchaseDate
	ing.ManufactureDate = req.ManufactureDate
	ing.ExpirationDate = req.ExpirationDate
	ing.SupplierInfo = req.SupplierInfo

	if err := s.db.Save(ing).Error; err != nil {
		return nil, apperror.NewPersistence("update ingredient", err)
	}

	return ing, nil
}

// DeleteIngredient removes the ingredient, its recipe links, and its
// movement logs in one transaction.
func (s *Service) DeleteIngredient(userID, id uint) error {
	ing, err := s.GetIngredient(userID, id)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("DELETE FROM menu_item_ingredients WHERE ingredient_id = ?", ing.ID).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete recipe links", err)
	}

	if err := tx.Where("ingredient_id = ?", ing.ID).Delete(&InventoryLog{}).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete inventory logs", err)
	}

	if err := tx.Delete(ing).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete ingredient", err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperror.NewPersistence("delete ingredient", err)
	}
	return nil
}

// Restock merges a received lot into stock with cost averaging. The
// ingredient update and the ledger append are one transaction. The log
// row stores the lot's own price, not the recomputed average. Replaying
// the same request is not idempotent.
func (s *Service) Restock(userID, id uint, req *RestockRequest) (*Ingredient, *InventoryLog, error) {
	if math.IsNaN(req.Quantity) || math.IsInf(req.Quantity, 0) || req.Quantity <= 0 {
		return nil, nil, apperror.NewValidation("quantity", "must be a positive number")
	}
	if req.CostPerUnit != nil {
		if err := validateAmount("cost_per_unit", *req.CostPerUnit); err != nil {
			return nil, nil, err
		}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var ing Ingredient
	if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&ing).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperror.NewNotFound("ingredient", id)
		}
		return nil, nil, apperror.NewPersistence("get ingredient", err)
	}

	// Keep-old-price semantics when no lot price is given
	lotCost := ing.CostPerUnit
	if req.CostPerUnit != nil {
		lotCost = *req.CostPerUnit
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	ing.CostPerUnit = WeightedAverageCost(ing.CurrentStock, ing.CostPerUnit, req.Quantity, lotCost)
	ing.CurrentStock += req.Quantity
	ing.LastPurchaseDate = &purchaseDate

	if err := tx.Save(&ing).Error; err != nil {
		tx.Rollback()
		return nil, nil, apperror.NewPersistence("update ingredient", err)
	}

	log := &InventoryLog{
		UserID:          userID,
		IngredientID:    ing.ID,
		TransactionType: TransactionRestock,
		Quantity:        req.Quantity,
		Unit:            ing.Unit,
		CostPerUnit:     lotCost,
		Reference:       req.Reference,
		Notes:           req.Notes,
		CreatedAt:       purchaseDate,
	}

	if err := tx.Create(log).Error; err != nil {
		tx.Rollback()
		return nil, nil, apperror.NewPersistence("append inventory log", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, apperror.NewPersistence("restock", err)
	}

	return &ing, log, nil
}

// exportRow is the raw projection of one order item through a recipe link
type exportRow struct {
	IngredientID   uint
	IngredientName string
	Unit           Unit
	CostPerUnit    float64
	QuantityNeeded float64
	ItemQuantity   float64
	OrderCode      string
	OrderDate      time.Time
}

const exportQuery = `
	SELECT i.id AS ingredient_id, i.name AS ingredient_name, i.unit, i.cost_per_unit,
	       mii.quantity_needed, oi.quantity AS item_quantity, o.code AS order_code, o.order_date
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	JOIN menu_item_ingredients mii ON mii.menu_item_id = oi.menu_item_id
	JOIN ingredients i ON i.id = mii.ingredient_id
	WHERE o.user_id = ? AND o.status != 'cancelled' AND o.order_date >= ?`

// MovementHistory reconstructs the full movement ledger for the account:
// persisted restock rows, a synthetic initial-import row per ingredient,
// and synthetic export rows projected from orders through recipe links.
// Export rows are read-only and never touch current_stock. Results are
// newest first.
func (s *Service) MovementHistory(userID uint, ingredientID *uint, since time.Time) ([]Movement, error) {
	query := s.db.Where("user_id = ?", userID)
	if ingredientID != nil {
		query = query.Where("id = ?", *ingredientID)
	}
	var ingredients []Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, apperror.NewPersistence("list ingredients", err)
	}

	logQuery := s.db.Where("user_id = ? AND created_at >= ?", userID, since)
	if ingredientID != nil {
		logQuery = logQuery.Where("ingredient_id = ?", *ingredientID)
	}
	var logs []InventoryLog
	if err := logQuery.Find(&logs).Error; err != nil {
		return nil, apperror.NewPersistence("list inventory logs", err)
	}

	// Restock totals are unwindowed: a restock logged with a purchase
	// date before the window is not displayed, but its quantity must
	// still be subtracted from the initial-import row.
	restocked, err := s.restockTotals(userID, ingredientID)
	if err != nil {
		return nil, err
	}

	sql := exportQuery
	args := []interface{}{userID, since}
	if ingredientID != nil {
		sql += " AND i.id = ?"
		args = append(args, *ingredientID)
	}
	var exports []exportRow
	if err := s.db.Raw(sql, args...).Scan(&exports).Error; err != nil {
		return nil, apperror.NewPersistence("project consumption", err)
	}

	return mergeMovements(ingredients, logs, exports, restocked, since), nil
}

// restockTotals sums all persisted restock quantities per ingredient,
// regardless of any date window.
func (s *Service) restockTotals(userID uint, ingredientID *uint) (map[uint]float64, error) {
	var rows []struct {
		IngredientID uint
		Total        float64
	}
	query := s.db.Model(&InventoryLog{}).
		Select("ingredient_id, COALESCE(SUM(quantity), 0) AS total").
		Where("user_id = ? AND transaction_type = ?", userID, TransactionRestock)
	if ingredientID != nil {
		query = query.Where("ingredient_id = ?", *ingredientID)
	}
	if err := query.Group("ingredient_id").Scan(&rows).Error; err != nil {
		return nil, apperror.NewPersistence("sum restocks", err)
	}

	totals := make(map[uint]float64, len(rows))
	for _, row := range rows {
		totals[row.IngredientID] = row.Total
	}
	return totals, nil
}

// mergeMovements assembles the unified ledger from persisted restock
// rows, a synthetic initial-import row per ingredient, and export rows
// projected from orders. Inputs are never mutated; the projection is
// read-only. Results are newest first.
func mergeMovements(ingredients []Ingredient, logs []InventoryLog, exports []exportRow, restocked map[uint]float64, since time.Time) []Movement {
	byID := make(map[uint]*Ingredient, len(ingredients))
	for idx := range ingredients {
		byID[ingredients[idx].ID] = &ingredients[idx]
	}

	movements := make([]Movement, 0, len(ingredients)+len(logs)+len(exports))

	for _, log := range logs {
		name := ""
		if ing, ok := byID[log.IngredientID]; ok {
			name = ing.Name
		}
		movements = append(movements, Movement{
			IngredientID:   log.IngredientID,
			IngredientName: name,
			Type:           log.TransactionType,
			Quantity:       log.Quantity,
			Unit:           log.Unit,
			CostPerUnit:    log.CostPerUnit,
			Reference:      log.Reference,
			Notes:          log.Notes,
			Date:           log.CreatedAt,
		})
	}

	// The initial import is the stock not accounted for by restocks.
	// Orders never decrement stock, so the remainder is the baseline.
	for _, ing := range ingredients {
		if ing.CreatedAt.Before(since) {
			continue
		}
		initial := ing.CurrentStock - restocked[ing.ID]
		if initial < 0 {
			initial = 0
		}
		movements = append(movements, Movement{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Type:           TransactionInitial,
			Quantity:       initial,
			Unit:           ing.Unit,
			CostPerUnit:    ing.CostPerUnit,
			Notes:          "Initial import",
			Date:           ing.CreatedAt,
		})
	}

	for _, row := range exports {
		movements = append(movements, Movement{
			IngredientID:   row.IngredientID,
			IngredientName: row.IngredientName,
			Type:           TransactionExport,
			Quantity:       row.QuantityNeeded * row.ItemQuantity,
			Unit:           row.Unit,
			CostPerUnit:    row.CostPerUnit,
			Reference:      row.OrderCode,
			Date:           row.OrderDate,
		})
	}

	sort.SliceStable(movements, func(a, b int) bool {
		return movements[a].Date.After(movements[b].Date)
	})

	return movements
}

// UsageSeries buckets projected consumption per calendar day for the
// trailing window, oldest day first.
func (s *Service) UsageSeries(userID uint, days int) ([]UsagePoint, error) {
	if days <= 0 {
		days = 7
	}
	since := localDate(time.Now()).AddDate(0, 0, -(days - 1))

	var exports []exportRow
	if err := s.db.Raw(exportQuery, userID, since).Scan(&exports).Error; err != nil {
		return nil, apperror.NewPersistence("project consumption", err)
	}

	buckets := make(map[string]float64)
	for _, row := range exports {
		key := row.OrderDate.Format("2006-01-02")
		buckets[key] += row.QuantityNeeded * row.ItemQuantity
	}

	points := make([]UsagePoint, 0, days)
	for d := 0; d < days; d++ {
		key := since.AddDate(0, 0, d).Format("2006-01-02")
		points = append(points, UsagePoint{Date: key, Quantity: buckets[key]})
	}
	return points, nil
}

// PreferredSuppliers groups the account's ingredients by supplier,
// sorted descending by total stock value. Blank suppliers are skipped.
func (s *Service) PreferredSuppliers(userID uint) ([]SupplierStats, error) {
	var stats []SupplierStats
	err := s.db.Raw(`
		SELECT supplier_info AS supplier, COUNT(*) AS item_count,
		       COALESCE(SUM(current_stock * cost_per_unit), 0) AS total_value
		FROM ingredients
		WHERE user_id = ? AND supplier_info != ''
		GROUP BY supplier_info
		ORDER BY total_value DESC`, userID).Scan(&stats).Error
	if err != nil {
		return nil, apperror.NewPersistence("group suppliers", err)
	}
	return stats, nil
}
