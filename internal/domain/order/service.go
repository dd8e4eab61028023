// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/menu"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ItemRequest is one requested order line
type ItemRequest struct {
	MenuItemID uint    `json:"menu_item_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
}

// CreateOrderRequest represents order creation data
type CreateOrderRequest struct {
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	OrderDate     *time.Time    `json:"order_date,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Items         []ItemRequest `json:"items" binding:"required"`
}

// UpdateOrderRequest replaces the order's customer fields and items.
// Totals are recomputed from the new items.
type UpdateOrderRequest struct {
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	OrderDate     *time.Time    `json:"order_date,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Items         []ItemRequest `json:"items" binding:"required"`
}

// ListFilter narrows the order listing
type ListFilter struct {
	Status   Status
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
	Page     int
	Limit    int
}

// generateOrderCode produces the next per-account code in the DH-NNN
// sequence. DH-001 when the account has no orders yet.
func (s *Service) generateOrderCode(tx *gorm.DB, userID uint) (string, error) {
	var count int64
	if err := tx.Model(&Order{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to count orders: %w", err)
	}
	return fmt.Sprintf("DH-%03d", count+1), nil
}

// buildItems validates requested lines against the account's menu and
// prices them. Placing an order never touches ingredient stock; usage
// is projected on the read side instead.
func (s *Service) buildItems(tx *gorm.DB, userID uint, reqs []ItemRequest) ([]OrderItem, float64, error) {
	if len(reqs) == 0 {
		return nil, 0, apperror.NewValidation("items", "order must have at least one item")
	}

	items := make([]OrderItem, 0, len(reqs))
	var total float64
	for _, req := range reqs {
		if math.IsNaN(req.Quantity) || math.IsInf(req.Quantity, 0) || req.Quantity <= 0 {
			return nil, 0, apperror.NewValidation("quantity", "must be a positive number")
		}

		var item menu.MenuItem
		if err := tx.Where("id = ? AND user_id = ?", req.MenuItemID, userID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperror.NewNotFound("menu item", req.MenuItemID)
			}
			return nil, 0, apperror.NewPersistence("check menu item", err)
		}

		subtotal := item.Price * req.Quantity
		items = append(items, OrderItem{
			MenuItemID: req.MenuItemID,
			Quantity:   req.Quantity,
			UnitPrice:  item.Price,
			Subtotal:   subtotal,
		})
		total += subtotal
	}
	return items, total, nil
}

// CreateOrder creates an order with a server-generated code and
// computed totals in one transaction
func (s *Service) CreateOrder(userID uint, req *CreateOrderRequest) (*Order, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	items, total, err := s.buildItems(tx, userID, req.Items)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	code, err := s.generateOrderCode(tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("generate order code", err)
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	ord := &Order{
		UserID:        userID,
		Code:          code,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderDate:     orderDate,
		TotalAmount:   total,
		Status:        StatusPending,
		Notes:         req.Notes,
		Items:         items,
	}

	if err := tx.Create(ord).Error; err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("create order", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperror.NewPersistence("create order", err)
	}

	return s.GetOrder(userID, ord.ID)
}

// GetOrder retrieves one order with its items
func (s *Service) GetOrder(userID, id uint) (*Order, error) {
	var ord Order
	err := s.db.Preload("Items.MenuItem").
		Where("id = ? AND user_id = ?", id, userID).First(&ord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("order", id)
		}
		return nil, apperror.NewPersistence("get order", err)
	}
	return &ord, nil
}

// GetOrders lists the account's orders newest first with pagination
func (s *Service) GetOrders(userID uint, filter *ListFilter) (*ListResponse, error) {
	query := s.db.Model(&Order{}).Where("user_id = ?", userID)

	if filter.Status != "" {
		if !filter.Status.IsValid() {
			return nil, apperror.NewValidation("status", fmt.Sprintf("unknown status '%s'", filter.Status))
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("order_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR customer_name ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperror.NewPersistence("count orders", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var orders []Order
	err := query.Preload("Items.MenuItem").
		Order("order_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, apperror.NewPersistence("list orders", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ListResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// UpdateStatus moves the order along the status flow, rejecting illegal
// transitions
func (s *Service) UpdateStatus(userID, id uint, next Status) (*Order, error) {
	if !next.IsValid() {
		return nil, apperror.NewValidation("status", fmt.Sprintf("unknown status '%s'", next))
	}

	ord, err := s.GetOrder(userID, id)
	if err != nil {
		return nil, err
	}

	if !ord.Status.CanTransitionTo(next) {
		return nil, apperror.NewValidation("status",
			fmt.Sprintf("cannot transition from %s to %s", ord.Status, next))
	}

	if err := s.db.Model(ord).Update("status", next).Error; err != nil {
		return nil, apperror.NewPersistence("update order status", err)
	}
	ord.Status = next
	return ord, nil
}

// UpdateOrder replaces the order's customer fields and items and
// recomputes totals in one transaction
func (s *Service) UpdateOrder(userID, id uint, req *UpdateOrderRequest) (*Order, error) {
	ord, err := s.GetOrder(userID, id)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	items, total, err := s.buildItems(tx, userID, req.Items)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("order_id = ?", ord.ID).Delete(&OrderItem{}).Error; err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("replace order items", err)
	}

	for idx := range items {
		items[idx].OrderID = ord.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("replace order items", err)
	}

	updates := map[string]interface{}{
		"customer_name":  req.CustomerName,
		"customer_phone": req.CustomerPhone,
		"notes":          req.Notes,
		"total_amount":   total,
	}
	if req.OrderDate != nil {
		updates["order_date"] = *req.OrderDate
	}
	if err := tx.Model(&Order{}).Where("id = ?", ord.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("update order", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperror.NewPersistence("update order", err)
	}

	return s.GetOrder(userID, id)
}

// DeleteOrder removes the order and its items
func (s *Service) DeleteOrder(userID, id uint) error {
	ord, err := s.GetOrder(userID, id)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("order_id = ?", ord.ID).Delete(&OrderItem{}).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete order items", err)
	}

	if err := tx.Delete(&Order{}, ord.ID).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete order", err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperror.NewPersistence("delete order", err)
	}
	return nil
}
