// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/restaurant-backend/internal/domain/menu"
)

// Status represents the lifecycle state of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether the status code is recognized
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// legalTransitions maps each status to the states it may move to.
// Delivered and cancelled are terminal.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the move from s to next is legal
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order represents a customer order
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Code          string    `gorm:"not null;size:20;index" json:"code"`
	CustomerName  string    `gorm:"not null;size:200" json:"customer_name"`
	CustomerPhone string    `gorm:"size:20" json:"customer_phone"`
	OrderDate     time.Time `gorm:"not null;index" json:"order_date"`
	TotalAmount   float64   `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount"`
	Status        Status    `gorm:"not null;size:20;default:'pending';index" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	MenuItemID uint    `gorm:"not null;index" json:"menu_item_id"`
	Quantity   float64 `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(14,2);not null" json:"unit_price"`
	Subtotal   float64 `gorm:"type:decimal(14,2);not null" json:"subtotal"`

	// Relationships
	MenuItem menu.MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// Pagination describes a page of list results
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ListResponse is a page of orders
type ListResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}
