// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Service computes dashboard aggregations. Read-only over the other
// domains' tables; results are cached briefly in Redis.
type Service struct {
	db     *gorm.DB
	config *config.Config
	cache  *redis.Client
}

// NewService creates a new analytics service. The cache may be nil.
func NewService(db *gorm.DB, cfg *config.Config, cache *redis.Client) *Service {
	return &Service{
		db:     db,
		config: cfg,
		cache:  cache,
	}
}

const statsCacheTTL = 60 * time.Second

// DashboardStats represents the dashboard summary
type DashboardStats struct {
	// Inventory metrics
	TotalInventoryValue float64 `json:"total_inventory_value"`
	IngredientCount     int64   `json:"ingredient_count"`
	LowStockCount       int64   `json:"low_stock_count"`
	OutOfStockCount     int64   `json:"out_of_stock_count"`
	ExpiringSoonCount   int64   `json:"expiring_soon_count"`

	// Order metrics
	TotalOrders    int64   `json:"total_orders"`
	OrdersToday    int64   `json:"orders_today"`
	MonthlyRevenue float64 `json:"monthly_revenue"`

	// Monthly revenue less the value of stock on hand
	Profit float64 `json:"profit"`

	CategoryBreakdown []CategoryStats `json:"category_breakdown"`
	TopMenuItems      []MenuItemSales `json:"top_menu_items"`
}

// CategoryStats is the per-category inventory grouping
type CategoryStats struct {
	Category   string  `json:"category"`
	ItemCount  int64   `json:"item_count"`
	TotalValue float64 `json:"total_value"`
}

// MenuItemSales is one row of the top-selling menu items
type MenuItemSales struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Sold       float64 `json:"sold"`
	Revenue    float64 `json:"revenue"`
}

// GetDashboardStats assembles the dashboard summary for the account
func (s *Service) GetDashboardStats(ctx context.Context, userID uint) (*DashboardStats, error) {
	cacheKey := fmt.Sprintf("dashboard:stats:%d", userID)
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}

	err := s.db.Raw(`
		SELECT COALESCE(SUM(current_stock * cost_per_unit), 0) AS total_value,
		       COUNT(*) AS ingredient_count,
		       COUNT(*) FILTER (WHERE current_stock = 0) AS out_count,
		       COUNT(*) FILTER (WHERE current_stock > 0 AND current_stock <= min_stock) AS low_count,
		       COUNT(*) FILTER (WHERE expiration_date IS NOT NULL
		                          AND expiration_date >= CURRENT_DATE
		                          AND expiration_date <= CURRENT_DATE + INTERVAL '7 days') AS expiring_count
		FROM ingredients
		WHERE user_id = ?`, userID).
		Row().Scan(&stats.TotalInventoryValue, &stats.IngredientCount,
		&stats.OutOfStockCount, &stats.LowStockCount, &stats.ExpiringSoonCount)
	if err != nil {
		return nil, apperror.NewPersistence("aggregate inventory", err)
	}

	err = s.db.Raw(`
		SELECT COUNT(*) AS total_orders,
		       COUNT(*) FILTER (WHERE order_date::date = CURRENT_DATE) AS orders_today,
		       COALESCE(SUM(total_amount) FILTER (
		           WHERE status != 'cancelled'
		             AND date_trunc('month', order_date) = date_trunc('month', CURRENT_DATE)), 0) AS monthly_revenue
		FROM orders
		WHERE user_id = ?`, userID).
		Row().Scan(&stats.TotalOrders, &stats.OrdersToday, &stats.MonthlyRevenue)
	if err != nil {
		return nil, apperror.NewPersistence("aggregate orders", err)
	}

	stats.Profit = stats.MonthlyRevenue - stats.TotalInventoryValue

	err = s.db.Raw(`
		SELECT category, COUNT(*) AS item_count,
		       COALESCE(SUM(current_stock * cost_per_unit), 0) AS total_value
		FROM ingredients
		WHERE user_id = ?
		GROUP BY category
		ORDER BY total_value DESC`, userID).
		Scan(&stats.CategoryBreakdown).Error
	if err != nil {
		return nil, apperror.NewPersistence("group categories", err)
	}

	err = s.db.Raw(`
		SELECT mi.id AS menu_item_id, mi.name,
		       COALESCE(SUM(oi.quantity), 0) AS sold,
		       COALESCE(SUM(oi.subtotal), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.user_id = ? AND o.status != 'cancelled'
		GROUP BY mi.id, mi.name
		ORDER BY sold DESC
		LIMIT 5`, userID).
		Scan(&stats.TopMenuItems).Error
	if err != nil {
		return nil, apperror.NewPersistence("rank menu items", err)
	}

	if s.cache != nil {
		// Cache failures are not surfaced; the stats were computed
		_ = s.cache.SetJSON(ctx, cacheKey, stats, statsCacheTTL)
	}

	return stats, nil
}

// InvalidateStats drops the cached dashboard after a mutation
func (s *Service) InvalidateStats(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, fmt.Sprintf("dashboard:stats:%d", userID))
}
