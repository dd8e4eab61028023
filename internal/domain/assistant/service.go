// internal/domain/assistant/service.go
package assistant

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/analytics"
	"github.com/your-org/restaurant-backend/internal/domain/ingredient"
	"github.com/your-org/restaurant-backend/internal/domain/menu"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Tool names exposed to the conversational layer. The model call itself
// lives outside this service; these are the data functions it invokes.
const (
	ToolSearchMenuItems   = "search_menu_items"
	ToolSearchIngredients = "search_ingredients"
	ToolSearchOrders      = "search_orders"
	ToolGetStatistics     = "get_statistics"
)

// Service dispatches assistant tool calls to the domain services
type Service struct {
	menu       *menu.Service
	ingredient *ingredient.Service
	order      *order.Service
	analytics  *analytics.Service
}

// NewService creates a new assistant service
func NewService(db *gorm.DB, cfg *config.Config, cache *redis.Client) *Service {
	return &Service{
		menu:       menu.NewService(db, cfg),
		ingredient: ingredient.NewService(db, cfg),
		order:      order.NewService(db, cfg),
		analytics:  analytics.NewService(db, cfg, cache),
	}
}

// ToolRequest carries the arguments of one tool call
type ToolRequest struct {
	Query    string     `json:"query,omitempty"`
	Category string     `json:"category,omitempty"`
	Status   string     `json:"status,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
}

// ExecuteTool runs the named tool for the account and returns its data
func (s *Service) ExecuteTool(ctx context.Context, userID uint, name string, req *ToolRequest) (interface{}, error) {
	switch name {
	case ToolSearchMenuItems:
		items, err := s.menu.GetMenuItems(userID, false)
		if err != nil {
			return nil, err
		}
		if req.Query == "" {
			return items, nil
		}
		return filterMenuItems(items, req.Query), nil

	case ToolSearchIngredients:
		return s.ingredient.GetIngredients(userID, ingredient.Category(req.Category), req.Query)

	case ToolSearchOrders:
		resp, err := s.order.GetOrders(userID, &order.ListFilter{
			Status:   order.Status(req.Status),
			Search:   req.Query,
			DateFrom: req.DateFrom,
			DateTo:   req.DateTo,
		})
		if err != nil {
			return nil, err
		}
		return resp.Orders, nil

	case ToolGetStatistics:
		return s.analytics.GetDashboardStats(ctx, userID)

	default:
		return nil, apperror.NewValidation("tool", "unknown tool '"+name+"'")
	}
}

func filterMenuItems(items []menu.MenuItem, query string) []menu.MenuItem {
	matched := make([]menu.MenuItem, 0, len(items))
	for _, item := range items {
		if containsFold(item.Name, query) || containsFold(item.Description, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
