// internal/domain/customer/service.go
package customer

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Service computes customer analytics from orders. Read-only.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new customer service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// Stats describes one returning customer. AvgDaysBetweenOrders is nil
// when fewer than two orders exist.
type Stats struct {
	Name                 string    `json:"name"`
	OrderCount           int       `json:"order_count"`
	TotalSpent           float64   `json:"total_spent"`
	FirstOrderDate       time.Time `json:"first_order_date"`
	LastOrderDate        time.Time `json:"last_order_date"`
	AvgDaysBetweenOrders *float64  `json:"avg_days_between_orders"`
}

// titleCase capitalizes each word of a customer name for display
func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ComputeReturnFrequency groups orders by normalized customer name and
// derives per-customer stats, sorted by order count descending.
func ComputeReturnFrequency(orders []order.Order) []Stats {
	type group struct {
		display string
		dates   []time.Time
		total   float64
	}

	groups := make(map[string]*group)
	var keys []string
	for _, o := range orders {
		key := strings.ToLower(strings.TrimSpace(o.CustomerName))
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{display: titleCase(o.CustomerName)}
			groups[key] = g
			keys = append(keys, key)
		}
		g.dates = append(g.dates, o.OrderDate)
		g.total += o.TotalAmount
	}

	stats := make([]Stats, 0, len(groups))
	for _, key := range keys {
		g := groups[key]
		sort.Slice(g.dates, func(a, b int) bool { return g.dates[a].Before(g.dates[b]) })

		st := Stats{
			Name:           g.display,
			OrderCount:     len(g.dates),
			TotalSpent:     g.total,
			FirstOrderDate: g.dates[0],
			LastOrderDate:  g.dates[len(g.dates)-1],
		}
		if len(g.dates) >= 2 {
			span := g.dates[len(g.dates)-1].Sub(g.dates[0]).Hours() / 24
			avg := span / float64(len(g.dates)-1)
			st.AvgDaysBetweenOrders = &avg
		}
		stats = append(stats, st)
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].OrderCount > stats[b].OrderCount
	})
	return stats
}

// ReturnFrequency loads the account's non-cancelled orders and computes
// the return-frequency report
func (s *Service) ReturnFrequency(userID uint) ([]Stats, error) {
	var orders []order.Order
	err := s.db.Where("user_id = ? AND status != ?", userID, order.StatusCancelled).
		Find(&orders).Error
	if err != nil {
		return nil, apperror.NewPersistence("list orders", err)
	}
	return ComputeReturnFrequency(orders), nil
}
