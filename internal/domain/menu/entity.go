// internal/domain/menu/entity.go
package menu

import (
	"time"

	"github.com/your-org/restaurant-backend/internal/domain/ingredient"
)

// Meal identifies a weekly-plan slot
type Meal string

const (
	MealLunch  Meal = "lunch"
	MealDinner Meal = "dinner"
)

// IsValid reports whether the meal code is recognized
func (m Meal) IsValid() bool {
	return m == MealLunch || m == MealDinner
}

// MenuItem represents a dish the restaurant sells
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(14,2);not null;default:0" json:"price"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Ingredients []MenuItemIngredient `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ingredients,omitempty"`
}

// MenuItemIngredient links a menu item to an ingredient with the
// quantity consumed per one unit of the dish.
type MenuItemIngredient struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	MenuItemID     uint    `gorm:"not null;index" json:"menu_item_id"`
	IngredientID   uint    `gorm:"not null;index" json:"ingredient_id"`
	QuantityNeeded float64 `gorm:"type:decimal(12,3);not null;default:0" json:"quantity_needed"`

	// Relationships
	Ingredient ingredient.Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// MenuPlan assigns a menu item to a weekday meal slot
type MenuPlan struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	DayOfWeek  int       `gorm:"not null" json:"day_of_week"` // 0 = Sunday
	Meal       Meal      `gorm:"not null;size:10" json:"meal"`
	MenuItemID uint      `gorm:"not null;index" json:"menu_item_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_item,omitempty"`
}
