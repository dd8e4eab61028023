// internal/domain/menu/service.go
package menu

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/ingredient"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Service handles menu business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new menu service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// RecipeLinkRequest is one per-unit ingredient requirement of a dish
type RecipeLinkRequest struct {
	IngredientID   uint    `json:"ingredient_id" binding:"required"`
	QuantityNeeded float64 `json:"quantity_needed"`
}

// MenuItemRequest represents menu item creation or update data. On
// update the recipe links replace the existing set.
type MenuItemRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description,omitempty"`
	Price       float64             `json:"price"`
	Active      *bool               `json:"active,omitempty"`
	Ingredients []RecipeLinkRequest `json:"ingredients,omitempty"`
}

// PlanSlotRequest assigns or clears a weekly-plan slot. A zero
// MenuItemID clears the slot.
type PlanSlotRequest struct {
	DayOfWeek  int  `json:"day_of_week"`
	Meal       Meal `json:"meal" binding:"required"`
	MenuItemID uint `json:"menu_item_id"`
}

func (s *Service) validateLinks(userID uint, links []RecipeLinkRequest) error {
	for _, link := range links {
		if math.IsNaN(link.QuantityNeeded) || math.IsInf(link.QuantityNeeded, 0) || link.QuantityNeeded < 0 {
			return apperror.NewValidation("quantity_needed", "must be a non-negative number")
		}
		var ing ingredient.Ingredient
		if err := s.db.Where("id = ? AND user_id = ?", link.IngredientID, userID).First(&ing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFound("ingredient", link.IngredientID)
			}
			return apperror.NewPersistence("check ingredient", err)
		}
	}
	return nil
}

// CreateMenuItem inserts a menu item with its recipe links
func (s *Service) CreateMenuItem(userID uint, req *MenuItemRequest) (*MenuItem, error) {
	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) || req.Price < 0 {
		return nil, apperror.NewValidation("price", "must be a non-negative number")
	}
	if err := s.validateLinks(userID, req.Ingredients); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item := &MenuItem{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      active,
	}
	for _, link := range req.Ingredients {
		item.Ingredients = append(item.Ingredients, MenuItemIngredient{
			IngredientID:   link.IngredientID,
			QuantityNeeded: link.QuantityNeeded,
		})
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, apperror.NewPersistence("create menu item", err)
	}

	return item, nil
}

// GetMenuItem retrieves one menu item with its recipe links
func (s *Service) GetMenuItem(userID, id uint) (*MenuItem, error) {
	var item MenuItem
	err := s.db.Preload("Ingredients.Ingredient").
		Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("menu item", id)
		}
		return nil, apperror.NewPersistence("get menu item", err)
	}
	return &item, nil
}

// GetMenuItems lists the account's menu items ordered by name
func (s *Service) GetMenuItems(userID uint, activeOnly bool) ([]MenuItem, error) {
	query := s.db.Preload("Ingredients").Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var items []MenuItem
	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, apperror.NewPersistence("list menu items", err)
	}
	return items, nil
}

// UpdateMenuItem overwrites the item and replaces its recipe links
func (s *Service) UpdateMenuItem(userID, id uint, req *MenuItemRequest) (*MenuItem, error) {
	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) || req.Price < 0 {
		return nil, apperror.NewValidation("price", "must be a non-negative number")
	}
	if err := s.validateLinks(userID, req.Ingredients); err != nil {
		return nil, err
	}

	item, err := s.GetMenuItem(userID, id)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := tx.Omit("Ingredients").Save(item).Error; err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("update menu item", err)
	}

	if err := tx.Where("menu_item_id = ?", item.ID).Delete(&MenuItemIngredient{}).Error; err != nil {
		tx.Rollback()
		return nil, apperror.NewPersistence("replace recipe links", err)
	}

	links := make([]MenuItemIngredient, 0, len(req.Ingredients))
	for _, link := range req.Ingredients {
		links = append(links, MenuItemIngredient{
			MenuItemID:     item.ID,
			IngredientID:   link.IngredientID,
			QuantityNeeded: link.QuantityNeeded,
		})
	}
	if len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			tx.Rollback()
			return nil, apperror.NewPersistence("replace recipe links", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperror.NewPersistence("update menu item", err)
	}

	return s.GetMenuItem(userID, id)
}

// DeleteMenuItem removes the item, its recipe links, its plan slots,
// and its order items in one transaction.
func (s *Service) DeleteMenuItem(userID, id uint) error {
	item, err := s.GetMenuItem(userID, id)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("menu_item_id = ?", item.ID).Delete(&MenuItemIngredient{}).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete recipe links", err)
	}

	if err := tx.Where("menu_item_id = ?", item.ID).Delete(&MenuPlan{}).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete plan slots", err)
	}

	if err := tx.Exec("DELETE FROM order_items WHERE menu_item_id = ?", item.ID).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete order items", err)
	}

	if err := tx.Delete(&MenuItem{}, item.ID).Error; err != nil {
		tx.Rollback()
		return apperror.NewPersistence("delete menu item", err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperror.NewPersistence("delete menu item", err)
	}
	return nil
}

// GetWeekPlan lists the account's weekly-plan slots
func (s *Service) GetWeekPlan(userID uint) ([]MenuPlan, error) {
	var plans []MenuPlan
	err := s.db.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("day_of_week ASC, meal ASC").
		Find(&plans).Error
	if err != nil {
		return nil, apperror.NewPersistence("list menu plan", err)
	}
	return plans, nil
}

// SetPlanSlot assigns a menu item to a weekday meal slot, replacing any
// previous assignment. A zero menu item id clears the slot.
func (s *Service) SetPlanSlot(userID uint, req *PlanSlotRequest) (*MenuPlan, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, apperror.NewValidation("day_of_week", "must be between 0 and 6")
	}
	if !req.Meal.IsValid() {
		return nil, apperror.NewValidation("meal", fmt.Sprintf("unknown meal code '%s'", req.Meal))
	}

	if err := s.db.Where("user_id = ? AND day_of_week = ? AND meal = ?",
		userID, req.DayOfWeek, req.Meal).Delete(&MenuPlan{}).Error; err != nil {
		return nil, apperror.NewPersistence("clear plan slot", err)
	}

	if req.MenuItemID == 0 {
		return nil, nil
	}

	if _, err := s.GetMenuItem(userID, req.MenuItemID); err != nil {
		return nil, err
	}

	plan := &MenuPlan{
		UserID:     userID,
		DayOfWeek:  req.DayOfWeek,
		Meal:       req.Meal,
		MenuItemID: req.MenuItemID,
	}
	if err := s.db.Create(plan).Error; err != nil {
		return nil, apperror.NewPersistence("set plan slot", err)
	}
	return plan, nil
}
