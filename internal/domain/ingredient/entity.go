// internal/domain/ingredient/entity.go
package ingredient

import (
	"time"
)

// Category represents an ingredient category
type Category string

const (
	CategoryVegetables Category = "rau_cu"
	CategoryMeat       Category = "thit"
	CategoryFish       Category = "ca"
	CategorySpices     Category = "gia_vi"
	CategoryFlour      Category = "bot"
	CategoryOil        Category = "dau"
	CategoryDryGoods   Category = "do_kho"
	CategoryOther      Category = "khac"
)

var categoryNames = map[Category]string{
	CategoryVegetables: "Vegetables",
	CategoryMeat:       "Meat",
	CategoryFish:       "Fish",
	CategorySpices:     "Spices",
	CategoryFlour:      "Flour",
	CategoryOil:        "Oil",
	CategoryDryGoods:   "Dry goods",
	CategoryOther:      "Other",
}

// IsValid reports whether the category code is recognized
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human-readable label for the category
func (c Category) DisplayName() string {
	return categoryNames[c]
}

// Unit represents a unit of measure
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitLiter    Unit = "l"
	UnitMillilit Unit = "ml"
	UnitBottle   Unit = "chai"
	UnitBox      Unit = "hop"
	UnitPack     Unit = "goi"
	UnitPiece    Unit = "cai"
)

var unitNames = map[Unit]string{
	UnitKilogram: "Kilogram",
	UnitGram:     "Gram",
	UnitLiter:    "Liter",
	UnitMillilit: "Milliliter",
	UnitBottle:   "Bottle",
	UnitBox:      "Box",
	UnitPack:     "Pack",
	UnitPiece:    "Piece",
}

// IsValid reports whether the unit code is recognized
func (u Unit) IsValid() bool {
	_, ok := unitNames[u]
	return ok
}

// DisplayName returns the human-readable label for the unit
func (u Unit) DisplayName() string {
	return unitNames[u]
}

// TransactionType represents the type of a stock movement
type TransactionType string

const (
	// TransactionRestock is the only type persisted as a log row.
	TransactionRestock TransactionType = "restock"
	// TransactionInitial and TransactionExport are reconstructed on read.
	TransactionInitial TransactionType = "initial"
	TransactionExport  TransactionType = "export"
)

// Ingredient represents one ingredient lot-aggregate owned by an account.
// CostPerUnit is always the quantity-weighted average of the stock on
// hand, never the price of the most recent lot.
type Ingredient struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index;uniqueIndex:idx_ingredients_user_code" json:"user_id"`
	Code             string     `gorm:"not null;size:50;uniqueIndex:idx_ingredients_user_code" json:"code"`
	Name             string     `gorm:"not null;size:200" json:"name"`
	Category         Category   `gorm:"not null;size:20;index" json:"category"`
	Unit             Unit       `gorm:"not null;size:10" json:"unit"`
	CurrentStock     float64    `gorm:"type:decimal(12,3);not null;default:0" json:"current_stock"`
	MinStock         float64    `gorm:"type:decimal(12,3);not null;default:0" json:"min_stock"`
	CostPerUnit      float64    `gorm:"type:decimal(14,2);not null;default:0" json:"cost_per_unit"`
	LastPurchaseDate *time.Time `json:"last_purchase_date,omitempty"`
	ManufactureDate  *time.Time `json:"manufacture_date,omitempty"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	SupplierInfo     string     `gorm:"type:text" json:"supplier_info"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Logs []InventoryLog `gorm:"foreignKey:IngredientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"logs,omitempty"`
}

// TotalValue returns the value of the stock on hand
func (i *Ingredient) TotalValue() float64 {
	return i.CurrentStock * i.CostPerUnit
}

// InventoryLog represents one persisted stock-affecting transaction.
// Rows are append-only and removed only by ingredient-deletion cascade.
type InventoryLog struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	IngredientID    uint            `gorm:"not null;index" json:"ingredient_id"`
	TransactionType TransactionType `gorm:"not null;size:20" json:"transaction_type"`
	Quantity        float64         `gorm:"type:decimal(12,3);not null" json:"quantity"`
	Unit            Unit            `gorm:"not null;size:10" json:"unit"`
	CostPerUnit     float64         `gorm:"type:decimal(14,2);not null" json:"cost_per_unit"`
	Reference       string          `gorm:"size:100" json:"reference"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relationships
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// Movement is one row of the merged movement history: persisted restock
// logs plus reconstructed initial-import and order-consumption entries.
type Movement struct {
	IngredientID   uint            `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Type           TransactionType `json:"type"`
	Quantity       float64         `json:"quantity"`
	Unit           Unit            `json:"unit"`
	CostPerUnit    float64         `json:"cost_per_unit"`
	Reference      string          `json:"reference"`
	Notes          string          `json:"notes"`
	Date           time.Time       `json:"date"`
}

// SupplierStats aggregates ingredients by supplier for the preferred
// suppliers report.
type SupplierStats struct {
	Supplier   string  `json:"supplier"`
	ItemCount  int     `json:"item_count"`
	TotalValue float64 `json:"total_value"`
}

// UsagePoint is one calendar-day bucket of projected consumption.
type UsagePoint struct {
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
}
