// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/domain/finance"
	"github.com/your-org/restaurant-backend/internal/domain/ingredient"
	"github.com/your-org/restaurant-backend/internal/domain/menu"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/domain/user"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: accounts first, then ingredients and menu,
	// then the tables referencing them
	models := []interface{}{
		&user.User{},

		&ingredient.Ingredient{},
		&ingredient.InventoryLog{},

		&menu.MenuItem{},
		&menu.MenuItemIngredient{},
		&menu.MenuPlan{},

		&order.Order{},
		&order.OrderItem{},

		&finance.FinancialRecord{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",

		// Ingredient indexes
		"CREATE INDEX IF NOT EXISTS idx_ingredients_user_category ON ingredients(user_id, category)",
		"CREATE INDEX IF NOT EXISTS idx_ingredients_user_name ON ingredients(user_id, name)",
		"CREATE INDEX IF NOT EXISTS idx_ingredients_expiration ON ingredients(user_id, expiration_date)",

		// Inventory log indexes
		"CREATE INDEX IF NOT EXISTS idx_inventory_logs_ingredient_created ON inventory_logs(ingredient_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_inventory_logs_user_created ON inventory_logs(user_id, created_at DESC)",

		// Recipe link indexes
		"CREATE INDEX IF NOT EXISTS idx_menu_item_ingredients_menu_item ON menu_item_ingredients(menu_item_id)",
		"CREATE INDEX IF NOT EXISTS idx_menu_item_ingredients_ingredient ON menu_item_ingredients(ingredient_id)",

		// Menu plan indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_menu_plans_slot ON menu_plans(user_id, day_of_week, meal)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user_date ON orders(user_id, order_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_code ON orders(user_id, code)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_menu_item ON order_items(menu_item_id)",

		// Financial record indexes
		"CREATE INDEX IF NOT EXISTS idx_financial_records_user_date ON financial_records(user_id, record_date DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedSampleIngredients(); err != nil {
		return fmt.Errorf("failed to seed sample ingredients: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		adminUser := user.User{
			Email:          "admin@example.com",
			Password:       string(hashedPassword),
			FirstName:      "Admin",
			LastName:       "User",
			RestaurantName: "Demo Restaurant",
			IsActive:       true,
			IsAdmin:        true,
		}

		if err := m.db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("✅ Created admin user: admin@example.com (password: admin123)")
	} else {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
	}

	return nil
}

// seedSampleIngredients creates a small demo pantry for development
func (m *Migration) seedSampleIngredients() error {
	log.Println("🥬 Seeding sample ingredients...")

	var admin user.User
	if err := m.db.Where("email = ?", "admin@example.com").First(&admin).Error; err != nil {
		log.Println("⚠️ No admin user found, skipping ingredient seed")
		return nil
	}

	var count int64
	m.db.Model(&ingredient.Ingredient{}).Where("user_id = ?", admin.ID).Count(&count)
	if count > 0 {
		log.Println("⏭️ Sample ingredients already exist")
		return nil
	}

	expiry := time.Now().AddDate(0, 0, 5)
	samples := []ingredient.Ingredient{
		{
			UserID: admin.ID, Code: "NL-001", Name: "Rice flour",
			Category: ingredient.CategoryFlour, Unit: ingredient.UnitKilogram,
			CurrentStock: 25, MinStock: 5, CostPerUnit: 18000,
			SupplierInfo: "Cho Lon market",
		},
		{
			UserID: admin.ID, Code: "NL-002", Name: "Pork belly",
			Category: ingredient.CategoryMeat, Unit: ingredient.UnitKilogram,
			CurrentStock: 8, MinStock: 3, CostPerUnit: 125000,
			ExpirationDate: &expiry,
			SupplierInfo:   "Vissan",
		},
		{
			UserID: admin.ID, Code: "NL-003", Name: "Fish sauce",
			Category: ingredient.CategorySpices, Unit: ingredient.UnitBottle,
			CurrentStock: 12, MinStock: 4, CostPerUnit: 45000,
			SupplierInfo: "Phu Quoc distributor",
		},
	}

	for _, ing := range samples {
		if err := m.db.Create(&ing).Error; err != nil {
			log.Printf("⚠️ Failed to create sample ingredient %s: %v", ing.Code, err)
		} else {
			log.Printf("✅ Created sample ingredient: %s", ing.Name)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"financial_records",
		"order_items",
		"orders",
		"menu_plans",
		"menu_item_ingredients",
		"menu_items",
		"inventory_logs",
		"ingredients",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
