// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
	"github.com/your-org/restaurant-backend/internal/interfaces/http/handlers"
	"github.com/your-org/restaurant-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires all API v1 routes. Every route group requires
// authentication; data is scoped to the authenticated account.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	ingredientHandler := handlers.NewIngredientHandler(db, cache, cfg)
	menuHandler := handlers.NewMenuHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cache, cfg)
	customerHandler := handlers.NewCustomerHandler(db, cfg)
	financeHandler := handlers.NewFinanceHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cache, cfg)
	assistantHandler := handlers.NewAssistantHandler(db, cache, cfg)
	profileHandler := handlers.NewProfileHandler(db, cfg)

	auth := middleware.AuthMiddleware(cfg)

	ingredients := rg.Group("/ingredients")
	ingredients.Use(auth)
	{
		// Fixed paths before the :id wildcard
		ingredients.GET("/movements", ingredientHandler.GetMovements)
		ingredients.GET("/usage", ingredientHandler.GetUsage)
		ingredients.GET("/suppliers", ingredientHandler.GetSuppliers)

		ingredients.GET("", ingredientHandler.GetIngredients)
		ingredients.POST("", ingredientHandler.CreateIngredient)
		ingredients.GET("/:id", ingredientHandler.GetIngredient)
		ingredients.PUT("/:id", ingredientHandler.UpdateIngredient)
		ingredients.DELETE("/:id", ingredientHandler.DeleteIngredient)
		ingredients.POST("/:id/restock", ingredientHandler.Restock)
	}

	menuItems := rg.Group("/menu-items")
	menuItems.Use(auth)
	{
		menuItems.GET("", menuHandler.GetMenuItems)
		menuItems.POST("", menuHandler.CreateMenuItem)
		menuItems.GET("/:id", menuHandler.GetMenuItem)
		menuItems.PUT("/:id", menuHandler.UpdateMenuItem)
		menuItems.DELETE("/:id", menuHandler.DeleteMenuItem)
	}

	menuPlan := rg.Group("/menu-plan")
	menuPlan.Use(auth)
	{
		menuPlan.GET("", menuHandler.GetWeekPlan)
		menuPlan.PUT("", menuHandler.SetPlanSlot)
	}

	orders := rg.Group("/orders")
	orders.Use(auth)
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
	}

	customers := rg.Group("/customers")
	customers.Use(auth)
	{
		customers.GET("/return-frequency", customerHandler.GetReturnFrequency)
	}

	records := rg.Group("/financial-records")
	records.Use(auth)
	{
		records.GET("/report", financeHandler.GetReport)

		records.GET("", financeHandler.GetRecords)
		records.POST("", financeHandler.CreateRecord)
		records.PUT("/:id", financeHandler.UpdateRecord)
		records.DELETE("/:id", financeHandler.DeleteRecord)
	}

	dashboard := rg.Group("/dashboard")
	dashboard.Use(auth)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}

	assistant := rg.Group("/assistant")
	assistant.Use(auth)
	{
		assistant.POST("/tools/:name", assistantHandler.ExecuteTool)
	}

	profile := rg.Group("/profile")
	profile.Use(auth)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
		profile.PUT("/password", profileHandler.ChangePassword)
	}
}
