package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/repository"
	"restaurant-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and registers the
// API surface. Dependencies are passed down explicitly; nothing here
// touches package-level state.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)

	restaurantService := services.NewRestaurantService(restaurantRepo)
	menuItemService := services.NewMenuItemService(menuItemRepo, restaurantService)

	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	menuItemHandler := handlers.NewMenuItemHandler(menuItemService)

	api := r.Group("/api/v1")
	{
		// Restaurants
		api.POST("/restaurants", restaurantHandler.Create)
		api.GET("/restaurants/:id", restaurantHandler.Get)
		api.PATCH("/restaurants/:id/status", restaurantHandler.UpdateStatus)

		// Menu items
		api.POST("/restaurants/:id/menu-items", menuItemHandler.Add)
		api.GET("/restaurants/:id/menu-items", menuItemHandler.List)
		api.PATCH("/menu-items/:id/status", menuItemHandler.UpdateStatus)
		api.DELETE("/menu-items/:id", menuItemHandler.Delete)
	}
}
