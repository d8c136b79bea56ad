package routes

import (
	"restaurant-saas-api/handlers"
	"restaurant-saas-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/admin/login", handlers.AdminLogin)
		public.POST("/auth/super-admin/login", handlers.SuperAdminLogin)

		// Tenant storefront, resolved by slug (no auth needed)
		tenant := public.Group("/r/:slug")
		{
			tenant.GET("", handlers.GetRestaurant)
			tenant.GET("/menu", handlers.GetMenu)
			tenant.GET("/categories", handlers.GetCategories)
			tenant.GET("/settings", handlers.GetPublicSettings)
			tenant.POST("/orders", handlers.PlaceOrder)
			tenant.POST("/reservations", handlers.CreateReservation)
			tenant.POST("/feedback", handlers.CreateFeedback)
			tenant.GET("/feedback", handlers.ListFeedback)
			tenant.GET("/events", handlers.TenantEvents)
		}
	}

	// ── Tenant admin routes ────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(middleware.RoleAdmin))
	{
		// Menu management
		admin.GET("/menu", handlers.AdminGetMenu)
		admin.POST("/menu", handlers.AddMenuItem)
		admin.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Category management
		admin.GET("/categories", handlers.AdminGetCategories)
		admin.POST("/categories", handlers.AddCategory)
		admin.PUT("/categories/:categoryId", handlers.UpdateCategory)
		admin.DELETE("/categories/:categoryId", handlers.DeleteCategory)

		// Order management
		admin.GET("/orders", handlers.GetOrders)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Reservation management
		admin.GET("/reservations", handlers.GetReservations)
		admin.PUT("/reservations/:id/status", handlers.UpdateReservationStatus)

		// Feedback & settings
		admin.GET("/feedback", handlers.AdminGetFeedback)
		admin.GET("/settings", handlers.GetSettings)
		admin.PUT("/settings", handlers.UpdateSettings)
	}

	// ── Platform operator routes ───────────────────────────────────
	superAdmin := r.Group("/api/super-admin")
	superAdmin.Use(middleware.AuthRequired(), middleware.RoleRequired(middleware.RoleSuperAdmin))
	{
		superAdmin.GET("/restaurants", handlers.SuperAdminListRestaurants)
		superAdmin.GET("/restaurants/:id", handlers.SuperAdminGetRestaurant)
		superAdmin.POST("/restaurants", handlers.SuperAdminCreateRestaurant)
		superAdmin.PUT("/restaurants/:id", handlers.SuperAdminUpdateRestaurant)
		superAdmin.DELETE("/restaurants/:id", handlers.SuperAdminDeleteRestaurant)
		superAdmin.GET("/events", handlers.PlatformEvents)
	}
}
