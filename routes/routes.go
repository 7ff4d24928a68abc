package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all endpoints. Role checks are not route-level
// concerns here: the service layer consults the policy package, so a
// member hitting checkout gets a proper 403 instead of a missing route.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret []byte) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.GET("/auth/me", h.GetProfile)

		// Restaurants (region-scoped reads)
		auth.GET("/restaurants", h.ListRestaurants)
		auth.GET("/restaurants/:id", h.GetRestaurant)

		// Cart & orders
		auth.GET("/orders/cart", h.GetCart)
		auth.POST("/orders/cart/items", h.AddToCart)
		auth.DELETE("/orders/cart/items/:itemId", h.RemoveFromCart)
		auth.POST("/orders/checkout", h.Checkout)
		auth.GET("/orders", h.ListOrders)
		auth.POST("/orders/:id/cancel", h.CancelOrder)
		auth.POST("/orders/:id/complete", h.CompleteOrder)

		// Payment methods
		auth.GET("/payments/methods", h.ListPaymentMethods)
		auth.POST("/payments/methods", h.CreatePaymentMethod)
		auth.PUT("/payments/methods/:id", h.UpdatePaymentMethod)
		auth.DELETE("/payments/methods/:id", h.DeletePaymentMethod)
	}
}
