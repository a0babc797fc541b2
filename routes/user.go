package routes

import (
	"github.com/gin-gonic/gin"

	addresscontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/address"
	cartcontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/cart"
	ordercontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/order"
	usercontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/user"
	"github.com/johnaymann1/st-mary-gifts-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", usercontroller.GetProfile(d.DB))
		userGroup.PUT("/", usercontroller.UpdateProfile(d.DB))
		userGroup.PUT("/email", usercontroller.ChangeEmail(d.DB))
		userGroup.PUT("/password", usercontroller.ChangePassword(d.DB))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartcontroller.GetCart(d.DB))
			cartGroup.POST("/", cartcontroller.UpdateCartItem(d.DB))
			cartGroup.DELETE("/:product_id", cartcontroller.DeleteCartItem(d.DB))
			cartGroup.DELETE("/", cartcontroller.ClearCart(d.DB))
		}

		// ──────────────── Address Book ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", addresscontroller.ListAddresses(d.DB))
			addressGroup.POST("/", addresscontroller.CreateAddress(d.DB))
			addressGroup.PUT("/:id", addresscontroller.UpdateAddress(d.DB))
			addressGroup.DELETE("/:id", addresscontroller.DeleteAddress(d.DB))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/place", ordercontroller.PlaceOrder(d.DB, d.Pages))
			orderGroup.GET("/", ordercontroller.GetMyOrders(d.DB))
			orderGroup.GET("/:orderID", ordercontroller.GetOrderByID(d.DB))
			orderGroup.POST("/:orderID/cancel", ordercontroller.CancelOrder(d.DB, d.Pages))
			orderGroup.POST("/payment-proof", ordercontroller.UploadPaymentProof(d.Store))
		}
	}
}
