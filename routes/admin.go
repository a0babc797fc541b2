package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/order"
	productcontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/product"
	settingscontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/settings"
	usercontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/user"
	"github.com/johnaymann1/st-mary-gifts-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin JWT.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth, middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", usercontroller.GetAllUsers(d.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.DB, d.Store, d.Pages))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.DB, d.Store, d.Pages))
			productAdmin.GET("", productcontroller.GetProducts(d.DB, true))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.DB, d.Store, d.Pages))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(d.DB, d.Pages))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(d.DB, d.Store, d.Pages))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(d.DB, d.Store, d.Pages))
			categoryAdmin.GET("", productcontroller.GetAllCategories(d.DB, true))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(d.DB, d.Store, d.Pages))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("/", ordercontroller.GetAllOrders(d.DB))
			orderAdmin.GET("/ws", ordercontroller.OrderFeed)
			orderAdmin.GET("/:orderID", ordercontroller.GetOrderByID(d.DB))
			orderAdmin.PUT("/:orderID/status", ordercontroller.UpdateOrderStatus(d.DB, d.Pages))
			orderAdmin.POST("/:orderID/approve-payment", ordercontroller.ApprovePaymentProof(d.DB, d.Pages))
			orderAdmin.POST("/:orderID/reject-payment", ordercontroller.RejectPaymentProof(d.DB, d.Store, d.Pages))
		}

		// ─────────── Store Settings ───────────
		adminGroup.PUT("/settings", settingscontroller.UpdateSettings(d.DB, d.Store, d.Pages))
	}
}
