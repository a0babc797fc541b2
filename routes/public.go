package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	productcontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/product"
	settingscontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/settings"
)

// SetupPublicRoutes registers the storefront browse endpoints. The catalog
// GETs sit behind the Redis page cache; mutating admin handlers invalidate
// the matching tags.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/products",
		d.Pages.Cached(cache.FixedTag(cache.TagProducts)),
		productcontroller.GetProducts(d.DB, false))
	r.GET("/products/:id",
		d.Pages.Cached(cache.ParamTag("product", "id")),
		productcontroller.GetProductByID(d.DB))
	r.GET("/categories",
		d.Pages.Cached(cache.FixedTag(cache.TagCategories)),
		productcontroller.GetAllCategories(d.DB, false))
	r.GET("/categories/:id",
		d.Pages.Cached(cache.ParamTag("category", "id")),
		productcontroller.GetCategoryByID(d.DB))
	r.GET("/settings",
		d.Pages.Cached(cache.FixedTag(cache.TagSettings)),
		settingscontroller.GetSettings(d.DB))
}
