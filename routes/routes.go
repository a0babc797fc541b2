package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/mailer"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

// Deps bundles the shared collaborators handlers close over.
type Deps struct {
	DB    *gorm.DB
	Store *storage.Store
	Pages *cache.Pages
	Mail  *mailer.Mailer
}

// SetupRoutes is the single entry-point that wires up the public, auth,
// user and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public storefront routes (no middleware)
	SetupPublicRoutes(r, d)

	// 2️⃣ Auth routes (rate-limited)
	SetupAuthRoutes(r, d)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// 4️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, d)
}
