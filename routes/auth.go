package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johnaymann1/st-mary-gifts-api/auth"
	"github.com/johnaymann1/st-mary-gifts-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit("10-M"))
	{
		authGroup.POST("/register", auth.Register(d.DB, d.Mail))
		authGroup.POST("/login", auth.Login(d.DB))
	}
}
