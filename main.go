package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/config"
	settingscontroller "github.com/johnaymann1/st-mary-gifts-api/controllers/settings"
	"github.com/johnaymann1/st-mary-gifts-api/mailer"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/routes"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

func main() {
	log.Println("✅ Starting application...")

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	db, err := config.NewConnection(cfg.DB)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.SavedAddress{},
		&models.StoreSettings{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if err := settingscontroller.EnsureSettings(db); err != nil {
		log.Fatalf("❌ Settings seed failed: %v", err)
	}

	rdb := config.NewRedisClient(cfg.Redis)
	pages := cache.NewPages(rdb, 10*time.Minute)

	r := gin.Default()

	// Image uploads stay well under this, but keep headroom for Excel imports
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static(cfg.Uploads.PublicURL, cfg.Uploads.Dir)

	routes.SetupRoutes(r, routes.Deps{
		DB:    db,
		Store: storage.New(cfg.Uploads.Dir, cfg.Uploads.PublicURL),
		Pages: pages,
		Mail:  mailer.New(cfg.SMTP),
	})

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
