package settingscontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

// EnsureSettings seeds the singleton row on first boot.
func EnsureSettings(db *gorm.DB) error {
	var settings models.StoreSettings
	err := db.First(&settings, models.SettingsID).Error
	if err == gorm.ErrRecordNotFound {
		seed := models.DefaultSettings()
		return db.Create(&seed).Error
	}
	return err
}

// GET /settings is public; the storefront reads fees and toggles from here.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.StoreSettings
		if err := db.First(&settings, models.SettingsID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings takes a multipart form; all fields optional, always
// writes the fixed singleton row.
func UpdateSettings(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.StoreSettings
		if err := db.First(&settings, models.SettingsID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		if v := c.PostForm("store_name_en"); v != "" {
			settings.StoreNameEn = v
		}
		if v := c.PostForm("store_name_ar"); v != "" {
			settings.StoreNameAr = v
		}
		if v := c.PostForm("contact_email"); v != "" {
			settings.ContactEmail = v
		}
		if v := c.PostForm("contact_phone"); v != "" {
			settings.ContactPhone = v
		}
		if v := c.PostForm("delivery_fee"); v != "" {
			fee, err := strconv.ParseFloat(v, 64)
			if err != nil || fee < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery_fee"})
				return
			}
			settings.DeliveryFee = fee
		}
		if v := c.PostForm("free_delivery_threshold"); v != "" {
			threshold, err := strconv.ParseFloat(v, 64)
			if err != nil || threshold < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid free_delivery_threshold"})
				return
			}
			settings.FreeDeliveryThreshold = threshold
		}
		if v := c.PostForm("cash_enabled"); v != "" {
			settings.CashEnabled = v == "true" || v == "1"
		}
		if v := c.PostForm("instapay_enabled"); v != "" {
			settings.InstapayEnabled = v == "true" || v == "1"
		}
		if v := c.PostForm("instapay_number"); v != "" {
			settings.InstapayNumber = v
		}
		if v := c.PostForm("facebook_url"); v != "" {
			settings.FacebookURL = v
		}
		if v := c.PostForm("instagram_url"); v != "" {
			settings.InstagramURL = v
		}
		if v := c.PostForm("whatsapp_number"); v != "" {
			settings.WhatsappNumber = v
		}
		if v := c.PostForm("active_theme"); v != "" {
			settings.ActiveTheme = v
		}

		if file, err := c.FormFile("hero_image"); err == nil {
			heroURL, saveErr := store.Save(file, storage.BucketHero)
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			store.Delete(settings.HeroImage)
			settings.HeroImage = heroURL
		}

		settings.ID = models.SettingsID
		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}

		pages.Invalidate(c.Request.Context(), cache.TagSettings, cache.TagHome)

		c.JSON(http.StatusOK, settings)
	}
}
