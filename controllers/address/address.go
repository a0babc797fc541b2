package addresscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/middleware"
	"github.com/johnaymann1/st-mary-gifts-api/models"
)

type AddressInput struct {
	Label     string `json:"label" binding:"required"`
	Address   string `json:"address" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// GET /user/addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var addresses []models.SavedAddress
		if err := db.Where("user_id = ?", userID).
			Order("is_default desc, created_at desc").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses. Setting is_default clears the flag everywhere else
// in the same transaction, so at most one default survives.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address := models.SavedAddress{
			UserID:    userID,
			Label:     input.Label,
			Address:   input.Address,
			IsDefault: input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := clearDefault(tx, userID); err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}

		c.JSON(http.StatusCreated, address)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var address models.SavedAddress
		if err := db.First(&address, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		if address.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your address"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address.Label = input.Label
		address.Address = input.Address

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault && !address.IsDefault {
				if err := clearDefault(tx, userID); err != nil {
					return err
				}
			}
			address.IsDefault = input.IsDefault
			return tx.Save(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var address models.SavedAddress
		if err := db.First(&address, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		if address.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your address"})
			return
		}

		if err := db.Delete(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}

func clearDefault(tx *gorm.DB, userID string) error {
	return tx.Model(&models.SavedAddress{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
