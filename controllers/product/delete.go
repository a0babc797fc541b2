package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

func DeleteProduct(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		// Soft delete keeps order history intact, and order items still
		// reference the image URL, so the file stays too.

		pages.Invalidate(c.Request.Context(),
			cache.TagProducts, cache.TagHome, cache.ProductTag(product.ID))

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
