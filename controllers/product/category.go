package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

func CreateCategory(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		ename := c.PostForm("ename")
		arname := c.PostForm("arname")

		if ename == "" || arname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ename and arname are required"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = store.Save(file, storage.BucketCategories)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		category := models.Category{
			EName:  ename,
			ARName: arname,
			Image:  imageURL,
			Active: true,
		}
		if v := c.PostForm("active"); v != "" {
			category.Active = v == "true" || v == "1"
		}

		if err := db.Create(&category).Error; err != nil {
			store.Delete(imageURL)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		pages.Invalidate(c.Request.Context(), cache.TagCategories, cache.TagHome)

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns categories; the storefront variant only active
// ones.
func GetAllCategories(db *gorm.DB, includeInactive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Category{})
		if !includeInactive {
			query = query.Where("active = ?", true)
		}

		var categories []models.Category
		if err := query.Order("e_name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.Preload("Products", "active = ?", true).First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

func UpdateCategory(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if v := c.PostForm("ename"); v != "" {
			category.EName = v
		}
		if v := c.PostForm("arname"); v != "" {
			category.ARName = v
		}
		if v := c.PostForm("active"); v != "" {
			category.Active = v == "true" || v == "1"
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, saveErr := store.Save(file, storage.BucketCategories)
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			store.Delete(category.Image)
			category.Image = imageURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		pages.Invalidate(c.Request.Context(),
			cache.TagCategories, cache.TagHome, cache.CategoryTag(category.ID))

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory refuses to delete a category that still has products.
func DeleteCategory(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var productCount int64
		if err := db.Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category products"})
			return
		}
		if productCount > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete a category that still has products"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		store.Delete(category.Image)

		pages.Invalidate(c.Request.Context(),
			cache.TagCategories, cache.TagHome, cache.CategoryTag(category.ID))

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
