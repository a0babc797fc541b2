package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

// UpdateProduct updates a product by ID. Accepts the same multipart fields
// as CreateProduct; everything is optional.
func UpdateProduct(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}

		if v := c.PostForm("ename"); v != "" {
			product.EName = v
		}
		if v := c.PostForm("arname"); v != "" {
			product.ARName = v
		}
		if v := c.PostForm("edescription"); v != "" {
			product.EDescription = v
		}
		if v := c.PostForm("ardescription"); v != "" {
			product.ARDescription = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := c.PostForm("sale_price"); v != "" {
			if v == "none" {
				// explicit removal of the sale
				product.SalePrice = nil
				product.SaleEndsAt = nil
			} else if f := parseFloat(v); f != nil {
				product.SalePrice = f
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
		}
		if v := c.PostForm("sale_ends_at"); v != "" {
			t, parseErr := time.Parse(time.RFC3339, v)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_ends_at, use RFC3339"})
				return
			}
			product.SaleEndsAt = &t
		}
		if v := c.PostForm("in_stock"); v != "" {
			product.InStock = v == "true" || v == "1"
		}
		if v := c.PostForm("active"); v != "" {
			product.Active = v == "true" || v == "1"
		}

		if err := validatePricing(product.Price, product.SalePrice); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if v := c.PostForm("category_id"); v != "" {
			if v == "none" {
				product.CategoryID = nil
			} else if id64, parseErr := strconv.ParseUint(v, 10, 64); parseErr == nil {
				var category models.Category
				if err := db.First(&category, uint(id64)).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
					return
				}
				cid := uint(id64)
				product.CategoryID = &cid
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, saveErr := store.Save(file, storage.BucketProducts)
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			store.Delete(product.Image)
			product.Image = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		pages.Invalidate(c.Request.Context(),
			cache.TagProducts, cache.TagHome, cache.ProductTag(product.ID))

		c.JSON(http.StatusOK, product)
	}
}
