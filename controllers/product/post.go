package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

var errSalePriceTooHigh = errors.New("sale_price must be strictly less than price")

// validatePricing enforces the sale-price rule: when a sale price is set it
// must undercut the regular price.
func validatePricing(price float64, salePrice *float64) error {
	if price <= 0 {
		return errors.New("price must be positive")
	}
	if salePrice != nil {
		if *salePrice <= 0 {
			return errors.New("sale_price must be positive")
		}
		if *salePrice >= price {
			return errSalePriceTooHigh
		}
	}
	return nil
}

// CreateProduct creates a new product from a multipart form with an image
// upload.
func CreateProduct(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		ename := c.PostForm("ename")
		priceStr := c.PostForm("price")
		if ename == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ename and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var salePrice *float64
		if v := c.PostForm("sale_price"); v != "" {
			sp, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
			salePrice = &sp
		}
		if err := validatePricing(price, salePrice); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var saleEndsAt *time.Time
		if v := c.PostForm("sale_ends_at"); v != "" {
			t, parseErr := time.Parse(time.RFC3339, v)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_ends_at, use RFC3339"})
				return
			}
			saleEndsAt = &t
		}

		var categoryID *uint
		if v := c.PostForm("category_id"); v != "" {
			id64, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			id := uint(id64)
			categoryID = &id
		}

		inStock := true
		if v := c.PostForm("in_stock"); v != "" {
			inStock = v == "true" || v == "1"
		}
		active := true
		if v := c.PostForm("active"); v != "" {
			active = v == "true" || v == "1"
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := store.Save(file, storage.BucketProducts)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			EName:         ename,
			ARName:        c.PostForm("arname"),
			EDescription:  c.PostForm("edescription"),
			ARDescription: c.PostForm("ardescription"),
			Price:         price,
			SalePrice:     salePrice,
			SaleEndsAt:    saleEndsAt,
			InStock:       inStock,
			CategoryID:    categoryID,
			Image:         imageURL,
			Active:        active,
		}

		if err := db.Create(&product).Error; err != nil {
			store.Delete(imageURL)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		pages.Invalidate(c.Request.Context(), cache.TagProducts, cache.TagHome)

		c.JSON(http.StatusCreated, product)
	}
}
