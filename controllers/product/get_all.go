package productcontroller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/models"
)

const defaultPageSize = 20
const maxPageSize = 100

// sortClause maps the public sort keys to order-by clauses. Unknown keys
// fall back to newest-first.
func sortClause(key string) string {
	switch key {
	case "price_asc":
		return "price asc"
	case "price_desc":
		return "price desc"
	case "name":
		return "e_name asc"
	default:
		return "created_at desc"
	}
}

// GetProducts lists products with filtering, bilingual substring search,
// sorting and offset/limit pagination. The storefront variant hides
// inactive products; the admin variant shows everything.
func GetProducts(db *gorm.DB, includeInactive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if !includeInactive {
			query = query.Where("active = ?", true)
		} else if v := c.Query("active"); v != "" {
			query = query.Where("active = ?", v == "true" || v == "1")
		}

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"e_name ILIKE ? OR ar_name ILIKE ? OR e_description ILIKE ? OR ar_description ILIKE ?",
				likePattern, likePattern, likePattern, likePattern,
			)
		}

		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		if v := c.Query("in_stock"); v != "" {
			query = query.Where("in_stock = ?", v == "true" || v == "1")
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if limit < 1 || limit > maxPageSize {
			limit = defaultPageSize
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(sortClause(c.Query("sort_by"))).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":    products,
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}
