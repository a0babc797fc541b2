package productcontroller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/models"
)

// Column layout shared by import and export:
// id | ename | arname | edescription | ardescription | price | sale_price |
// in_stock | active | image | category_id

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// spreadsheet. Rows that fail the pricing rule or are missing required
// fields are skipped and counted.
func ImportProductsFromExcel(db *gorm.DB, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			ename := get(1)
			price, priceErr := strconv.ParseFloat(get(5), 64)

			var salePrice *float64
			if v := get(6); v != "" {
				if sp, err := strconv.ParseFloat(v, 64); err == nil {
					salePrice = &sp
				}
			}

			if ename == "" || priceErr != nil || validatePricing(price, salePrice) != nil {
				skippedCount++
				continue
			}

			var categoryID *uint
			if v := get(10); v != "" {
				if cid, err := strconv.ParseUint(v, 10, 64); err == nil {
					id := uint(cid)
					categoryID = &id
				}
			}

			product := models.Product{
				EName:         ename,
				ARName:        get(2),
				EDescription:  get(3),
				ARDescription: get(4),
				Price:         price,
				SalePrice:     salePrice,
				InStock:       parseBoolCell(get(7), true),
				Active:        parseBoolCell(get(8), true),
				Image:         get(9),
				CategoryID:    categoryID,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						product.ID = existing.ID
						product.CreatedAt = existing.CreatedAt
						if product.Image == "" {
							product.Image = existing.Image
						}
						if err := db.Save(&product).Error; err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		if createdCount > 0 || updatedCount > 0 {
			pages.Invalidate(c.Request.Context(), cache.TagProducts, cache.TagHome)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

// ExportProductsToExcel streams the whole catalog as a spreadsheet in the
// import layout.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{
			"id", "ename", "arname", "edescription", "ardescription",
			"price", "sale_price", "in_stock", "active", "image", "category_id",
		} {
			header.AddCell().SetString(title)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(p.ID))
			row.AddCell().SetString(p.EName)
			row.AddCell().SetString(p.ARName)
			row.AddCell().SetString(p.EDescription)
			row.AddCell().SetString(p.ARDescription)
			row.AddCell().SetFloat(p.Price)
			if p.SalePrice != nil {
				row.AddCell().SetFloat(*p.SalePrice)
			} else {
				row.AddCell().SetString("")
			}
			row.AddCell().SetString(strconv.FormatBool(p.InStock))
			row.AddCell().SetString(strconv.FormatBool(p.Active))
			row.AddCell().SetString(p.Image)
			if p.CategoryID != nil {
				row.AddCell().SetInt(int(*p.CategoryID))
			} else {
				row.AddCell().SetString("")
			}
		}

		filename := "products_" + time.Now().Format("2006-01-02") + ".xlsx"
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

func parseBoolCell(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "":
		return def
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
