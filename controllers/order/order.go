package ordercontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/middleware"
	"github.com/johnaymann1/st-mary-gifts-api/models"
)

type PlaceOrderRequest struct {
	DeliveryType    string     `json:"delivery_type" binding:"required"`
	Address         string     `json:"address"`
	Phone           string     `json:"phone"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	PaymentMethod   string     `json:"payment_method" binding:"required"`
	PaymentProofURL string     `json:"payment_proof_url"`
}

// validatePlaceOrder runs every check that does not need the database:
// phone is always required, the address only for delivery, the proof only
// for instapay.
func validatePlaceOrder(req PlaceOrderRequest) (models.DeliveryType, models.PaymentMethod, error) {
	deliveryType, err := models.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return "", "", err
	}
	paymentMethod, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return "", "", err
	}
	if req.Phone == "" {
		return "", "", errors.New("phone is required")
	}
	if deliveryType == models.DeliveryTypeDelivery && req.Address == "" {
		return "", "", errors.New("address is required for delivery orders")
	}
	if paymentMethod == models.PaymentMethodInstapay && req.PaymentProofURL == "" {
		return "", "", errors.New("payment proof is required for instapay orders")
	}
	return deliveryType, paymentMethod, nil
}

// deliveryFee computes the fee an order pays given the store settings.
func deliveryFee(deliveryType models.DeliveryType, subtotal float64, settings models.StoreSettings) float64 {
	if deliveryType != models.DeliveryTypeDelivery {
		return 0
	}
	if settings.FreeDeliveryThreshold > 0 && subtotal >= settings.FreeDeliveryThreshold {
		return 0
	}
	return settings.DeliveryFee
}

// PlaceOrder turns the caller's cart into an order inside one transaction:
// products are row-locked, availability is re-checked, the effective unit
// price is captured, totals are computed and the cart is cleared. Instapay
// orders wait in pending_payment until the proof is reviewed; cash orders
// start in processing.
func PlaceOrder(db *gorm.DB, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		deliveryType, paymentMethod, err := validatePlaceOrder(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var settings models.StoreSettings
		if err := db.First(&settings, models.SettingsID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store settings unavailable"})
			return
		}
		if paymentMethod == models.PaymentMethodCash && !settings.CashEnabled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cash payment is currently disabled"})
			return
		}
		if paymentMethod == models.PaymentMethodInstapay && !settings.InstapayEnabled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Instapay payment is currently disabled"})
			return
		}

		status := models.OrderStatusProcessing
		if paymentMethod == models.PaymentMethodInstapay {
			status = models.OrderStatusPendingPayment
		}

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return errors.New("cart not found")
			}
			if len(cart.Items) == 0 {
				return errors.New("cart is empty")
			}

			now := time.Now()
			var subtotal float64
			var orderItems []models.OrderItem

			for _, item := range cart.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", item.ProductID).Error; err != nil {
					return errors.New("product no longer exists: " + item.ProductEName)
				}
				if !product.Active {
					return errors.New("product is no longer available: " + product.EName)
				}
				if !product.InStock {
					return errors.New("product is out of stock: " + product.EName)
				}

				unitPrice := product.EffectivePrice(now)
				subtotal += unitPrice * float64(item.Quantity)

				orderItems = append(orderItems, models.OrderItem{
					ProductID:     product.ID,
					ProductEName:  product.EName,
					ProductARName: product.ARName,
					ProductImage:  product.Image,
					UnitPrice:     unitPrice,
					Quantity:      item.Quantity,
				})
			}

			fee := deliveryFee(deliveryType, subtotal, settings)

			order = models.Order{
				UserID:          userID,
				Items:           orderItems,
				Status:          status,
				DeliveryType:    deliveryType,
				Address:         req.Address,
				Phone:           req.Phone,
				DeliveryDate:    req.DeliveryDate,
				PaymentMethod:   paymentMethod,
				PaymentProofURL: req.PaymentProofURL,
				Subtotal:        subtotal,
				DeliveryFee:     fee,
				TotalAmount:     subtotal + fee,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pages.Invalidate(c.Request.Context(),
			cache.TagOrders, cache.UserOrdersTag(userID))
		broadcastOrderUpdate(order)

		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GetAllOrders lists every order, newest first. Admin only.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User").Preload("Items").Order("created_at DESC")

		if v := c.Query("status"); v != "" {
			status, err := models.ParseOrderStatus(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetMyOrders lists the requesting user's orders.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID returns one order. Customers may only read their own;
// admins may read any.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)
		roleVal, _ := c.Get("role")
		isAdmin := roleVal == models.RoleAdmin

		var order models.Order
		if err := db.Preload("User").Preload("Items").
			First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !isAdmin && order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
