package ordercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnaymann1/st-mary-gifts-api/cache"
	"github.com/johnaymann1/st-mary-gifts-api/middleware"
	"github.com/johnaymann1/st-mary-gifts-api/models"
	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// transition moves an order to a new status under a row lock, rejecting
// anything the transition table forbids. mutate runs inside the same
// transaction after the transition is applied.
func transition(db *gorm.DB, orderID string, to models.OrderStatus, mutate func(tx *gorm.DB, order *models.Order) error) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if !models.CanTransition(order.Status, to) {
			return models.ErrInvalidTransition
		}
		order.Status = to
		if mutate != nil {
			if err := mutate(tx, &order); err != nil {
				return err
			}
		}
		return tx.Save(&order).Error
	})
	return order, err
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errNotInstapay):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// UpdateOrderStatus moves an order along the workflow. Admin only.
func UpdateOrderStatus(db *gorm.DB, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := transition(db, c.Param("orderID"), newStatus, nil)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		pages.Invalidate(c.Request.Context(),
			cache.TagOrders, cache.OrderTag(order.ID), cache.UserOrdersTag(order.UserID))
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// CancelOrder lets the owner cancel while the order is still in
// pending_payment or processing.
func CancelOrder(db *gorm.DB, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, err := transition(db, c.Param("orderID"), models.OrderStatusCancelled,
			func(tx *gorm.DB, o *models.Order) error {
				if o.UserID != userID {
					return errNotOwner
				}
				return nil
			})
		if err != nil {
			if errors.Is(err, errNotOwner) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
				return
			}
			respondTransitionError(c, err)
			return
		}

		pages.Invalidate(c.Request.Context(),
			cache.TagOrders, cache.OrderTag(order.ID), cache.UserOrdersTag(order.UserID))
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order": order})
	}
}

var (
	errNotOwner    = errors.New("order does not belong to the requester")
	errNotInstapay = errors.New("order has no payment proof to review")
)

// ApprovePaymentProof accepts an instapay proof: pending_payment → processing.
func ApprovePaymentProof(db *gorm.DB, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := transition(db, c.Param("orderID"), models.OrderStatusProcessing,
			func(tx *gorm.DB, o *models.Order) error {
				if o.PaymentMethod != models.PaymentMethodInstapay {
					return errNotInstapay
				}
				return nil
			})
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		pages.Invalidate(c.Request.Context(),
			cache.TagOrders, cache.OrderTag(order.ID), cache.UserOrdersTag(order.UserID))
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Payment approved", "order": order})
	}
}

// RejectPaymentProof declines an instapay proof: the order is cancelled and
// the stored proof is removed.
func RejectPaymentProof(db *gorm.DB, store *storage.Store, pages *cache.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		var proofURL string
		order, err := transition(db, c.Param("orderID"), models.OrderStatusCancelled,
			func(tx *gorm.DB, o *models.Order) error {
				if o.PaymentMethod != models.PaymentMethodInstapay {
					return errNotInstapay
				}
				proofURL = o.PaymentProofURL
				o.PaymentProofURL = ""
				return nil
			})
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		store.Delete(proofURL)

		pages.Invalidate(c.Request.Context(),
			cache.TagOrders, cache.OrderTag(order.ID), cache.UserOrdersTag(order.UserID))
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Payment rejected, order cancelled", "order": order})
	}
}

// UploadPaymentProof stores an instapay screenshot and returns its URL for
// the subsequent place-order call. Proofs are stored uncompressed.
func UploadPaymentProof(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("proof")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "proof file is required"})
			return
		}
		url, err := store.Save(file, storage.BucketPaymentProofs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment_proof_url": url})
	}
}
