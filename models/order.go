package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type DeliveryType string
type PaymentMethod string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment" // instapay proof not verified yet
	OrderStatusProcessing     OrderStatus = "processing"      // payment accepted, being prepared
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"

	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"

	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodInstapay PaymentMethod = "instapay"
)

// statusTransitions is the full transition table. Anything not listed is
// rejected, including writes that repeat the current status.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing:     {OrderStatusOutForDelivery, OrderStatusReadyForPickup, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusCompleted},
	OrderStatusReadyForPickup: {OrderStatusCompleted},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

var ErrInvalidTransition = errors.New("invalid order status transition")

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := statusTransitions[status]; !ok {
		return "", errors.New("invalid order status")
	}
	return status, nil
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Cancellable statuses: a customer may walk away until fulfilment starts.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPendingPayment || s == OrderStatusProcessing
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	switch DeliveryType(strings.ToLower(strings.TrimSpace(s))) {
	case DeliveryTypeDelivery:
		return DeliveryTypeDelivery, nil
	case DeliveryTypePickup:
		return DeliveryTypePickup, nil
	default:
		return "", errors.New("invalid delivery type")
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	case PaymentMethodInstapay:
		return PaymentMethodInstapay, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          string        `gorm:"not null;index" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending_payment'" json:"status"`
	DeliveryType    DeliveryType  `gorm:"type:VARCHAR(10);not null" json:"delivery_type"`
	Address         string        `json:"address"` // required iff delivery
	Phone           string        `gorm:"not null" json:"phone"`
	DeliveryDate    *time.Time    `json:"delivery_date,omitempty"` // requested date, optional
	PaymentMethod   PaymentMethod `gorm:"type:VARCHAR(10);not null" json:"payment_method"`
	PaymentProofURL string        `json:"payment_proof_url"` // required iff instapay
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"delivery_fee"`
	TotalAmount     float64       `json:"total_amount"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem captures the unit price at purchase time; later product edits
// never change a placed order.
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"order_id"`
	ProductID     uint    `json:"product_id"`
	ProductEName  string  `json:"product_ename"`
	ProductARName string  `json:"product_arname"`
	ProductImage  string  `json:"product_image"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
}
