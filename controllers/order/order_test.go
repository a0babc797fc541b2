package ordercontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/johnaymann1/st-mary-gifts-api/models"
)

func TestValidatePlaceOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     PlaceOrderRequest
		wantErr string
	}{
		{
			name: "pickup cash needs neither address nor proof",
			req:  PlaceOrderRequest{DeliveryType: "pickup", Phone: "0100000000", PaymentMethod: "cash"},
		},
		{
			name: "delivery with address",
			req:  PlaceOrderRequest{DeliveryType: "delivery", Address: "12 Church St", Phone: "0100000000", PaymentMethod: "cash"},
		},
		{
			name:    "delivery without address",
			req:     PlaceOrderRequest{DeliveryType: "delivery", Phone: "0100000000", PaymentMethod: "cash"},
			wantErr: "address is required",
		},
		{
			name:    "missing phone",
			req:     PlaceOrderRequest{DeliveryType: "pickup", PaymentMethod: "cash"},
			wantErr: "phone is required",
		},
		{
			name:    "instapay without proof",
			req:     PlaceOrderRequest{DeliveryType: "pickup", Phone: "0100000000", PaymentMethod: "instapay"},
			wantErr: "payment proof is required",
		},
		{
			name: "instapay with proof",
			req:  PlaceOrderRequest{DeliveryType: "pickup", Phone: "0100000000", PaymentMethod: "instapay", PaymentProofURL: "/uploads/payment-proofs/x.jpg"},
		},
		{
			name:    "unknown delivery type",
			req:     PlaceOrderRequest{DeliveryType: "drone", Phone: "0100000000", PaymentMethod: "cash"},
			wantErr: "invalid delivery type",
		},
		{
			name:    "unknown payment method",
			req:     PlaceOrderRequest{DeliveryType: "pickup", Phone: "0100000000", PaymentMethod: "card"},
			wantErr: "invalid payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := validatePlaceOrder(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got error %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDeliveryFee(t *testing.T) {
	settings := models.StoreSettings{DeliveryFee: 50, FreeDeliveryThreshold: 500}

	if fee := deliveryFee(models.DeliveryTypePickup, 100, settings); fee != 0 {
		t.Errorf("pickup must be free, got %v", fee)
	}
	if fee := deliveryFee(models.DeliveryTypeDelivery, 100, settings); fee != 50 {
		t.Errorf("below-threshold delivery: got %v, want 50", fee)
	}
	if fee := deliveryFee(models.DeliveryTypeDelivery, 500, settings); fee != 0 {
		t.Errorf("at-threshold delivery must be free, got %v", fee)
	}

	settings.FreeDeliveryThreshold = 0
	if fee := deliveryFee(models.DeliveryTypeDelivery, 10000, settings); fee != 50 {
		t.Errorf("threshold disabled: got %v, want 50", fee)
	}
}

// Validation failures must be rejected before the handler ever reaches the
// database: a nil *gorm.DB proves no query was attempted.
func TestPlaceOrderRejectsBeforeDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders/place", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", models.RoleUser)
	}, PlaceOrder(nil, nil))

	body := `{"delivery_type":"delivery","phone":"0100000000","payment_method":"cash"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/place", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "address is required") {
		t.Fatalf("body = %s, want address-required error", w.Body.String())
	}
}
