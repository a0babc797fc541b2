package models

import "testing"

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending_payment", "processing", "out_for_delivery", "ready_for_pickup", "completed", "cancelled"} {
		if _, err := ParseOrderStatus(s); err != nil {
			t.Errorf("ParseOrderStatus(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseOrderStatus(" Processing "); err != nil {
		t.Errorf("expected trimmed/case-folded status to parse, got %v", err)
	}
	for _, s := range []string{"", "shipped", "pending", "done"} {
		if _, err := ParseOrderStatus(s); err == nil {
			t.Errorf("ParseOrderStatus(%q) should fail", s)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPendingPayment, OrderStatusProcessing},
		{OrderStatusPendingPayment, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusOutForDelivery},
		{OrderStatusProcessing, OrderStatusReadyForPickup},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusOutForDelivery, OrderStatusCompleted},
		{OrderStatusReadyForPickup, OrderStatusCompleted},
	}
	for _, tt := range allowed {
		if !CanTransition(tt.from, tt.to) {
			t.Errorf("expected %s -> %s to be allowed", tt.from, tt.to)
		}
	}

	blocked := []struct{ from, to OrderStatus }{
		{OrderStatusCompleted, OrderStatusPendingPayment},
		{OrderStatusCompleted, OrderStatusProcessing},
		{OrderStatusCancelled, OrderStatusProcessing},
		{OrderStatusPendingPayment, OrderStatusCompleted},
		{OrderStatusPendingPayment, OrderStatusOutForDelivery},
		{OrderStatusOutForDelivery, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusProcessing},
	}
	for _, tt := range blocked {
		if CanTransition(tt.from, tt.to) {
			t.Errorf("expected %s -> %s to be rejected", tt.from, tt.to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		for next := range statusTransitions {
			if CanTransition(terminal, next) {
				t.Errorf("terminal status %s must not transition to %s", terminal, next)
			}
		}
	}
}

func TestCancellable(t *testing.T) {
	if !OrderStatusPendingPayment.Cancellable() || !OrderStatusProcessing.Cancellable() {
		t.Error("pending_payment and processing must be cancellable")
	}
	for _, s := range []OrderStatus{OrderStatusOutForDelivery, OrderStatusReadyForPickup, OrderStatusCompleted, OrderStatusCancelled} {
		if s.Cancellable() {
			t.Errorf("%s must not be cancellable", s)
		}
	}
}

func TestParseDeliveryTypeAndPaymentMethod(t *testing.T) {
	if dt, err := ParseDeliveryType("Delivery"); err != nil || dt != DeliveryTypeDelivery {
		t.Errorf("ParseDeliveryType: got %q, %v", dt, err)
	}
	if _, err := ParseDeliveryType("shipping"); err == nil {
		t.Error("ParseDeliveryType should reject unknown types")
	}
	if pm, err := ParsePaymentMethod("instapay"); err != nil || pm != PaymentMethodInstapay {
		t.Errorf("ParsePaymentMethod: got %q, %v", pm, err)
	}
	if _, err := ParsePaymentMethod("card"); err == nil {
		t.Error("ParsePaymentMethod should reject unknown methods")
	}
}
