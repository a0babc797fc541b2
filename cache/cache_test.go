package cache

import (
	"context"
	"testing"
	"time"
)

func TestNilClientIsNoOp(t *testing.T) {
	ctx := context.Background()

	var p *Pages
	p.Invalidate(ctx, TagProducts)
	if _, ok := p.Get(ctx, TagProducts); ok {
		t.Fatal("nil Pages must never report a hit")
	}

	p = NewPages(nil, time.Minute)
	p.Set(ctx, TagHome, "payload")
	p.Invalidate(ctx, TagHome, TagOrders)
	if _, ok := p.Get(ctx, TagHome); ok {
		t.Fatal("Pages without a Redis client must never report a hit")
	}
}

func TestTagHelpers(t *testing.T) {
	if got := ProductTag(7); got != "product:7" {
		t.Errorf("ProductTag(7) = %q", got)
	}
	if got := CategoryTag(3); got != "category:3" {
		t.Errorf("CategoryTag(3) = %q", got)
	}
	if got := OrderTag(12); got != "order:12" {
		t.Errorf("OrderTag(12) = %q", got)
	}
	if got := UserOrdersTag("u-1"); got != "orders:user:u-1" {
		t.Errorf("UserOrdersTag = %q", got)
	}
}
