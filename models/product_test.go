package models

import (
	"testing"
	"time"
)

func TestEffectivePrice(t *testing.T) {
	now := time.Now()
	sale := 80.0
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	p := Product{Price: 100}
	if got := p.EffectivePrice(now); got != 100 {
		t.Errorf("no sale: got %v, want 100", got)
	}

	p.SalePrice = &sale
	if got := p.EffectivePrice(now); got != 80 {
		t.Errorf("open-ended sale: got %v, want 80", got)
	}

	p.SaleEndsAt = &future
	if got := p.EffectivePrice(now); got != 80 {
		t.Errorf("active sale: got %v, want 80", got)
	}

	p.SaleEndsAt = &past
	if got := p.EffectivePrice(now); got != 100 {
		t.Errorf("expired sale: got %v, want 100", got)
	}
}
