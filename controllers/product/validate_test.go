package productcontroller

import "testing"

func TestValidatePricing(t *testing.T) {
	sp := func(v float64) *float64 { return &v }

	if err := validatePricing(100, nil); err != nil {
		t.Errorf("plain price rejected: %v", err)
	}
	if err := validatePricing(100, sp(80)); err != nil {
		t.Errorf("valid sale price rejected: %v", err)
	}
	if err := validatePricing(100, sp(100)); err == nil {
		t.Error("sale_price equal to price must be rejected")
	}
	if err := validatePricing(100, sp(120)); err == nil {
		t.Error("sale_price above price must be rejected")
	}
	if err := validatePricing(0, nil); err == nil {
		t.Error("zero price must be rejected")
	}
	if err := validatePricing(100, sp(0)); err == nil {
		t.Error("zero sale_price must be rejected")
	}
}

func TestSortClause(t *testing.T) {
	cases := map[string]string{
		"price_asc":  "price asc",
		"price_desc": "price desc",
		"name":       "e_name asc",
		"newest":     "created_at desc",
		"":           "created_at desc",
		"bogus":      "created_at desc",
	}
	for key, want := range cases {
		if got := sortClause(key); got != want {
			t.Errorf("sortClause(%q) = %q, want %q", key, got, want)
		}
	}
}
