package catalog

import (
	"testing"
)

func price(v float64) *float64 { return &v }

func TestProduct_DiscountPercentRounds(t *testing.T) {
	cases := []struct {
		price    float64
		original *float64
		want     int
	}{
		{99, price(149), 34},  // 33.56 rounds up
		{199, price(299), 33}, // 33.44 rounds down
		{50, price(100), 50},
		{149, nil, 0},
		{10, price(0), 0},
	}
	for _, c := range cases {
		p := Product{Price: c.price, OriginalPrice: c.original}
		if got := p.DiscountPercent(); got != c.want {
			t.Errorf("DiscountPercent(%v/%v) = %d, want %d", c.price, c.original, got, c.want)
		}
	}
}

func TestProduct_Discounted(t *testing.T) {
	if (&Product{Price: 99, OriginalPrice: price(149)}).Discounted() != true {
		t.Error("99/149 should be discounted")
	}
	if (&Product{Price: 149}).Discounted() {
		t.Error("no original price should not be discounted")
	}
	if (&Product{Price: 99, OriginalPrice: price(99)}).Discounted() {
		t.Error("equal original price should not be discounted")
	}
}
