package kurv

import (
	"math"
	"testing"
)

func TestStandardizedPrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		quantity float64
		unit     Unit
		want     float64
	}{
		{"500g for 25 is 50 per kg", 25, 500, Gram, 50},
		{"2kg for 40 is 20 per kg", 40, 2, Kilo, 20},
		{"1.5L for 30 is 20 per L", 30, 1.5, Liter, 20},
		{"3 pieces for 30 is 10 per piece", 30, 3, Piece, 10},
		{"zero quantity yields zero, not an error", 50, 0, Kilo, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StandardizedPrice(tc.price, tc.quantity, tc.unit)
			if err != nil {
				t.Fatalf("StandardizedPrice(%v, %v, %q): %v", tc.price, tc.quantity, tc.unit, err)
			}
			if got != tc.want {
				t.Errorf("StandardizedPrice(%v, %v, %q) = %v, want %v", tc.price, tc.quantity, tc.unit, got, tc.want)
			}
		})
	}
}

func TestStandardizedPrice_UnsupportedUnit(t *testing.T) {
	if _, err := StandardizedPrice(10, 1, "lb"); err == nil {
		t.Fatal("StandardizedPrice with unit lb should fail")
	}
}

func TestStandardizedPriceIn(t *testing.T) {
	rates := DefaultRates()

	// 500g of almonds for 12.50 EUR: 25 EUR/kg, 186 DKK/kg.
	got, err := StandardizedPriceIn(rates, AnchorCurrency, 12.50, 500, Gram, "EUR")
	if err != nil {
		t.Fatalf("StandardizedPriceIn: %v", err)
	}
	if math.Abs(got-186) > 1e-9 {
		t.Errorf("StandardizedPriceIn = %v, want 186", got)
	}

	if _, err := StandardizedPriceIn(rates, AnchorCurrency, 10, 1, Kilo, "XYZ"); err == nil {
		t.Error("StandardizedPriceIn with currency XYZ should fail")
	}
}
