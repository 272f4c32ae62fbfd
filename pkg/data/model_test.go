package data

import "testing"

func TestParseKMNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"KM# 38", 38},
		{"KM #38", 38},
		{"38", 38},
		{"", 0},
		{"n/a", 0},
	}
	for _, c := range cases {
		if got := ParseKMNumber(c.raw); got != c.want {
			t.Errorf("ParseKMNumber(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestNumericValue(t *testing.T) {
	cases := []struct {
		value string
		want  float64
	}{
		{"1.50", 1.5},
		{"$ 12.75", 12.75},
		{"0.99 EUR", 0.99},
		{"", 0},
		{"unknown", 0},
	}
	for _, c := range cases {
		coin := &Coin{Value: c.value}
		if got := coin.NumericValue(); got != c.want {
			t.Errorf("NumericValue(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestNumericYear(t *testing.T) {
	coin := &Coin{Year: "1867"}
	if got := coin.NumericYear(); got != 1867 {
		t.Errorf("NumericYear = %d, want 1867", got)
	}

	coin = &Coin{Year: ""}
	if got := coin.NumericYear(); got != 0 {
		t.Errorf("NumericYear on empty year = %d, want 0", got)
	}

	coin = &Coin{Year: "ND"}
	if got := coin.NumericYear(); got != 0 {
		t.Errorf("NumericYear on non-numeric year = %d, want 0", got)
	}
}

func TestKeyDistinguishesCoins(t *testing.T) {
	a := &Coin{Issuer: "Papal States", Year: "1867", Denomination: "10 soldi", KMNumber: 38}
	b := &Coin{Issuer: "Papal States", Year: "1867", Denomination: "10 soldi", KMNumber: 39}
	c := &Coin{Issuer: "Papal States", Year: "1867", Denomination: "10 soldi", KMNumber: 38}

	if a.Key() == b.Key() {
		t.Error("Expected coins with different KM numbers to have different keys")
	}
	if a.Key() != c.Key() {
		t.Error("Expected identical coins to share a key")
	}
}
