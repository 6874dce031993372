package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "nulle"},
		{1, "viens"},
		{11, "vienpadsmit"},
		{21, "divdesmit viens"},
		{100, "simts"},
		{155, "simts piecdesmit pieci"},
		{500, "pieci simti"},
		{1000, "viens tūkstotis"},
		{4505, "četri tūkstoši pieci simti pieci"},
		{5451, "pieci tūkstoši četri simti piecdesmit viens"},
		{21000, "divdesmit viens tūkstotis"},
		{1_000_000, "viens miljons"},
		{2_000_003, "divi miljoni trīs"},
		{-42, "mīnus četrdesmit divi"},
	}

	for _, tt := range tests {
		got, err := ToWords(tt.n)
		if err != nil {
			t.Fatalf("ToWords(%d): %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("ToWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4505.00", "Četri tūkstoši pieci simti pieci eiro 00 centi"},
		{"5451.05", "Pieci tūkstoši četri simti piecdesmit viens eiro 05 centi"},
		{"0", "Nulle eiro 00 centi"},
		{"0.5", "Nulle eiro 50 centi"},
		{"1.99", "Viens eiro 99 centi"},
	}

	for _, tt := range tests {
		got := AmountInWords(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("AmountInWords(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAmountInWordsCentOverflow(t *testing.T) {
	// Rounding 4504.999 yields 100 cents; the overflow carries into the
	// whole-euro part instead of printing "100 centi".
	got := AmountInWords(decimal.RequireFromString("4504.999"))
	want := "Četri tūkstoši pieci simti pieci eiro 00 centi"
	if got != want {
		t.Errorf("AmountInWords(4504.999) = %q, want %q", got, want)
	}
}

func TestAmountInWordsOutOfRange(t *testing.T) {
	got := AmountInWords(decimal.New(1, 15)) // 10^15 euros
	if !strings.HasPrefix(got, "Kļūda aprēķinā:") {
		t.Errorf("expected diagnostic fallback, got %q", got)
	}
}

func TestAmountInWordsSuffix(t *testing.T) {
	got := AmountInWords(decimal.RequireFromString("4505.00"))
	if !strings.HasSuffix(got, "eiro 00 centi") {
		t.Errorf("AmountInWords(4505.00) = %q: want suffix %q", got, "eiro 00 centi")
	}
	if !strings.HasPrefix(got, "Četri") {
		t.Errorf("AmountInWords(4505.00) = %q: want capitalized cardinal prefix", got)
	}
}
