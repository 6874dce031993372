package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatEUR(t *testing.T) {
	sep := string(ThousandsSep)

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"0.5", "0,50"},
		{"1000", "1" + sep + "000,00"},
		{"4505", "4" + sep + "505,00"},
		{"946.05", "946,05"},
		{"5451.05", "5" + sep + "451,05"},
		{"1234567.89", "1" + sep + "234" + sep + "567,89"},
		{"-12.3", "-12,30"},
		{"999999.999", "1" + sep + "000" + sep + "000,00"},
	}

	for _, tt := range tests {
		got := FormatEUR(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("FormatEUR(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatEURShape(t *testing.T) {
	// Every formatted amount has exactly one comma followed by two digits.
	for _, in := range []string{"0", "0.5", "1000", "1234567.89", "-12.3"} {
		got := FormatEUR(decimal.RequireFromString(in))
		if strings.Count(got, ",") != 1 {
			t.Errorf("FormatEUR(%s) = %q: want exactly one comma", in, got)
		}
		if len(got) < 4 || got[len(got)-3] != ',' {
			t.Errorf("FormatEUR(%s) = %q: want two fraction digits", in, got)
		}
	}
}
