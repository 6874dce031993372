package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ThousandsSep is the Latvian digit-group separator (no-break space).
const ThousandsSep = '\u00a0'

// FormatEUR formats an amount with exactly two fraction digits, a comma as
// the decimal separator and no-break spaces between thousands groups, e.g.
// 4505 -> "4 505,00". No currency symbol; callers add "€ " where needed.
func FormatEUR(d decimal.Decimal) string {
	s := d.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	// StringFixed(2) guarantees a trailing ".NN".
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(ThousandsSep)
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}
