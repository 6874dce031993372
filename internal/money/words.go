package money

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange reports a whole-euro part the numeral table cannot spell.
var ErrOutOfRange = errors.New("summa ārpus atbalstītā diapazona")

var ones = []string{
	"nulle", "viens", "divi", "trīs", "četri",
	"pieci", "seši", "septiņi", "astoņi", "deviņi",
}

var teens = []string{
	"desmit", "vienpadsmit", "divpadsmit", "trīspadsmit", "četrpadsmit",
	"piecpadsmit", "sešpadsmit", "septiņpadsmit", "astoņpadsmit", "deviņpadsmit",
}

var tens = []string{
	"", "", "divdesmit", "trīsdesmit", "četrdesmit",
	"piecdesmit", "sešdesmit", "septiņdesmit", "astoņdesmit", "deviņdesmit",
}

// scale words carry Latvian number: singular for groups ending in 1
// (except 11), plural otherwise.
var scales = []struct {
	value    int64
	singular string
	plural   string
}{
	{1_000_000_000, "miljards", "miljardi"},
	{1_000_000, "miljons", "miljoni"},
	{1_000, "tūkstotis", "tūkstoši"},
}

const maxSpellable = 999_999_999_999

// ToWords spells a whole number of euros as lowercase Latvian cardinal
// words, e.g. 4505 -> "četri tūkstoši pieci simti pieci".
func ToWords(n int64) (string, error) {
	if n > maxSpellable || n < -maxSpellable {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return ones[0], nil
	}

	var parts []string
	if n < 0 {
		parts = append(parts, "mīnus")
		n = -n
	}

	for _, sc := range scales {
		group := n / sc.value
		if group == 0 {
			continue
		}
		n -= group * sc.value
		parts = append(parts, spellTriple(group))
		if group%10 == 1 && group%100 != 11 {
			parts = append(parts, sc.singular)
		} else {
			parts = append(parts, sc.plural)
		}
	}
	if n > 0 {
		parts = append(parts, spellTriple(n))
	}

	return strings.Join(parts, " "), nil
}

// spellTriple spells 1..999.
func spellTriple(n int64) string {
	var parts []string

	if h := n / 100; h > 0 {
		if h == 1 {
			parts = append(parts, "simts")
		} else {
			parts = append(parts, ones[h], "simti")
		}
		n %= 100
	}

	switch {
	case n == 0:
	case n < 10:
		parts = append(parts, ones[n])
	case n < 20:
		parts = append(parts, teens[n-10])
	default:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, ones[n%10])
		}
	}

	return strings.Join(parts, " ")
}

// AmountInWords renders the full printed sentence body, e.g.
// "Četri tūkstoši pieci simti pieci eiro 00 centi". Conversion failures
// degrade to a diagnostic string; the document still generates.
func AmountInWords(d decimal.Decimal) string {
	euros := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(euros)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	// Rounding the fraction can yield a full euro; carry it rather than
	// print "100 centi".
	if cents >= 100 {
		euros++
		cents -= 100
	}
	if cents <= -100 {
		euros--
		cents += 100
	}
	if cents < 0 {
		cents = -cents
	}

	words, err := ToWords(euros)
	if err != nil {
		return "Kļūda aprēķinā: " + err.Error()
	}

	return fmt.Sprintf("%s eiro %02d centi", capitalize(words), cents)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
