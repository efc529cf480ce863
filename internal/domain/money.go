package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount with en-US grouping and exactly two fraction
// digits, e.g. 1234.5 -> "$1,234.50". Formatting works on the decimal's own
// digits so amounts never pass through float64.
func FormatUSD(d decimal.Decimal) string {
	r := d.Round(2)
	s := r.Abs().StringFixed(2)
	whole, frac := s[:len(s)-3], s[len(s)-2:]

	var grouped string
	if n, err := strconv.ParseUint(whole, 10, 64); err == nil {
		grouped = usd.Sprintf("%d", n)
	} else {
		grouped = groupThousands(whole)
	}

	out := "$" + grouped + "." + frac
	if r.IsNegative() {
		out = "-" + out
	}
	return out
}

// groupThousands inserts comma separators into a plain digit string. Only
// needed for amounts whose whole part does not fit in a uint64.
func groupThousands(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
