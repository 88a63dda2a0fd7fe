// Package format renders amounts, record ids, and phone numbers the
// way the member-facing screens display them. Formatting never alters
// the underlying value, only its textual form.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency renders an amount as rupee text with thousands grouping and
// exactly two fractional digits, e.g. ₹1,000.00. Negative amounts get
// a leading minus: -₹500.00.
func Currency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteRune('₹')
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserts a comma before every group of three digits
// counted from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(digits[:first])
	for i := first; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
