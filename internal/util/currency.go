package util

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a whole-rupee amount with the rupee sign and Indian
// digit grouping, e.g. 1234567 -> "₹12,34,567".
func FormatINR(amount int64) string {
	return inrPrinter.Sprintf("₹%d", amount)
}

// FormatINRAmount renders a decimal amount with Indian grouping on the
// whole-rupee part, keeping any fractional paise as written.
func FormatINRAmount(d decimal.Decimal) string {
	whole := FormatINR(d.IntPart())
	if d.IsInteger() {
		return whole
	}
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return whole + s[i:]
	}
	return whole
}
