// Package core holds the finance calculator: pure functions computing the
// available balance, currency formatting and the status indicator from
// budget/spent values as they appear in the sheet.
package core

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a currency string as stored in the sheet. It strips the
// currency symbol and thousands separators before parsing, so "$1,200.00",
// "1200" and " 1200.5 " are all accepted.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// CalculateAvailable returns budgeted minus spent. When either value does not
// parse as a number the result degrades to 0.0 so the dashboard keeps
// rendering; the warning is the only trace of the bad cell, so keep it.
func CalculateAvailable(budget, spent string) float64 {
	b, err := ParseAmount(budget)
	if err != nil {
		slog.Warn("Unparsable budgeted value, available degrades to zero", "value", budget)
		return 0.0
	}
	sp, err := ParseAmount(spent)
	if err != nil {
		slog.Warn("Unparsable spent value, available degrades to zero", "value", spent)
		return 0.0
	}
	return b - sp
}

// FormatCurrency renders an amount as "$1,234.50": currency symbol, thousands
// separators, exactly two decimals. The sign precedes the symbol.
func FormatCurrency(amount float64) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := groupThousands(strconv.FormatInt(cents/100, 10))
	s := "$" + whole + "." + pad2(cents%100)
	if neg {
		return "-" + s
	}
	return s
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
