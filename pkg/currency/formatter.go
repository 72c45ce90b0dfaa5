package currency

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD renders an amount as "$1,234.50". Cents are rounded half away
// from zero.
func FormatUSD(amount float64) string {
	cents := math.Round(amount * 100)

	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := fmt.Sprintf("%.0f", math.Floor(cents/100))
	frac := int64(cents) % 100

	result := fmt.Sprintf("$%s.%02d", addThousandsSeparator(whole, ","), frac)
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)

	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteString(sep)
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
