package common

import (
	"fmt"
	"strings"
)

// currencySymbol returns the display prefix for a currency code.
func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "INR":
		return "₹"
	case "USD":
		return "US$"
	case "AUD":
		return "A$"
	default:
		return "$"
	}
}

// groupThousands inserts comma separators into a whole-number string.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// FormatMoneyWithCurrency formats a float as a currency amount with the
// appropriate symbol. INR -> "₹1,234.56", USD -> "US$1,234.56".
func FormatMoneyWithCurrency(v float64, currency string) string {
	sym := currencySymbol(currency)
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := groupThousands(fmt.Sprintf("%d", whole))
	if negative {
		return fmt.Sprintf("-%s%s.%02d", sym, s, cents)
	}
	return fmt.Sprintf("%s%s.%02d", sym, s, cents)
}

// FormatPrice formats an optional price. A nil price renders as unknown.
func FormatPrice(v *float64, currency string) string {
	if v == nil {
		return "—"
	}
	return FormatMoneyWithCurrency(*v, currency)
}

// FormatSigned formats a number with +/- prefix.
func FormatSigned(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatSignedPct formats an optional percentage with +/- prefix.
func FormatSignedPct(v *float64) string {
	if v == nil {
		return "—"
	}
	if *v >= 0 {
		return fmt.Sprintf("+%.2f%%", *v)
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// FormatMarketCap formats market cap with an appropriate suffix (M/B/T).
func FormatMarketCap(v *float64) string {
	if v == nil {
		return "—"
	}
	switch {
	case *v >= 1e12:
		return fmt.Sprintf("%.2fT", *v/1e12)
	case *v >= 1e9:
		return fmt.Sprintf("%.2fB", *v/1e9)
	default:
		return fmt.Sprintf("%.2fM", *v/1e6)
	}
}

// FormatRatio formats an optional ratio with two decimals, "—" when absent.
func FormatRatio(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *v)
}
