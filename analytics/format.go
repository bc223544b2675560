package analytics

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders v as "<currency> <amount>" rounded half away from
// zero to decimals places, e.g. "ZAR 1234.50".
func FormatMoney(v float64, currency string, decimals int) string {
	if currency == "" {
		currency = "ZAR"
	}
	return currency + " " + FormatAmount(v, decimals)
}

// FormatAmount rounds v half away from zero to decimals places.
func FormatAmount(v float64, decimals int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(max(decimals, 0)))
}

// KnownCurrency reports whether code is an ISO 4217 currency code.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// CurrencyDecimals returns the minor-unit digits for code, or 2 when the
// code is unknown.
func CurrencyDecimals(code string) int {
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil {
		return c.Fraction
	}
	return 2
}
