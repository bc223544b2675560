package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        float64
		currency string
		decimals int
		want     string
	}{
		{12.3, "ZAR", 2, "ZAR 12.30"},
		{-45.678, "USD", 2, "USD -45.68"},
		{2.345, "EUR", 2, "EUR 2.35"},
		{1500, "JPY", 0, "JPY 1500"},
		{7, "", 2, "ZAR 7.00"},
		{7.25, "GBP", -1, "GBP 7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.v, tt.currency, tt.decimals))
	}
}

func TestKnownCurrency(t *testing.T) {
	t.Parallel()

	assert.True(t, KnownCurrency("ZAR"))
	assert.True(t, KnownCurrency("usd"))
	assert.False(t, KnownCurrency("XYZ"))
	assert.False(t, KnownCurrency(""))

	assert.Equal(t, 2, CurrencyDecimals("ZAR"))
	assert.Equal(t, 0, CurrencyDecimals("JPY"))
	assert.Equal(t, 2, CurrencyDecimals("nope"))
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.10", FormatAmount(0.1, 2))
	assert.Equal(t, "-3", FormatAmount(-2.5, 0))
	assert.Equal(t, "1.23457", FormatAmount(1.234567, 5))
}
