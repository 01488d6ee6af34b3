package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyForCountry(t *testing.T) {
	assert.Equal(t, "NGN", CurrencyForCountry("NG"))
	assert.Equal(t, "EUR", CurrencyForCountry("FR"))
	assert.Equal(t, "XOF", CurrencyForCountry("SN"))

	// Unknown or empty countries fall back to the default.
	assert.Equal(t, DefaultCurrency, CurrencyForCountry("ZZ"))
	assert.Equal(t, DefaultCurrency, CurrencyForCountry(""))
}

func TestValidCurrencyCode(t *testing.T) {
	assert.True(t, ValidCurrencyCode("NGN"))
	assert.True(t, ValidCurrencyCode("USD"))

	// A country code is not a currency code.
	assert.False(t, ValidCurrencyCode("US"))
	assert.False(t, ValidCurrencyCode(""))
	assert.False(t, ValidCurrencyCode("usd"))
	assert.False(t, ValidCurrencyCode("US1"))
	assert.False(t, ValidCurrencyCode("NAIRA"))
}
