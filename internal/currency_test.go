package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyToCode(t *testing.T) {
	code, err := CurrencyToCode("CVE")
	require.NoError(t, err)
	assert.Equal(t, 132, code)

	code, err = CurrencyToCode("EUR")
	require.NoError(t, err)
	assert.Equal(t, 978, code)

	code, err = CurrencyToCode("USD")
	require.NoError(t, err)
	assert.Equal(t, 840, code)
}

func TestCurrencyToCodeCaseInsensitive(t *testing.T) {
	for symbol := range currencyCodes {
		upper, err := CurrencyToCode(symbol)
		require.NoError(t, err)
		lower, err := CurrencyToCode(strings.ToLower(symbol))
		require.NoError(t, err)
		assert.Equal(t, upper, lower, symbol)
	}
}

func TestCurrencyToCodeNumericPassThrough(t *testing.T) {
	code, err := CurrencyToCode("999")
	require.NoError(t, err)
	assert.Equal(t, 999, code)
}

func TestCurrencyToCodeInvalid(t *testing.T) {
	for _, token := range []string{"XXX", "", "12a", "-5", "1.5"} {
		_, err := CurrencyToCode(token)
		assert.ErrorIs(t, err, ErrInvalidCurrency, token)
	}
}
