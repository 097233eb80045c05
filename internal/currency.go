package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// currencyCodes maps ISO 4217 currency symbols to their numeric codes.
// The gateway accepts numeric codes only.
var currencyCodes = map[string]int{
	"CVE": 132,
	"USD": 840,
	"EUR": 978,
	"BRL": 986,
	"GBP": 826,
	"JPY": 392,
	"AUD": 36,
	"CAD": 124,
	"CHF": 756,
	"CNY": 156,
	"INR": 356,
	"ZAR": 710,
	"RUB": 643,
	"MXN": 484,
	"KRW": 410,
	"SGD": 702,
}

// CurrencyToCode resolves a currency token to its numeric code. Known
// three-letter symbols are looked up case-insensitively; purely numeric
// tokens pass through unchanged.
func CurrencyToCode(currency string) (int, error) {
	if code, ok := currencyCodes[strings.ToUpper(currency)]; ok {
		return code, nil
	}
	if currency != "" && isDigits(currency) {
		code, err := strconv.Atoi(currency)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
		}
		return code, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
