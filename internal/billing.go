package internal

import (
	"strings"

	"vinti4/entity"
)

const (
	// defaultCountryCode is the numeric country code used when no country
	// can be resolved from billing data (132 = Cabo Verde).
	defaultCountryCode = "132"
	// defaultCallingCode is the phone prefix fallback (238 = Cabo Verde).
	defaultCallingCode = "238"
)

// NormalizeBilling flattens billing information into the record the gateway
// expects. Resolution order per field: direct billing field, then nested
// user profile field, then a type-specific default. The input is never
// modified; the nested profile is discarded after extraction.
func NormalizeBilling(billing *entity.BillingInfo) entity.NormalizedBilling {
	var direct entity.BillingInfo
	if billing != nil {
		direct = *billing
	}
	var user entity.BillingUser
	if direct.User != nil {
		user = *direct.User
	}

	mobile := pick(direct.MobilePhone, user.MobilePhone)

	country := pick(direct.BillAddrCountry, user.Country)
	if country == "" {
		if mobile != "" {
			country = ExtractCountryCode(mobile)
		} else {
			country = defaultCountryCode
		}
	}

	return entity.NormalizedBilling{
		Email:    pick(direct.Email, user.Email),
		Country:  country,
		City:     pick(direct.BillAddrCity, user.City),
		Address:  pick(direct.BillAddrLine1, user.Address),
		PostCode: pick(direct.BillAddrPostCode, user.PostCode),
		Mobile:   mobile,
		AcctID:   user.ID,
	}
}

// ExtractCountryCode parses the international calling prefix from a phone
// number: "00" or "+" followed by up to three digits. Numbers without an
// international prefix resolve to the default calling code.
func ExtractCountryCode(phone string) string {
	trimmed := strings.TrimSpace(phone)
	hasPlus := strings.HasPrefix(trimmed, "+")

	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()

	if strings.HasPrefix(number, "00") {
		number = number[2:]
	} else if !hasPlus {
		return defaultCallingCode
	}
	if number == "" {
		return defaultCallingCode
	}
	if len(number) > 3 {
		number = number[:3]
	}
	return number
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
