package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vinti4/entity"
)

func TestNormalizeBillingDirectFieldsWin(t *testing.T) {
	billing := &entity.BillingInfo{
		Email:           "a@x.com",
		BillAddrCountry: "840",
		BillAddrCity:    "Praia",
		User: &entity.BillingUser{
			Email:   "b@x.com",
			Country: "978",
			City:    "Mindelo",
		},
	}

	normalized := NormalizeBilling(billing)
	assert.Equal(t, "a@x.com", normalized.Email)
	assert.Equal(t, "840", normalized.Country)
	assert.Equal(t, "Praia", normalized.City)
}

func TestNormalizeBillingUserFallback(t *testing.T) {
	billing := &entity.BillingInfo{
		User: &entity.BillingUser{
			ID:       "acc-1",
			Email:    "b@x.com",
			Country:  "978",
			City:     "Mindelo",
			Address:  "Rua Lisboa",
			PostCode: "2110",
		},
	}

	normalized := NormalizeBilling(billing)
	assert.Equal(t, "b@x.com", normalized.Email)
	assert.Equal(t, "978", normalized.Country)
	assert.Equal(t, "Mindelo", normalized.City)
	assert.Equal(t, "Rua Lisboa", normalized.Address)
	assert.Equal(t, "2110", normalized.PostCode)
	assert.Equal(t, "acc-1", normalized.AcctID)
}

func TestNormalizeBillingDefaults(t *testing.T) {
	normalized := NormalizeBilling(&entity.BillingInfo{})
	assert.Equal(t, "", normalized.Email)
	assert.Equal(t, "132", normalized.Country)
	assert.Equal(t, "", normalized.City)
	assert.Equal(t, "", normalized.Address)
	assert.Equal(t, "", normalized.AcctID)

	normalized = NormalizeBilling(nil)
	assert.Equal(t, "132", normalized.Country)
}

func TestNormalizeBillingCountryFromPhone(t *testing.T) {
	billing := &entity.BillingInfo{
		MobilePhone: "+351 912 345 678",
	}
	normalized := NormalizeBilling(billing)
	assert.Equal(t, "351", normalized.Country)
	assert.Equal(t, "+351 912 345 678", normalized.Mobile)
}

func TestNormalizeBillingDoesNotMutateInput(t *testing.T) {
	user := &entity.BillingUser{Email: "b@x.com"}
	billing := &entity.BillingInfo{User: user}

	NormalizeBilling(billing)

	assert.Same(t, user, billing.User)
	assert.Equal(t, "b@x.com", billing.User.Email)
	assert.Equal(t, "", billing.Email)
}

func TestExtractCountryCode(t *testing.T) {
	tests := []struct {
		phone string
		code  string
	}{
		{"+2389911223", "238"},
		{"002389911223", "238"},
		{"+351912345678", "351"},
		{"0044 20 7946 0958", "442"},
		{"+1 555 0100", "155"},
		{"9911223", "238"},
		{"", "238"},
		{"+", "238"},
		{"00", "238"},
	}
	for _, test := range tests {
		assert.Equal(t, test.code, ExtractCountryCode(test.phone), test.phone)
	}
}
