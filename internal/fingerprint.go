package internal

import (
	"strconv"
	"strings"

	"gitee.com/golang-module/dongle"
	"vinti4/entity"
)

// FingerPrintVersion is the fingerprint protocol version sent to the gateway.
const FingerPrintVersion = "1"

// Fingerprinter computes the gateway authentication token for a prepared
// request. The token is a two-stage digest: first the merchant authorization
// secret is hashed, then the hash is concatenated with the transaction fields
// in the exact order the gateway verifies and hashed again.
type Fingerprinter struct {
	authCode string
	request  *entity.PaymentRequest
}

func NewFingerprinter(authCode string, request *entity.PaymentRequest) *Fingerprinter {
	return &Fingerprinter{
		authCode: authCode,
		request:  request,
	}
}

// CreateFingerprint builds the ordered character sequence for the request's
// transaction category and returns its Base64 SHA-512 digest. The field order
// and the milli-unit amount truncation are a wire contract with the gateway;
// any deviation makes the gateway reject the transaction with a generic
// decline, not a protocol error.
func (f *Fingerprinter) CreateFingerprint() string {
	token := sha512Base64(f.authCode)

	r := f.request
	amount := strconv.FormatInt(amountUnits(r.Amount), 10)
	currency := strconv.Itoa(r.Currency)

	var parts []string
	if r.TransactionCode == entity.TypeRefund {
		parts = []string{
			token,
			r.TransactionCode,
			r.PosID,
			r.MerchantRef,
			r.MerchantSession,
			amount,
			currency,
			r.ClearingPeriod,
			r.TransactionId,
			r.Reversal,
			r.ResponseUrl,
			r.LanguageMessages,
			r.FingerPrintVersion,
			r.TimeStamp,
		}
	} else {
		parts = []string{
			token,
			r.TimeStamp,
			amount,
			r.MerchantRef,
			r.MerchantSession,
			r.PosID,
			currency,
			r.TransactionCode,
			r.EntityCode,
			r.ReferenceNumber,
		}
	}

	return sha512Base64(strings.Join(parts, ""))
}

// amountUnits converts an amount to gateway milli-units, truncated toward
// zero: 10.9999 becomes 10999, never 11000.
func amountUnits(amount float64) int64 {
	return int64(amount * 1000)
}

func sha512Base64(value string) string {
	return dongle.Encrypt.FromString(value).BySha512().ToBase64String()
}
