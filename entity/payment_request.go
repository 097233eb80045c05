// Package entity defines data models for the Vinti4 payment service.
package entity

import (
	"encoding/json"
	"strconv"
)

// Transaction type codes recognized by the Vinti4 gateway.
const (
	TypePurchase = "1"
	TypeService  = "2"
	TypeRecharge = "3"
	TypeRefund   = "4"
)

// PaymentRequest holds the full field set of a single gateway transaction.
// It is populated once by a prepare call and amended once more during form
// creation, when the response URL and the computed fingerprint are attached.
type PaymentRequest struct {
	PosID              string       `json:"pos_id" bson:"pos_id"`
	MerchantRef        string       `json:"merchant_ref" bson:"merchant_ref"`
	MerchantSession    string       `json:"merchant_session" bson:"merchant_session"`
	Amount             float64      `json:"amount" bson:"amount"`
	Currency           int          `json:"currency" bson:"currency"`
	TransactionCode    string       `json:"transaction_code" bson:"transaction_code"`
	LanguageMessages   string       `json:"language_messages" bson:"language_messages"`
	EntityCode         string       `json:"entity_code" bson:"entity_code"`
	ReferenceNumber    string       `json:"reference_number" bson:"reference_number"`
	TimeStamp          string       `json:"time_stamp" bson:"time_stamp"`
	FingerPrintVersion string       `json:"fingerprint_version" bson:"fingerprint_version"`
	Is3DSec            string       `json:"is_3dsec" bson:"is_3dsec"`
	ResponseUrl        string       `json:"response_url" bson:"response_url"`
	ClearingPeriod     string       `json:"clearing_period" bson:"clearing_period"`
	TransactionId      string       `json:"transaction_id" bson:"transaction_id"`
	Reversal           string       `json:"reversal" bson:"reversal"`
	Email              string       `json:"email" bson:"email"`
	BillAddrCountry    string       `json:"bill_addr_country" bson:"bill_addr_country"`
	BillAddrCity       string       `json:"bill_addr_city" bson:"bill_addr_city"`
	BillAddrLine1      string       `json:"bill_addr_line1" bson:"bill_addr_line1"`
	BillAddrPostCode   string       `json:"bill_addr_post_code" bson:"bill_addr_post_code"`
	AddrMatch          string       `json:"addr_match" bson:"addr_match"`
	AcctID             string       `json:"acct_id" bson:"acct_id"`
	AcctInfo           map[string]any `json:"acct_info,omitempty" bson:"acct_info,omitempty"`
	Billing            *BillingInfo `json:"billing,omitempty" bson:"billing,omitempty"`
	Fingerprint        string       `json:"fingerprint" bson:"fingerprint"`
}

// Fields converts the request into the flat field set posted to the gateway,
// keyed by the gateway's own field names. The nested billing record is never
// emitted; form creation flattens it separately for purchase transactions.
func (r *PaymentRequest) Fields() map[string]string {
	fields := map[string]string{
		"posID":               r.PosID,
		"merchantRef":         r.MerchantRef,
		"merchantSession":     r.MerchantSession,
		"amount":              strconv.FormatFloat(r.Amount, 'f', -1, 64),
		"currency":            strconv.Itoa(r.Currency),
		"transactionCode":     r.TransactionCode,
		"languageMessages":    r.LanguageMessages,
		"entityCode":          r.EntityCode,
		"referenceNumber":     r.ReferenceNumber,
		"timeStamp":           r.TimeStamp,
		"fingerPrintVersion":  r.FingerPrintVersion,
		"is3DSec":             r.Is3DSec,
		"urlMerchantResponse": r.ResponseUrl,
	}
	if r.TransactionCode == TypeRefund {
		fields["clearingPeriod"] = r.ClearingPeriod
		fields["transactionID"] = r.TransactionId
		fields["reversal"] = r.Reversal
	}
	if r.Email != "" {
		fields["email"] = r.Email
	}
	if r.BillAddrCountry != "" {
		fields["billAddrCountry"] = r.BillAddrCountry
	}
	if r.BillAddrCity != "" {
		fields["billAddrCity"] = r.BillAddrCity
	}
	if r.BillAddrLine1 != "" {
		fields["billAddrLine1"] = r.BillAddrLine1
	}
	if r.BillAddrPostCode != "" {
		fields["billAddrPostCode"] = r.BillAddrPostCode
	}
	if r.AddrMatch != "" {
		fields["addrMatch"] = r.AddrMatch
	}
	if r.AcctID != "" {
		fields["acctID"] = r.AcctID
	}
	if len(r.AcctInfo) > 0 {
		if encoded, err := json.Marshal(r.AcctInfo); err == nil {
			fields["acctInfo"] = string(encoded)
		}
	}
	if r.Fingerprint != "" {
		fields["fingerprint"] = r.Fingerprint
	}
	return fields
}
