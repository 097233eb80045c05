package entity

import "time"

// PaymentOrder is the merchant-side record of a prepared transaction.
// An order is opened when a payment form is created and closed when the
// gateway POST-back for the same merchant reference arrives.
type PaymentOrder struct {
	MerchantRef     string    `json:"merchant_ref" bson:"merchant_ref"`
	MerchantSession string    `json:"merchant_session" bson:"merchant_session"`
	Amount          float64   `json:"amount" bson:"amount"`
	Currency        int       `json:"currency" bson:"currency"`
	TransactionCode string    `json:"transaction_code" bson:"transaction_code"`
	EntityCode      string    `json:"entity_code,omitempty" bson:"entity_code,omitempty"`
	ReferenceNumber string    `json:"reference_number,omitempty" bson:"reference_number,omitempty"`
	TransactionId   string    `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	IsCompleted     bool      `json:"is_completed" bson:"is_completed"`
	Result          string    `json:"result" bson:"result"`
	TimeOpened      time.Time `json:"time_opened" bson:"time_opened"`
	TimeClosed      time.Time `json:"time_closed" bson:"time_closed"`
}
