package entity

// PurchaseParams is the request body of the purchase endpoint.
type PurchaseParams struct {
	Amount      float64      `json:"amount"`
	Currency    string       `json:"currency"`
	MerchantRef string       `json:"merchant_ref"`
	Billing     *BillingInfo `json:"billing,omitempty"`
}

// ServiceParams is the request body of the service payment and recharge
// endpoints: bill-pay style transactions addressed by entity and reference.
type ServiceParams struct {
	Amount          float64 `json:"amount"`
	EntityCode      string  `json:"entity_code"`
	ReferenceNumber string  `json:"reference_number"`
	MerchantRef     string  `json:"merchant_ref"`
}

// RefundParams is the request body of the refund endpoint. MerchantRef and
// MerchantSession must match the original payment being reversed.
type RefundParams struct {
	Amount          float64 `json:"amount"`
	MerchantRef     string  `json:"merchant_ref"`
	MerchantSession string  `json:"merchant_session"`
	TransactionId   string  `json:"transaction_id"`
	ClearingPeriod  string  `json:"clearing_period"`
}
