package entity

// Normalized payment outcome statuses.
const (
	StatusSuccess   = "SUCCESS"
	StatusCancelled = "CANCELLED"
	StatusDeclined  = "DECLINED"
	StatusError     = "ERROR"
	StatusUnknown   = "UNKNOWN"
)

// DccInfo holds dynamic currency conversion data the gateway reports when
// the cardholder is billed in a currency other than the merchant's.
type DccInfo struct {
	Currency            string `json:"currency" bson:"currency"`
	Rate                string `json:"rate,omitempty" bson:"rate,omitempty"`
	Markup              string `json:"markup,omitempty" bson:"markup,omitempty"`
	TransactionCurrency string `json:"transaction_currency,omitempty" bson:"transaction_currency,omitempty"`
}

// ResultDebug echoes the raw classification inputs for troubleshooting.
type ResultDebug struct {
	Timestamp       string `json:"timestamp" bson:"timestamp"`
	MessageType     string `json:"message_type" bson:"message_type"`
	ResponseCode    string `json:"response_code" bson:"response_code"`
	MerchantRef     string `json:"merchant_ref" bson:"merchant_ref"`
	MerchantSession string `json:"merchant_session" bson:"merchant_session"`
}

// PaymentResult is the normalized outcome of a gateway POST-back.
// Data always carries the raw input fields untouched.
type PaymentResult struct {
	Status  string            `json:"status" bson:"status"`
	Message string            `json:"message" bson:"message"`
	Success bool              `json:"success" bson:"success"`
	Data    map[string]string `json:"data" bson:"data"`
	Dcc     *DccInfo          `json:"dcc,omitempty" bson:"dcc,omitempty"`
	Debug   *ResultDebug      `json:"debug,omitempty" bson:"debug,omitempty"`
}
