package entity

// BillingUser is an optional nested cardholder profile attached to billing
// information. Its fields serve as fallbacks for the direct billing fields.
type BillingUser struct {
	ID          string `json:"id,omitempty" bson:"id,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	Country     string `json:"country,omitempty" bson:"country,omitempty"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	PostCode    string `json:"post_code,omitempty" bson:"post_code,omitempty"`
	MobilePhone string `json:"mobile_phone,omitempty" bson:"mobile_phone,omitempty"`
}

// BillingInfo carries cardholder billing data for purchase transactions.
// Direct fields take precedence over the nested user profile.
type BillingInfo struct {
	User             *BillingUser `json:"user,omitempty" bson:"user,omitempty"`
	Email            string       `json:"email,omitempty" bson:"email,omitempty"`
	BillAddrCountry  string       `json:"bill_addr_country,omitempty" bson:"bill_addr_country,omitempty"`
	BillAddrCity     string       `json:"bill_addr_city,omitempty" bson:"bill_addr_city,omitempty"`
	BillAddrLine1    string       `json:"bill_addr_line1,omitempty" bson:"bill_addr_line1,omitempty"`
	BillAddrPostCode string       `json:"bill_addr_post_code,omitempty" bson:"bill_addr_post_code,omitempty"`
	MobilePhone      string       `json:"mobile_phone,omitempty" bson:"mobile_phone,omitempty"`
}

// NormalizedBilling is the flat billing record embedded in the gateway's
// purchaseRequest payload. The JSON field names are part of the wire format.
type NormalizedBilling struct {
	Email    string `json:"email"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Address  string `json:"address"`
	PostCode string `json:"postCode"`
	Mobile   string `json:"mobile"`
	AcctID   string `json:"acctID"`
}
