package entity

// PaymentForm is the result of form assembly: the gateway URL the browser
// must POST to, and the complete field set to submit as the form body.
type PaymentForm struct {
	PostUrl string            `json:"post_url"`
	Fields  map[string]string `json:"fields"`
}
