package internal

import (
	"fmt"
	"html/template"
	"strings"

	"vinti4/entity"
)

// The gateway is redirect-based: the browser must POST the full field set
// to the gateway URL. The page submits itself on load.
const paymentFormTemplate = `<!DOCTYPE html>
<html lang="pt">
<head><title>Vinti4 Payment</title></head>
<body onload="document.forms[0].submit()">
<form method="post" action="{{.PostUrl}}">
{{- range $name, $value := .Fields}}
<input type="hidden" name="{{$name}}" value="{{$value}}">
{{- end}}
</form>
<p>Redirecting to the payment gateway...</p>
</body>
</html>`

var formTemplate = template.Must(template.New("payment-form").Parse(paymentFormTemplate))

// RenderPaymentForm renders the self-submitting HTML form that hands the
// prepared transaction over to the gateway.
func RenderPaymentForm(form *entity.PaymentForm) (string, error) {
	var page strings.Builder
	if err := formTemplate.Execute(&page, form); err != nil {
		return "", fmt.Errorf("render payment form: %w", err)
	}
	return page.String(), nil
}
