package internal

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"time"

	"vinti4/entity"
)

const (
	// defaultEndpoint is the production card payment URL of the gateway.
	defaultEndpoint = "https://mc.vinti4net.cv/BizMPIOnUsSisp/CardPayment"
	defaultCurrency = "CVE"
	defaultLanguage = "pt"
	is3DSecEnabled  = "1"

	// timeStampLayout is the ISO-8601 format the gateway expects.
	timeStampLayout = "2006-01-02T15:04:05.000Z07:00"
	// compactTimeLayout is the 14-digit timestamp used for generated
	// merchant references and sessions.
	compactTimeLayout = "20060102150405"
)

// Client prepares a single signed transaction for the Vinti4 gateway.
// Each instance handles exactly one prepared payment: the first successful
// prepare call commits the request, any further prepare call fails.
type Client struct {
	posID    string
	authCode string
	endpoint string
	request  *entity.PaymentRequest
	prepared bool
	now      func() time.Time
}

// NewClient creates a payment client for the given merchant terminal.
// An empty endpoint selects the production gateway URL.
func NewClient(posID, authCode, endpoint string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		posID:    posID,
		authCode: authCode,
		endpoint: endpoint,
		request:  &entity.PaymentRequest{},
		now:      time.Now,
	}
}

// SetClock replaces the wall clock used for timestamps and generated
// references. Intended for tests.
func (c *Client) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// Request exposes the pending payment request for inspection.
func (c *Client) Request() *entity.PaymentRequest {
	return c.request
}

// PreparePurchasePayment prepares a card purchase. An empty currency selects
// the merchant's home currency.
func (c *Client) PreparePurchasePayment(amount float64, billing *entity.BillingInfo, currency string) error {
	return c.prepare(prepareParams{
		amount:          amount,
		transactionCode: entity.TypePurchase,
		currency:        currency,
		billing:         billing,
	})
}

// PrepareServicePayment prepares a bill payment addressed to the given
// service entity and reference number.
func (c *Client) PrepareServicePayment(amount float64, entityCode, referenceNumber string) error {
	return c.prepare(prepareParams{
		amount:          amount,
		transactionCode: entity.TypeService,
		entityCode:      entityCode,
		referenceNumber: referenceNumber,
	})
}

// PrepareRechargePayment prepares a phone credit recharge addressed to the
// given operator entity and subscriber number.
func (c *Client) PrepareRechargePayment(amount float64, entityCode, referenceNumber string) error {
	return c.prepare(prepareParams{
		amount:          amount,
		transactionCode: entity.TypeRecharge,
		entityCode:      entityCode,
		referenceNumber: referenceNumber,
	})
}

// PrepareRefundPayment prepares a reversal of a previously settled payment.
// MerchantRef and merchantSession must identify the original transaction.
func (c *Client) PrepareRefundPayment(amount float64, merchantRef, merchantSession, transactionId, clearingPeriod string) error {
	return c.prepare(prepareParams{
		amount:          amount,
		transactionCode: entity.TypeRefund,
		merchantRef:     merchantRef,
		merchantSession: merchantSession,
		transactionId:   transactionId,
		clearingPeriod:  clearingPeriod,
	})
}

// SetRequestParams merges caller-supplied fields into the pending request.
// Keys outside the recognized field set are rejected; currency values are
// resolved to numeric codes.
func (c *Client) SetRequestParams(params map[string]any) error {
	for key, value := range params {
		if err := c.setParam(key, value); err != nil {
			return err
		}
	}
	return nil
}

// CreatePaymentForm finalizes the prepared request: attaches the response
// URL and optional merchant reference override, flattens billing data for
// purchases, computes the fingerprint and assembles the redirect target.
// The returned form is the complete hand-off to the HTML renderer.
func (c *Client) CreatePaymentForm(responseUrl string, merchantRef string) (*entity.PaymentForm, error) {
	if !c.prepared {
		return nil, fmt.Errorf("no prepared payment")
	}

	c.request.ResponseUrl = responseUrl
	if merchantRef != "" {
		c.request.MerchantRef = merchantRef
	}

	fields := c.request.Fields()

	// For purchases the gateway wants the billing record twice: flattened
	// into top-level fields and serialized under purchaseRequest. The nested
	// record itself never appears in the field set.
	if c.request.TransactionCode == entity.TypePurchase {
		normalized := NormalizeBilling(c.request.Billing)
		fields["email"] = normalized.Email
		fields["billAddrCountry"] = normalized.Country
		fields["billAddrCity"] = normalized.City
		fields["billAddrLine1"] = normalized.Address
		fields["billAddrPostCode"] = normalized.PostCode
		if normalized.Mobile != "" {
			fields["mobilePhone"] = normalized.Mobile
		}
		if normalized.AcctID != "" {
			fields["acctID"] = normalized.AcctID
		}
		payload, err := json.Marshal(normalized)
		if err != nil {
			return nil, fmt.Errorf("encode purchase request: %w", err)
		}
		fields["purchaseRequest"] = string(payload)
	}

	fingerprint := NewFingerprinter(c.authCode, c.request).CreateFingerprint()
	c.request.Fingerprint = fingerprint
	fields["fingerprint"] = fingerprint

	query := url.Values{}
	query.Set("FingerPrint", fingerprint)
	query.Set("TimeStamp", c.request.TimeStamp)
	query.Set("FingerPrintVersion", c.request.FingerPrintVersion)

	return &entity.PaymentForm{
		PostUrl: fmt.Sprintf("%s?%s", c.endpoint, query.Encode()),
		Fields:  fields,
	}, nil
}

type prepareParams struct {
	amount          float64
	transactionCode string
	currency        string
	billing         *entity.BillingInfo
	entityCode      string
	referenceNumber string
	merchantRef     string
	merchantSession string
	transactionId   string
	clearingPeriod  string
}

func (c *Client) prepare(params prepareParams) error {
	if c.prepared {
		return ErrAlreadyPrepared
	}

	currency := params.currency
	if currency == "" {
		currency = defaultCurrency
	}
	code, err := CurrencyToCode(currency)
	if err != nil {
		return err
	}

	now := c.now().UTC()
	compact := now.Format(compactTimeLayout)

	merchantRef := params.merchantRef
	if merchantRef == "" {
		merchantRef = "R" + compact
	}
	merchantSession := params.merchantSession
	if merchantSession == "" {
		merchantSession = "S" + compact
	}

	c.request = &entity.PaymentRequest{
		PosID:              c.posID,
		MerchantRef:        merchantRef,
		MerchantSession:    merchantSession,
		Amount:             math.Floor(params.amount),
		Currency:           code,
		TransactionCode:    params.transactionCode,
		LanguageMessages:   defaultLanguage,
		EntityCode:         params.entityCode,
		ReferenceNumber:    params.referenceNumber,
		TimeStamp:          now.Format(timeStampLayout),
		FingerPrintVersion: FingerPrintVersion,
		Is3DSec:            is3DSecEnabled,
		TransactionId:      params.transactionId,
		ClearingPeriod:     params.clearingPeriod,
		Billing:            params.billing,
	}
	c.prepared = true

	return nil
}

func (c *Client) setParam(key string, value any) error {
	switch key {
	case "merchantRef":
		c.request.MerchantRef = asString(value)
	case "merchantSession":
		c.request.MerchantSession = asString(value)
	case "languageMessages":
		c.request.LanguageMessages = asString(value)
	case "entityCode":
		c.request.EntityCode = asString(value)
	case "referenceNumber":
		c.request.ReferenceNumber = asString(value)
	case "timeStamp":
		c.request.TimeStamp = asString(value)
	case "billing":
		billing, err := asBilling(value)
		if err != nil {
			return err
		}
		c.request.Billing = billing
	case "currency":
		code, err := CurrencyToCode(asString(value))
		if err != nil {
			return err
		}
		c.request.Currency = code
	case "acctID":
		c.request.AcctID = asString(value)
	case "acctInfo":
		info, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("acctInfo: expected object, got %T", value)
		}
		c.request.AcctInfo = info
	case "addrMatch":
		c.request.AddrMatch = asString(value)
	case "billAddrCountry":
		c.request.BillAddrCountry = asString(value)
	case "billAddrCity":
		c.request.BillAddrCity = asString(value)
	case "billAddrLine1":
		c.request.BillAddrLine1 = asString(value)
	case "billAddrPostCode":
		c.request.BillAddrPostCode = asString(value)
	case "email":
		c.request.Email = asString(value)
	case "clearingPeriod":
		c.request.ClearingPeriod = asString(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	return nil
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func asBilling(value any) (*entity.BillingInfo, error) {
	switch billing := value.(type) {
	case *entity.BillingInfo:
		return billing, nil
	case entity.BillingInfo:
		return &billing, nil
	default:
		return nil, fmt.Errorf("billing: expected billing info, got %T", value)
	}
}
