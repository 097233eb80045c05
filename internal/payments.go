package internal

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"vinti4/config"
	"vinti4/entity"
	"vinti4/services"
)

// Payments prepares signed Vinti4 transactions and interprets gateway
// POST-backs. Every prepare operation builds a fresh one-shot client, so
// no request state is shared between transactions.
type Payments struct {
	conf     *config.Config
	database services.Database
	logger   services.LogHandler
}

func NewPayments(conf *config.Config) *Payments {
	return &Payments{
		conf: conf,
	}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	if p.conf.DisablePayment {
		p.logger.Warn("service disabled")
	} else {
		p.logger.Info("service enabled")
	}
}

// Purchase prepares a card purchase and returns the redirect form.
func (p *Payments) Purchase(ctx context.Context, params *entity.PurchaseParams) (*entity.PaymentForm, error) {
	client, err := p.newClient()
	if err != nil {
		return nil, err
	}
	if err = client.PreparePurchasePayment(params.Amount, params.Billing, params.Currency); err != nil {
		return nil, fmt.Errorf("prepare purchase: %w", err)
	}
	return p.createForm(ctx, client, params.MerchantRef)
}

// ServicePayment prepares a bill payment and returns the redirect form.
func (p *Payments) ServicePayment(ctx context.Context, params *entity.ServiceParams) (*entity.PaymentForm, error) {
	client, err := p.newClient()
	if err != nil {
		return nil, err
	}
	if err = client.PrepareServicePayment(params.Amount, params.EntityCode, params.ReferenceNumber); err != nil {
		return nil, fmt.Errorf("prepare service payment: %w", err)
	}
	return p.createForm(ctx, client, params.MerchantRef)
}

// Recharge prepares a phone recharge and returns the redirect form.
func (p *Payments) Recharge(ctx context.Context, params *entity.ServiceParams) (*entity.PaymentForm, error) {
	client, err := p.newClient()
	if err != nil {
		return nil, err
	}
	if err = client.PrepareRechargePayment(params.Amount, params.EntityCode, params.ReferenceNumber); err != nil {
		return nil, fmt.Errorf("prepare recharge: %w", err)
	}
	return p.createForm(ctx, client, params.MerchantRef)
}

// Refund prepares a reversal of a settled payment and returns the
// redirect form.
func (p *Payments) Refund(ctx context.Context, params *entity.RefundParams) (*entity.PaymentForm, error) {
	client, err := p.newClient()
	if err != nil {
		return nil, err
	}
	err = client.PrepareRefundPayment(params.Amount, params.MerchantRef, params.MerchantSession, params.TransactionId, params.ClearingPeriod)
	if err != nil {
		return nil, fmt.Errorf("prepare refund: %w", err)
	}
	return p.createForm(ctx, client, "")
}

// Notify processes a payment POST-back delivered by the gateway to the
// merchant response URL. The raw body is a urlencoded field set.
func (p *Payments) Notify(ctx context.Context, data []byte) (*entity.PaymentResult, error) {
	params, err := url.ParseQuery(string(data))
	if err != nil {
		p.logger.Info(string(data))
		return nil, fmt.Errorf("parse query: %w", err)
	}

	postData := make(map[string]string, len(params))
	for key := range params {
		postData[key] = params.Get(key)
	}

	result := ProcessResponse(postData)
	p.logger.Info(fmt.Sprintf("response: status %s; type %s; code %s; ref %s",
		result.Status, postData["MessageType"], postData["ResponseCode"], postData["MerchantRef"]))

	if p.database != nil {
		if err = p.database.SavePaymentResult(ctx, result); err != nil {
			p.logger.Error("save payment result", err)
		}
		p.closeOrder(ctx, postData["MerchantRef"], result)
	}

	return result, nil
}

func (p *Payments) newClient() (*Client, error) {
	if p.conf.DisablePayment {
		return nil, fmt.Errorf("payment service disabled")
	}
	if p.conf.Merchant.PosID == "" || p.conf.Merchant.AuthCode == "" {
		return nil, fmt.Errorf("merchant not configured")
	}
	return NewClient(p.conf.Merchant.PosID, p.conf.Merchant.AuthCode, p.conf.Merchant.Endpoint), nil
}

func (p *Payments) createForm(ctx context.Context, client *Client, merchantRef string) (*entity.PaymentForm, error) {
	if p.conf.Merchant.Language != "" {
		if err := client.SetRequestParams(map[string]any{"languageMessages": p.conf.Merchant.Language}); err != nil {
			return nil, err
		}
	}

	form, err := client.CreatePaymentForm(p.conf.Merchant.ResponseUrl, merchantRef)
	if err != nil {
		return nil, fmt.Errorf("create payment form: %w", err)
	}

	request := client.Request()
	p.logger.Info(fmt.Sprintf("prepared %s: ref %s; amount %v; currency %d",
		transactionName(request.TransactionCode), request.MerchantRef, request.Amount, request.Currency))

	p.saveOrder(ctx, request)

	return form, nil
}

func (p *Payments) saveOrder(ctx context.Context, request *entity.PaymentRequest) {
	if p.database == nil {
		return
	}
	order := &entity.PaymentOrder{
		MerchantRef:     request.MerchantRef,
		MerchantSession: request.MerchantSession,
		Amount:          request.Amount,
		Currency:        request.Currency,
		TransactionCode: request.TransactionCode,
		EntityCode:      request.EntityCode,
		ReferenceNumber: request.ReferenceNumber,
		TransactionId:   request.TransactionId,
		TimeOpened:      time.Now(),
	}
	if err := p.database.SavePaymentOrder(ctx, order); err != nil {
		p.logger.Error("save payment order", err)
	}
}

func (p *Payments) closeOrder(ctx context.Context, merchantRef string, result *entity.PaymentResult) {
	if merchantRef == "" {
		return
	}
	order, err := p.database.GetPaymentOrder(ctx, merchantRef)
	if err != nil {
		p.logger.Error(fmt.Sprintf("get payment order %s", merchantRef), err)
		return
	}
	if order.IsCompleted {
		return
	}
	order.IsCompleted = true
	order.Result = result.Status
	order.TimeClosed = time.Now()
	if err = p.database.SavePaymentOrder(ctx, order); err != nil {
		p.logger.Error(fmt.Sprintf("close payment order %s", merchantRef), err)
	}
}

func transactionName(code string) string {
	switch code {
	case entity.TypePurchase:
		return "purchase"
	case entity.TypeService:
		return "service payment"
	case entity.TypeRecharge:
		return "recharge"
	case entity.TypeRefund:
		return "refund"
	}
	return "transaction"
}
