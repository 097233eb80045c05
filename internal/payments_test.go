package internal

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinti4/config"
	"vinti4/entity"
	"vinti4/services"
)

type memoryDatabase struct {
	orders  map[string]*entity.PaymentOrder
	results []*entity.PaymentResult
}

func newMemoryDatabase() *memoryDatabase {
	return &memoryDatabase{
		orders: make(map[string]*entity.PaymentOrder),
	}
}

func (m *memoryDatabase) WriteLogMessage(services.Data) error {
	return nil
}

func (m *memoryDatabase) SavePaymentOrder(_ context.Context, order *entity.PaymentOrder) error {
	saved := *order
	m.orders[order.MerchantRef] = &saved
	return nil
}

func (m *memoryDatabase) GetPaymentOrder(_ context.Context, merchantRef string) (*entity.PaymentOrder, error) {
	order, ok := m.orders[merchantRef]
	if !ok {
		return nil, assert.AnError
	}
	found := *order
	return &found, nil
}

func (m *memoryDatabase) SavePaymentResult(_ context.Context, result *entity.PaymentResult) error {
	m.results = append(m.results, result)
	return nil
}

func testPayments(database services.Database) *Payments {
	conf := &config.Config{}
	conf.Merchant.PosID = "90051"
	conf.Merchant.AuthCode = "secret"
	conf.Merchant.Endpoint = "https://gateway.test/CardPayment"
	conf.Merchant.ResponseUrl = "https://shop.test/payment/response"
	conf.Merchant.Language = "pt"

	payments := NewPayments(conf)
	payments.SetLogger(NewLogger("payments", false, nil))
	payments.SetDatabase(database)
	return payments
}

func TestPaymentsPurchase(t *testing.T) {
	database := newMemoryDatabase()
	payments := testPayments(database)

	form, err := payments.Purchase(context.Background(), &entity.PurchaseParams{
		Amount:   1000,
		Currency: "CVE",
		Billing:  &entity.BillingInfo{Email: "user@test.com"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, form.Fields["fingerprint"])
	assert.NotEmpty(t, form.Fields["purchaseRequest"])
	assert.Equal(t, "https://shop.test/payment/response", form.Fields["urlMerchantResponse"])

	merchantRef := form.Fields["merchantRef"]
	require.NotEmpty(t, merchantRef)
	order, ok := database.orders[merchantRef]
	require.True(t, ok)
	assert.Equal(t, entity.TypePurchase, order.TransactionCode)
	assert.Equal(t, float64(1000), order.Amount)
	assert.False(t, order.IsCompleted)
}

func TestPaymentsRefund(t *testing.T) {
	database := newMemoryDatabase()
	payments := testPayments(database)

	form, err := payments.Refund(context.Background(), &entity.RefundParams{
		Amount:          250,
		MerchantRef:     "R1",
		MerchantSession: "S1",
		TransactionId:   "77",
		ClearingPeriod:  "028",
	})
	require.NoError(t, err)

	assert.NotContains(t, form.Fields, "purchaseRequest")
	order, ok := database.orders["R1"]
	require.True(t, ok)
	assert.Equal(t, entity.TypeRefund, order.TransactionCode)
}

func TestPaymentsNotifyClosesOrder(t *testing.T) {
	database := newMemoryDatabase()
	payments := testPayments(database)

	form, err := payments.Purchase(context.Background(), &entity.PurchaseParams{Amount: 1000})
	require.NoError(t, err)
	merchantRef := form.Fields["merchantRef"]

	postBack := url.Values{}
	postBack.Set("MessageType", "8")
	postBack.Set("ResponseCode", "00")
	postBack.Set("MerchantRef", merchantRef)

	result, err := payments.Notify(context.Background(), []byte(postBack.Encode()))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuccess, result.Status)
	assert.True(t, result.Success)

	require.Len(t, database.results, 1)
	order := database.orders[merchantRef]
	assert.True(t, order.IsCompleted)
	assert.Equal(t, entity.StatusSuccess, order.Result)
	assert.False(t, order.TimeClosed.IsZero())
}

func TestPaymentsNotifyWithoutDatabase(t *testing.T) {
	payments := testPayments(nil)

	result, err := payments.Notify(context.Background(), []byte("UserCancelled=true"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, result.Status)
}

func TestPaymentsDisabled(t *testing.T) {
	conf := &config.Config{DisablePayment: true}
	conf.Merchant.PosID = "90051"
	conf.Merchant.AuthCode = "secret"

	payments := NewPayments(conf)
	payments.SetLogger(NewLogger("payments", false, nil))

	_, err := payments.Purchase(context.Background(), &entity.PurchaseParams{Amount: 100})
	assert.Error(t, err)
}

func TestPaymentsMerchantNotConfigured(t *testing.T) {
	conf := &config.Config{}
	payments := NewPayments(conf)
	payments.SetLogger(NewLogger("payments", false, nil))

	_, err := payments.Purchase(context.Background(), &entity.PurchaseParams{Amount: 100})
	assert.Error(t, err)
}
