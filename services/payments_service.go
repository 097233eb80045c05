package services

import (
	"context"

	"vinti4/entity"
)

// Payments prepares signed gateway transactions and interprets POST-backs.
type Payments interface {
	Purchase(ctx context.Context, params *entity.PurchaseParams) (*entity.PaymentForm, error)
	ServicePayment(ctx context.Context, params *entity.ServiceParams) (*entity.PaymentForm, error)
	Recharge(ctx context.Context, params *entity.ServiceParams) (*entity.PaymentForm, error)
	Refund(ctx context.Context, params *entity.RefundParams) (*entity.PaymentForm, error)
	Notify(ctx context.Context, data []byte) (*entity.PaymentResult, error)
}
