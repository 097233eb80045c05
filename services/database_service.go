package services

import (
	"context"

	"vinti4/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SavePaymentOrder(ctx context.Context, order *entity.PaymentOrder) error
	GetPaymentOrder(ctx context.Context, merchantRef string) (*entity.PaymentOrder, error)

	SavePaymentResult(ctx context.Context, result *entity.PaymentResult) error
}

type Data interface {
	DataType() string
}
