package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// Store is the persistence collaborator for orders and payments. Lookups
// return (nil, nil) when the record does not exist or is owned by a
// different merchant; callers must not be able to tell the two apart.
type Store interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, orderID, merchantID string) (*models.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)

	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, paymentID, merchantID string) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error)

	// TransitionPayment applies a compare-and-swap status update and
	// reports the number of rows changed; zero means the payment was
	// not in the expected status.
	TransitionPayment(ctx context.Context, paymentID string, from, to models.PaymentStatus, errCode, errDesc string) (int64, error)

	ListPayments(ctx context.Context, merchantID string, limit int) ([]*models.Payment, error)
	PaymentStats(ctx context.Context, merchantID string) (*models.PaymentStats, error)
}

// MerchantStore backs API-key authentication and the test bootstrap.
type MerchantStore interface {
	GetMerchantByCredentials(ctx context.Context, apiKey, apiSecret string) (*models.Merchant, error)
	EnsureTestMerchant(ctx context.Context) (*models.Merchant, error)
}
