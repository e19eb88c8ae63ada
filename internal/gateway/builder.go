package gateway

import (
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/validation"
)

// Build validates a payment attempt against its order and produces the
// normalized record to persist. It rejects on the first failure, in a
// fixed order per method: missing fields, then checksum, then expiry.
// The raw PAN and CVV are dropped here; only the network tag and last4
// make it into the normalized payment.
//
// allowOverride gates the amount-override policy: when true a positive
// attempt amount replaces the order amount, otherwise the order amount
// is always charged.
func Build(order *models.Order, attempt *models.PaymentAttempt, allowOverride bool) (*models.NormalizedPayment, error) {
	amount := order.Amount
	if allowOverride && attempt.Amount > 0 {
		amount = attempt.Amount
	}

	np := &models.NormalizedPayment{
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Amount:     amount,
		Currency:   order.Currency,
	}

	switch models.PaymentMethod(attempt.Method) {
	case models.MethodUPI:
		if attempt.VPA == "" || !validation.ValidateVPA(attempt.VPA) {
			return nil, models.NewGatewayError(models.ErrCodeInvalidVPA, "Invalid VPA format")
		}
		np.Method = models.MethodUPI
		np.VPA = attempt.VPA

	case models.MethodCard:
		card := attempt.Card
		if card == nil || card.Number == "" || card.ExpiryMonth == 0 ||
			card.ExpiryYear == 0 || card.CVV == "" || card.HolderName == "" {
			return nil, models.NewGatewayError(models.ErrCodeBadRequest, "Missing required card fields")
		}
		if !validation.LuhnCheck(card.Number) {
			return nil, models.NewGatewayError(models.ErrCodeInvalidCard, "Invalid card number")
		}
		if !validation.ValidateExpiry(card.ExpiryMonth, card.ExpiryYear) {
			return nil, models.NewGatewayError(models.ErrCodeExpiredCard, "Card has expired")
		}
		cleaned := validation.CleanCardNumber(card.Number)
		np.Method = models.MethodCard
		np.CardNetwork = validation.DetectCardNetwork(card.Number)
		np.CardLast4 = cleaned[len(cleaned)-4:]

	default:
		return nil, models.NewGatewayError(models.ErrCodeBadRequest, "Invalid payment method")
	}

	return np, nil
}
