package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/payment-gateway/internal/gateway"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:         "order_1",
		MerchantID: "merch_1",
		Amount:     500,
		Currency:   "INR",
	}
}

func validCard() *models.CardInput {
	return &models.CardInput{
		Number:      "4111 1111 1111 1111",
		ExpiryMonth: 12,
		ExpiryYear:  2099,
		CVV:         "123",
		HolderName:  "Alice Kumar",
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var ge *models.GatewayError
	require.ErrorAs(t, err, &ge)
	require.Equal(t, code, ge.Code)
}

func TestBuild_RejectsUnknownMethod(t *testing.T) {
	_, err := gateway.Build(testOrder(), &models.PaymentAttempt{Method: "netbanking"}, false)
	requireCode(t, err, models.ErrCodeBadRequest)

	_, err = gateway.Build(testOrder(), &models.PaymentAttempt{}, false)
	requireCode(t, err, models.ErrCodeBadRequest)
}

func TestBuild_CardMissingFields(t *testing.T) {
	mutations := map[string]func(*models.CardInput){
		"no card":   nil,
		"number":    func(c *models.CardInput) { c.Number = "" },
		"exp month": func(c *models.CardInput) { c.ExpiryMonth = 0 },
		"exp year":  func(c *models.CardInput) { c.ExpiryYear = 0 },
		"cvv":       func(c *models.CardInput) { c.CVV = "" },
		"holder":    func(c *models.CardInput) { c.HolderName = "" },
	}
	for name, mutate := range mutations {
		attempt := &models.PaymentAttempt{Method: "card"}
		if mutate != nil {
			card := validCard()
			mutate(card)
			attempt.Card = card
		}
		_, err := gateway.Build(testOrder(), attempt, false)
		if err == nil {
			t.Errorf("%s: expected rejection", name)
			continue
		}
		requireCode(t, err, models.ErrCodeBadRequest)
	}
}

func TestBuild_InvalidCardBeforeExpiry(t *testing.T) {
	// Both the checksum and the expiry are bad; the checksum error must
	// win because it is checked first.
	card := validCard()
	card.Number = "4111111111111112"
	card.ExpiryYear = 2001

	_, err := gateway.Build(testOrder(), &models.PaymentAttempt{Method: "card", Card: card}, false)
	requireCode(t, err, models.ErrCodeInvalidCard)
}

func TestBuild_ExpiredCard(t *testing.T) {
	card := validCard()
	card.ExpiryMonth = 1
	card.ExpiryYear = 2020

	_, err := gateway.Build(testOrder(), &models.PaymentAttempt{Method: "card", Card: card}, false)
	requireCode(t, err, models.ErrCodeExpiredCard)
}

func TestBuild_CardNormalization(t *testing.T) {
	np, err := gateway.Build(testOrder(), &models.PaymentAttempt{Method: "card", Card: validCard()}, false)
	require.NoError(t, err)

	require.Equal(t, models.MethodCard, np.Method)
	require.Equal(t, models.NetworkVisa, np.CardNetwork)
	require.Equal(t, "1111", np.CardLast4)
	require.Empty(t, np.VPA)
	require.Equal(t, int64(500), np.Amount)
	require.Equal(t, "INR", np.Currency)
	require.Equal(t, "order_1", np.OrderID)
	require.Equal(t, "merch_1", np.MerchantID)
}

func TestBuild_UPI(t *testing.T) {
	np, err := gateway.Build(testOrder(), &models.PaymentAttempt{Method: "upi", VPA: "alice@bank"}, false)
	require.NoError(t, err)
	require.Equal(t, models.MethodUPI, np.Method)
	require.Equal(t, "alice@bank", np.VPA)
	require.Empty(t, np.CardLast4)
	require.Empty(t, np.CardNetwork)

	for _, vpa := range []string{"", "no-at-sign", "a@b@c"} {
		_, err := gateway.Build(testOrder(), &models.PaymentAttempt{Method: "upi", VPA: vpa}, false)
		requireCode(t, err, models.ErrCodeInvalidVPA)
	}
}

func TestBuild_AmountOverridePolicy(t *testing.T) {
	attempt := &models.PaymentAttempt{Method: "upi", VPA: "alice@bank", Amount: 750}

	np, err := gateway.Build(testOrder(), attempt, false)
	require.NoError(t, err)
	require.Equal(t, int64(500), np.Amount, "override ignored when policy is off")

	np, err = gateway.Build(testOrder(), attempt, true)
	require.NoError(t, err)
	require.Equal(t, int64(750), np.Amount, "override honored when policy is on")

	// A non-positive override never applies.
	attempt.Amount = -10
	np, err = gateway.Build(testOrder(), attempt, true)
	require.NoError(t, err)
	require.Equal(t, int64(500), np.Amount)
}
