package gateway

import "github.com/akylbek/payment-system/payment-gateway/internal/models"

// Project shapes a payment into its external view. Field presence is
// strictly method- and state-conditional: vpa only for UPI, network and
// last4 only for card, error fields only on failure. updated_at is
// included on lookups but not on creation responses.
func Project(p *models.Payment, includeUpdatedAt bool) map[string]any {
	view := map[string]any{
		"id":         p.ID,
		"order_id":   p.OrderID,
		"amount":     p.Amount,
		"currency":   p.Currency,
		"method":     p.Method,
		"status":     p.Status,
		"created_at": p.CreatedAt,
	}
	if includeUpdatedAt {
		view["updated_at"] = p.UpdatedAt
	}

	switch p.Method {
	case models.MethodUPI:
		view["vpa"] = p.VPA
	case models.MethodCard:
		view["card_network"] = p.CardNetwork
		view["card_last4"] = p.CardLast4
	}

	if p.Status == models.StatusFailed && p.ErrorCode != "" {
		view["error_code"] = p.ErrorCode
		view["error_description"] = p.ErrorDescription
	}
	return view
}
