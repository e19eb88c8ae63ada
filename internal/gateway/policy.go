package gateway

import "github.com/akylbek/payment-system/payment-gateway/internal/models"

// OutcomePolicy decides whether a processing payment captures or fails.
// It stands in for a real acquirer integration; swap the implementation
// when one exists.
type OutcomePolicy interface {
	Decide(p *models.Payment) (ok bool, code, description string)
}

// MarkerPolicy is the default deterministic policy: every payment
// captures unless the instrument carries a decline marker. A card whose
// last4 is 0002 (the 4000 0000 0000 0002 decline test card) or a VPA
// with the handle "fail" (alice@fail) is declined; everything else
// succeeds. Deterministic so tests and replays are stable.
type MarkerPolicy struct{}

const declinedCardLast4 = "0002"
const declinedVPAHandle = "@fail"

func (MarkerPolicy) Decide(p *models.Payment) (bool, string, string) {
	switch p.Method {
	case models.MethodCard:
		if p.CardLast4 == declinedCardLast4 {
			return false, models.ErrCodePaymentDeclined, "Payment declined by issuing bank"
		}
	case models.MethodUPI:
		if len(p.VPA) >= len(declinedVPAHandle) && p.VPA[len(p.VPA)-len(declinedVPAHandle):] == declinedVPAHandle {
			return false, models.ErrCodePaymentDeclined, "Payment declined by UPI provider"
		}
	}
	return true, "", ""
}
