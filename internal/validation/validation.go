// Package validation holds the pure instrument checks: card checksum,
// expiry, network detection and VPA format. Everything here is total over
// string input; malformed input yields false/unknown, never an error.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

var vpaPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

// CleanCardNumber strips spaces and dashes from a card number.
func CleanCardNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LuhnCheck verifies the card number checksum. The number is cleaned
// first; anything non-numeric or outside the 13-19 digit PAN range fails.
func LuhnCheck(number string) bool {
	cleaned := CleanCardNumber(number)
	if !allDigits(cleaned) || len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		d := int(cleaned[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// DetectCardNetwork classifies the cleaned number by its IIN prefix.
// Unknown ranges map to NetworkUnknown; never an error.
func DetectCardNetwork(number string) models.CardNetwork {
	cleaned := CleanCardNumber(number)
	if !allDigits(cleaned) || len(cleaned) < 13 || len(cleaned) > 19 {
		return models.NetworkUnknown
	}

	if strings.HasPrefix(cleaned, "34") || strings.HasPrefix(cleaned, "37") {
		return models.NetworkAmex
	}
	if cleaned[0] == '4' {
		return models.NetworkVisa
	}
	two := int(cleaned[0]-'0')*10 + int(cleaned[1]-'0')
	if two >= 51 && two <= 55 {
		return models.NetworkMastercard
	}
	four := two*100 + int(cleaned[2]-'0')*10 + int(cleaned[3]-'0')
	if four >= 2221 && four <= 2720 {
		return models.NetworkMastercard
	}
	return models.NetworkUnknown
}

// ValidateExpiry reports whether (month, year) is the current month or
// later. Month must be 1-12; year is the full 4-digit year.
func ValidateExpiry(month, year int) bool {
	return expiryValidAt(month, year, time.Now())
}

func expiryValidAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 1000 || year > 9999 {
		return false
	}
	if year != now.Year() {
		return year > now.Year()
	}
	return month >= int(now.Month())
}

// ValidateVPA checks the localpart@handle shape of a virtual payment
// address: non-empty localpart of alphanumerics plus . _ -, single @,
// non-empty alphanumeric handle.
func ValidateVPA(vpa string) bool {
	return vpaPattern.MatchString(vpa)
}
