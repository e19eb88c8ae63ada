package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

func TestLuhnCheck_AcceptsValidNumbers(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"4111 1111 1111 1111",
		"4111-1111-1111-1111",
		"5555555555554444",
		"2223003122003222",
		"378282246310005",
		"4000000000000002",
	}
	for _, number := range valid {
		if !LuhnCheck(number) {
			t.Errorf("expected %q to pass luhn check", number)
		}
	}
}

func TestLuhnCheck_RejectsInvalidInput(t *testing.T) {
	invalid := []string{
		"",
		"4111111111111112",
		"411111111111",         // too short
		"41111111111111111111", // too long
		"4111abcd11111111",
		"not a number",
	}
	for _, number := range invalid {
		if LuhnCheck(number) {
			t.Errorf("expected %q to fail luhn check", number)
		}
	}
}

func TestLuhnCheck_WrongCheckDigitAlwaysFails(t *testing.T) {
	// For any valid number, replacing the check digit with any other
	// digit must break the checksum.
	base := "411111111111111" // 4111111111111111 without its check digit
	for d := byte('0'); d <= '9'; d++ {
		candidate := base + string(d)
		got := LuhnCheck(candidate)
		if d == '1' {
			require.True(t, got, "correct check digit must pass")
		} else if got {
			t.Errorf("check digit %c should have failed", d)
		}
	}
}

func TestDetectCardNetwork(t *testing.T) {
	tests := []struct {
		number string
		want   models.CardNetwork
	}{
		{"4111111111111111", models.NetworkVisa},
		{" 4111 1111-1111 1111", models.NetworkVisa},
		{"5555555555554444", models.NetworkMastercard},
		{"5105105105105100", models.NetworkMastercard},
		{"2223003122003222", models.NetworkMastercard},
		{"2720999999999996", models.NetworkMastercard},
		{"378282246310005", models.NetworkAmex},
		{"340000000000009", models.NetworkAmex},
		{"6011111111111117", models.NetworkUnknown},
		{"9999999999999999", models.NetworkUnknown},
		{"abc", models.NetworkUnknown},
		{"", models.NetworkUnknown},
	}
	for _, tt := range tests {
		if got := DetectCardNetwork(tt.number); got != tt.want {
			t.Errorf("DetectCardNetwork(%q) = %s, want %s", tt.number, got, tt.want)
		}
	}
}

func TestDetectCardNetwork_IgnoresFormatting(t *testing.T) {
	require.Equal(t,
		DetectCardNetwork("4111111111111111"),
		DetectCardNetwork(" 4111 1111-1111 1111"),
	)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now()

	require.True(t, ValidateExpiry(12, now.Year()), "December of the current year is valid")
	require.True(t, ValidateExpiry(int(now.Month()), now.Year()), "current month is valid")
	require.False(t, ValidateExpiry(1, now.Year()-1), "last year is expired")
	require.True(t, ValidateExpiry(1, now.Year()+1))

	require.False(t, ValidateExpiry(0, now.Year()+1))
	require.False(t, ValidateExpiry(13, now.Year()+1))
	require.False(t, ValidateExpiry(6, 99), "two-digit years are rejected")
}

func TestExpiryValidAt(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	require.True(t, expiryValidAt(6, 2026, now))
	require.True(t, expiryValidAt(7, 2026, now))
	require.False(t, expiryValidAt(5, 2026, now))
	require.True(t, expiryValidAt(1, 2027, now))
	require.False(t, expiryValidAt(12, 2025, now))
}

func TestValidateVPA(t *testing.T) {
	valid := []string{
		"alice@bank",
		"user.name_1-2@bank",
		"a@b",
		"UPPER.case@Okhdfc",
	}
	for _, vpa := range valid {
		if !ValidateVPA(vpa) {
			t.Errorf("expected %q to be a valid VPA", vpa)
		}
	}

	invalid := []string{
		"",
		"no-at-sign",
		"a@b@c",
		"@bank",
		"alice@",
		"alice@ban k",
		"alice bob@bank",
		"alice@ba-nk",
	}
	for _, vpa := range invalid {
		if ValidateVPA(vpa) {
			t.Errorf("expected %q to be an invalid VPA", vpa)
		}
	}
}
