package models

import "fmt"

// Error codes surfaced to callers. The HTTP layer maps these 1:1 to
// status codes; the core stays transport-agnostic.
const (
	ErrCodeBadRequest      = "BAD_REQUEST_ERROR"
	ErrCodeInvalidVPA      = "INVALID_VPA"
	ErrCodeInvalidCard     = "INVALID_CARD"
	ErrCodeExpiredCard     = "EXPIRED_CARD"
	ErrCodeAuthentication  = "AUTHENTICATION_ERROR"
	ErrCodeNotFound        = "NOT_FOUND_ERROR"
	ErrCodeServer          = "SERVER_ERROR"
	ErrCodePaymentDeclined = "PAYMENT_DECLINED"
)

// GatewayError is a typed, caller-recoverable failure. Internal
// inconsistencies are plain errors and must never be wrapped in one.
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func NewGatewayError(code, description string) *GatewayError {
	return &GatewayError{Code: code, Description: description}
}
