package models

import "time"

type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodUPI  PaymentMethod = "upi"
)

type PaymentStatus string

const (
	StatusCreated    PaymentStatus = "created"
	StatusProcessing PaymentStatus = "processing"
	StatusCaptured   PaymentStatus = "captured"
	StatusFailed     PaymentStatus = "failed"
)

// IsTerminal reports whether no further transitions are permitted.
func (s PaymentStatus) IsTerminal() bool {
	return s == StatusCaptured || s == StatusFailed
}

type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
	NetworkUnknown    CardNetwork = "unknown"
)

// CardInput is the raw card payload supplied on a payment attempt.
// The PAN and CVV never survive past the builder.
type CardInput struct {
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

// PaymentAttempt is the transient submission a caller makes against an order.
// Amount is a minor-unit override; zero means "charge the order amount".
type PaymentAttempt struct {
	OrderID string     `json:"order_id"`
	Method  string     `json:"method"`
	Amount  int64      `json:"amount"`
	VPA     string     `json:"vpa"`
	Card    *CardInput `json:"card"`
}

// NormalizedPayment is the builder's output: validated, with instrument data
// reduced to its persistable projection.
type NormalizedPayment struct {
	OrderID     string
	MerchantID  string
	Method      PaymentMethod
	Amount      int64
	Currency    string
	VPA         string
	CardNetwork CardNetwork
	CardLast4   string
}

type Payment struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"order_id"`
	MerchantID       string        `json:"merchant_id"`
	Method           PaymentMethod `json:"method"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	VPA              string        `json:"vpa,omitempty"`
	CardNetwork      CardNetwork   `json:"card_network,omitempty"`
	CardLast4        string        `json:"card_last4,omitempty"`
	ErrorCode        string        `json:"error_code,omitempty"`
	ErrorDescription string        `json:"error_description,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type Order struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

type Merchant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"`
	APISecret string    `json:"api_secret"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentStats is the merchant dashboard aggregate.
type PaymentStats struct {
	TotalPayments  int64 `json:"total_payments"`
	Captured       int64 `json:"captured"`
	Failed         int64 `json:"failed"`
	TotalAmount    int64 `json:"total_amount"`
	CapturedAmount int64 `json:"captured_amount"`
}
