package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how the customer pays.
//
// The value doubles as the dispatch endpoint suffix (/payments/<method>), so it
// must stay URL-safe.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

// Metadata keys required per payment method.
const (
	MetadataCardNumber    = "card_number"
	MetadataExpiry        = "expiry"
	MetadataPayPalAccount = "paypal_account"
)

// PaymentRequest is the caller's input to the payment pipeline.
//
// It is consumed once by the orchestrator. DiscountCode is empty when the
// caller did not supply one; FraudCheckLevel 0 skips the fraud check.
type PaymentRequest struct {
	Amount          decimal.Decimal
	Currency        string
	UserID          string
	Method          PaymentMethod
	Metadata        map[string]string
	DiscountCode    string
	FraudCheckLevel int
}

// Transaction is the record dispatched to the payment API after a payment
// request went through the pipeline.
//
// Wire contract: every field below is serialized. Metadata is a copy of the
// request metadata and DiscountCode is null when no code was supplied.
type Transaction struct {
	UserID          string            `json:"user_id"`
	OriginalAmount  decimal.Decimal   `json:"original_amount"`
	FinalAmount     decimal.Decimal   `json:"final_amount"`
	Currency        string            `json:"currency"`
	Method          PaymentMethod     `json:"payment_method"`
	Metadata        map[string]string `json:"metadata"`
	DiscountCode    *string           `json:"discount_code"`
	FraudCheckLevel int               `json:"fraud_check_level"`
	FraudVerdict    FraudVerdict      `json:"fraud_verdict"`
	Timestamp       time.Time         `json:"timestamp"`
}

// PayloadKind implements Payload.
func (Transaction) PayloadKind() string { return "payment" }

// AnalyticsEvent is emitted after a payment was dispatched successfully.
type AnalyticsEvent struct {
	UserID   string          `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Method   PaymentMethod   `json:"method"`
}
