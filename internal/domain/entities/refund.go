package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundRequest is the caller's input to the refund flow.
type RefundRequest struct {
	TransactionID string
	UserID        string
	Reason        string
	Amount        decimal.Decimal
	Currency      string
	Metadata      map[string]string
}

// RefundRecord is dispatched to the payment API to refund (part of) a
// previous transaction. Fee and NetAmount are computed by the refund policy.
type RefundRecord struct {
	TransactionID string            `json:"transaction_id"`
	UserID        string            `json:"user_id"`
	Reason        string            `json:"reason"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
	Fee           decimal.Decimal   `json:"fee"`
	NetAmount     decimal.Decimal   `json:"net_amount"`
	Timestamp     time.Time         `json:"timestamp"`
}

// PayloadKind implements Payload.
func (RefundRecord) PayloadKind() string { return "refund" }
