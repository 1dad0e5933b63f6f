package request

import (
	"strings"

	"payment_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RefundRequest is the body of POST /v1/refunds.
type RefundRequest struct {
	TransactionID string            `json:"transaction_id" binding:"required" example:"1234567890"`
	UserID        string            `json:"user_id" binding:"required" example:"user-1"`
	Reason        string            `json:"reason" example:"Product damaged"`
	Amount        *decimal.Decimal  `json:"amount" binding:"required" swaggertype:"string" example:"100.00"`
	Currency      string            `json:"currency" binding:"required" example:"USD"`
	Metadata      map[string]string `json:"metadata"`
}

func (r RefundRequest) ToEntity() entities.RefundRequest {
	var amount decimal.Decimal
	if r.Amount != nil {
		amount = *r.Amount
	}
	return entities.RefundRequest{
		TransactionID: strings.TrimSpace(r.TransactionID),
		UserID:        strings.TrimSpace(r.UserID),
		Reason:        r.Reason,
		Amount:        amount,
		Currency:      strings.ToUpper(strings.TrimSpace(r.Currency)),
		Metadata:      r.Metadata,
	}
}
