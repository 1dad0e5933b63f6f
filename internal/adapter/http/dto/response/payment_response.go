package response

import (
	"time"

	"payment_processor/internal/domain/entities"
)

type TransactionResponse struct {
	RequestID       string            `json:"request_id"`
	UserID          string            `json:"user_id"`
	OriginalAmount  string            `json:"original_amount" example:"100"`
	FinalAmount     string            `json:"final_amount" example:"80"`
	Currency        string            `json:"currency"`
	PaymentMethod   string            `json:"payment_method"`
	Metadata        map[string]string `json:"metadata"`
	DiscountCode    *string           `json:"discount_code"`
	FraudCheckLevel int               `json:"fraud_check_level"`
	FraudVerdict    string            `json:"fraud_verdict"`
	Timestamp       time.Time         `json:"timestamp"`
}

func FromTransaction(requestID string, tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		RequestID:       requestID,
		UserID:          tx.UserID,
		OriginalAmount:  tx.OriginalAmount.String(),
		FinalAmount:     tx.FinalAmount.String(),
		Currency:        tx.Currency,
		PaymentMethod:   string(tx.Method),
		Metadata:        tx.Metadata,
		DiscountCode:    tx.DiscountCode,
		FraudCheckLevel: tx.FraudCheckLevel,
		FraudVerdict:    string(tx.FraudVerdict),
		Timestamp:       tx.Timestamp,
	}
}

type RefundResponse struct {
	RequestID     string            `json:"request_id"`
	TransactionID string            `json:"transaction_id"`
	UserID        string            `json:"user_id"`
	Reason        string            `json:"reason"`
	Amount        string            `json:"amount" example:"100"`
	Currency      string            `json:"currency"`
	Fee           string            `json:"fee" example:"5"`
	NetAmount     string            `json:"net_amount" example:"95"`
	Metadata      map[string]string `json:"metadata"`
	Timestamp     time.Time         `json:"timestamp"`
}

func FromRefundRecord(requestID string, r entities.RefundRecord) RefundResponse {
	return RefundResponse{
		RequestID:     requestID,
		TransactionID: r.TransactionID,
		UserID:        r.UserID,
		Reason:        r.Reason,
		Amount:        r.Amount.String(),
		Currency:      r.Currency,
		Fee:           r.Fee.String(),
		NetAmount:     r.NetAmount.String(),
		Metadata:      r.Metadata,
		Timestamp:     r.Timestamp,
	}
}
