package notification

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Confirmation is the message delivered to a user after a successful payment.
type Confirmation struct {
	UserID   string          `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Message  string          `json:"message"`
	SentAt   time.Time       `json:"sent_at"`
}

func NewConfirmation(userID string, amount decimal.Decimal, currency string, now time.Time) Confirmation {
	return Confirmation{
		UserID:   userID,
		Amount:   amount,
		Currency: currency,
		Message:  fmt.Sprintf("Your payment of %s %s was successful.", amount.StringFixed(2), currency),
		SentAt:   now.UTC(),
	}
}
