package notification

import (
	"context"
	"log"
	"time"

	"payment_processor/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// LogNotifier only logs the confirmation. Used when no Redis is configured.
type LogNotifier struct {
	logger *log.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, userID string, amount decimal.Decimal, currency string) error {
	msg := NewConfirmation(userID, amount, currency, time.Now())
	n.logger.Printf("[payment][notifier] email to user_id=%s: %s", msg.UserID, msg.Message)
	return nil
}
