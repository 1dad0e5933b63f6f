package pricing

import (
	"maps"
	"time"

	"payment_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TransactionBuilder assembles the Transaction record. It performs no I/O;
// the timestamp is supplied by the caller's clock.
type TransactionBuilder struct{}

func NewTransactionBuilder() TransactionBuilder {
	return TransactionBuilder{}
}

func (TransactionBuilder) Build(req entities.PaymentRequest, finalAmount decimal.Decimal, verdict entities.FraudVerdict, now time.Time) entities.Transaction {
	var code *string
	if req.DiscountCode != "" {
		c := req.DiscountCode
		code = &c
	}
	return entities.Transaction{
		UserID:          req.UserID,
		OriginalAmount:  req.Amount,
		FinalAmount:     finalAmount,
		Currency:        req.Currency,
		Method:          req.Method,
		Metadata:        copyMetadata(req.Metadata),
		DiscountCode:    code,
		FraudCheckLevel: req.FraudCheckLevel,
		FraudVerdict:    verdict,
		Timestamp:       now.UTC(),
	}
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}
