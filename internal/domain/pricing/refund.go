package pricing

import (
	"fmt"
	"time"

	"payment_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var DefaultRefundFeeRate = decimal.RequireFromString("0.05")

// RefundCalculator computes the fee withheld on a refund.
//
// The rate is validated once in NewRefundCalculator; Compute trusts it.
type RefundCalculator struct {
	feeRate decimal.Decimal
}

// NewRefundCalculator rejects rates outside [0,1] with ErrInvalidFeeRate.
func NewRefundCalculator(feeRate decimal.Decimal) (RefundCalculator, error) {
	if feeRate.IsNegative() || feeRate.GreaterThan(decimal.NewFromInt(1)) {
		return RefundCalculator{}, fmt.Errorf("%w: %s", ErrInvalidFeeRate, feeRate)
	}
	return RefundCalculator{feeRate: feeRate}, nil
}

func (c RefundCalculator) FeeRate() decimal.Decimal {
	return c.feeRate
}

// Compute returns fee = amount * rate and net = amount - fee.
func (c RefundCalculator) Compute(amount decimal.Decimal) (fee, net decimal.Decimal) {
	fee = amount.Mul(c.feeRate)
	return fee, amount.Sub(fee)
}

// BuildRefund assembles the RefundRecord for req with the computed amounts.
func (c RefundCalculator) BuildRefund(req entities.RefundRequest, now time.Time) entities.RefundRecord {
	fee, net := c.Compute(req.Amount)
	return entities.RefundRecord{
		TransactionID: req.TransactionID,
		UserID:        req.UserID,
		Reason:        req.Reason,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Metadata:      copyMetadata(req.Metadata),
		Fee:           fee,
		NetAmount:     net,
		Timestamp:     now.UTC(),
	}
}
