package pricing

import (
	"payment_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Fixed policy thresholds, in the request currency.
var (
	heavyCheckThreshold = decimal.NewFromInt(100)
	veryLowRiskCeiling  = decimal.NewFromInt(10)
	highRiskFloor       = decimal.NewFromInt(1000)
)

// FraudScorer assigns an advisory risk tier. It never blocks a payment.
type FraudScorer struct{}

func NewFraudScorer() FraudScorer {
	return FraudScorer{}
}

// Score returns Skipped for level 0. Otherwise amounts below 100 get the light
// check (VeryLow under 10, else Low) and the rest the heavy check (Medium under
// 1000, else High).
func (FraudScorer) Score(amount decimal.Decimal, level int) entities.FraudVerdict {
	if level <= 0 {
		return entities.FraudVerdictSkipped
	}
	if amount.LessThan(heavyCheckThreshold) {
		if amount.LessThan(veryLowRiskCeiling) {
			return entities.FraudVerdictVeryLow
		}
		return entities.FraudVerdictLow
	}
	if amount.LessThan(highRiskFloor) {
		return entities.FraudVerdictMedium
	}
	return entities.FraudVerdictHigh
}

// IsHeavyCheck reports whether the verdict came from the heavy check tier.
func IsHeavyCheck(v entities.FraudVerdict) bool {
	return v == entities.FraudVerdictMedium || v == entities.FraudVerdictHigh
}
