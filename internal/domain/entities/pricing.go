package entities

import "github.com/shopspring/decimal"

// DiscountKind tags how a discount code reduces the amount.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percent"
	DiscountFlat       DiscountKind = "flat"
)

// DiscountEffect is the reduction a discount code maps to.
//
// Percentage values are fractions in (0,1); flat values are positive amounts
// in the request currency.
type DiscountEffect struct {
	Kind  DiscountKind
	Value decimal.Decimal
}

// FraudVerdict is the advisory risk tier assigned to a payment.
type FraudVerdict string

const (
	FraudVerdictSkipped FraudVerdict = "skipped"
	FraudVerdictVeryLow FraudVerdict = "very_low"
	FraudVerdictLow     FraudVerdict = "low"
	FraudVerdictMedium  FraudVerdict = "medium"
	FraudVerdictHigh    FraudVerdict = "high"
)
