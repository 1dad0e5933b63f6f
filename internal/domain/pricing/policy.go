package pricing

// Policy bundles the static tables the pipeline reads. It is built once at
// startup and shared read-only between requests.
type Policy struct {
	Currencies CurrencyTable
	Discounts  DiscountTable
	Refunds    RefundCalculator
}

// DefaultPolicy returns the built-in tables and the 5% refund fee.
func DefaultPolicy() Policy {
	refunds, _ := NewRefundCalculator(DefaultRefundFeeRate)
	return Policy{
		Currencies: DefaultCurrencyTable(),
		Discounts:  DefaultDiscountTable(),
		Refunds:    refunds,
	}
}
