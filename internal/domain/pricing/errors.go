package pricing

import "errors"

var (
	ErrInvalidMetadata   = errors.New("invalid payment metadata")
	ErrUnsupportedMethod = errors.New("unsupported payment method")

	// Advisory: the pipeline continues with the documented fallback.
	ErrUnknownDiscountCode = errors.New("unknown discount code")
	ErrUnknownCurrency     = errors.New("unknown currency")

	ErrInvalidFeeRate  = errors.New("invalid refund fee rate")
	ErrInvalidDiscount = errors.New("invalid discount effect")
	ErrInvalidRate     = errors.New("invalid currency rate")
)
