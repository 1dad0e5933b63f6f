package pricing

import (
	"fmt"
	"strings"

	"payment_processor/internal/domain/entities"
)

var requiredMetadata = map[entities.PaymentMethod][]string{
	entities.PaymentMethodCreditCard: {entities.MetadataCardNumber, entities.MetadataExpiry},
	entities.PaymentMethodPayPal:     {entities.MetadataPayPalAccount},
}

// Validator checks that a payment method is supported and that its metadata
// carries the keys the method needs.
type Validator struct{}

func NewValidator() Validator {
	return Validator{}
}

// Validate returns ErrUnsupportedMethod for methods outside the supported set
// and ErrInvalidMetadata when a required key is missing or blank.
func (Validator) Validate(method entities.PaymentMethod, metadata map[string]string) error {
	keys, ok := requiredMetadata[method]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	for _, key := range keys {
		if strings.TrimSpace(metadata[key]) == "" {
			return fmt.Errorf("%w: %s requires %s", ErrInvalidMetadata, method, key)
		}
	}
	return nil
}

// SupportedMethods lists the payment methods the validator accepts.
func SupportedMethods() []entities.PaymentMethod {
	return []entities.PaymentMethod{entities.PaymentMethodCreditCard, entities.PaymentMethodPayPal}
}
