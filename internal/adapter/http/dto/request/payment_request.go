package request

import (
	"strings"

	"payment_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentRequest is the body of POST /v1/payments.
//
// Amount accepts a JSON number or a decimal string ("100.00").
type PaymentRequest struct {
	Amount          *decimal.Decimal  `json:"amount" binding:"required" swaggertype:"string" example:"100.00"`
	Currency        string            `json:"currency" binding:"required" example:"USD"`
	UserID          string            `json:"user_id" binding:"required" example:"user-1"`
	PaymentMethod   string            `json:"payment_method" binding:"required" example:"credit_card"`
	Metadata        map[string]string `json:"metadata"`
	DiscountCode    string            `json:"discount_code,omitempty" example:"SUMMER20"`
	FraudCheckLevel int               `json:"fraud_check_level" example:"1"`
}

func (r PaymentRequest) ToEntity() entities.PaymentRequest {
	var amount decimal.Decimal
	if r.Amount != nil {
		amount = *r.Amount
	}
	return entities.PaymentRequest{
		Amount:          amount,
		Currency:        strings.ToUpper(strings.TrimSpace(r.Currency)),
		UserID:          strings.TrimSpace(r.UserID),
		Method:          entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
		Metadata:        r.Metadata,
		DiscountCode:    strings.TrimSpace(r.DiscountCode),
		FraudCheckLevel: r.FraudCheckLevel,
	}
}
