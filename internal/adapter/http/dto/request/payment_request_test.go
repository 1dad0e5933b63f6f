package request

import (
	"encoding/json"
	"testing"

	"payment_processor/internal/domain/entities"
)

func TestPaymentRequest_ToEntity(t *testing.T) {
	var r PaymentRequest
	body := `{"amount":"100.50","currency":" eur ","user_id":" u-1 ","payment_method":"credit_card",
		"metadata":{"card_number":"4111","expiry":"12/30"},"discount_code":" SUMMER20 ","fraud_check_level":2}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := r.ToEntity()
	if e.Amount.String() != "100.5" {
		t.Fatalf("unexpected amount %s", e.Amount)
	}
	if e.Currency != "EUR" || e.UserID != "u-1" || e.DiscountCode != "SUMMER20" {
		t.Fatalf("unexpected fields %+v", e)
	}
	if e.Method != entities.PaymentMethodCreditCard || e.FraudCheckLevel != 2 {
		t.Fatalf("unexpected fields %+v", e)
	}
	if e.Metadata["card_number"] != "4111" {
		t.Fatalf("unexpected metadata %+v", e.Metadata)
	}
}

func TestPaymentRequest_NumericAmount(t *testing.T) {
	var r PaymentRequest
	if err := json.Unmarshal([]byte(`{"amount":42}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.ToEntity().Amount.String(); got != "42" {
		t.Fatalf("unexpected amount %s", got)
	}
}

func TestPaymentRequest_MissingAmount(t *testing.T) {
	if got := (PaymentRequest{}).ToEntity().Amount; !got.IsZero() {
		t.Fatalf("expected zero amount, got %s", got)
	}
}

func TestRefundRequest_ToEntity(t *testing.T) {
	var r RefundRequest
	body := `{"transaction_id":" 123 ","user_id":"u-1","reason":"Product damaged","amount":100,"currency":"usd"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := r.ToEntity()
	if e.TransactionID != "123" || e.Currency != "USD" || e.Reason != "Product damaged" {
		t.Fatalf("unexpected fields %+v", e)
	}
	if e.Amount.String() != "100" {
		t.Fatalf("unexpected amount %s", e.Amount)
	}
}
