package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"payment_processor/internal/domain/entities"
	"payment_processor/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrUnsupportedPayload = errors.New("unsupported payload")

const sandboxPayerEmail = "test_user_br@testuser.com"

// Metadata keys forwarded to Mercado Pago when present.
const (
	MetadataToken           = "token"
	MetadataPaymentMethodID = "payment_method_id"
	MetadataInstallments    = "installments"
	MetadataPayerEmail      = "payer_email"
)

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type refundCreator interface {
	CreatePartialRefund(ctx context.Context, paymentID int, amount float64) (*refund.Response, error)
}

// MercadoPagoGateway dispatches transactions and refunds to Mercado Pago.
//
// Transactions become payment creations; refund records become partial
// refunds of the Mercado Pago payment named by the record's transaction id,
// for the record's net amount.
type MercadoPagoGateway struct {
	payments    paymentCreator
	refunds     refundCreator
	accessToken string
	mockMode    bool
}

var _ interfaces.IApiClient = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:    payment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
		accessToken: accessToken,
	}, nil
}

func (g *MercadoPagoGateway) Post(ctx context.Context, endpoint string, payload entities.Payload) (entities.Ack, error) {
	if g != nil && g.mockMode {
		return mockAck(endpoint, payload)
	}
	if g == nil || g.payments == nil || g.refunds == nil {
		log.Printf("[payment][gateway] gateway not configured endpoint=%s", endpoint)
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Err: ErrMercadoPagoGatewayNotConfigured}
	}

	switch p := payload.(type) {
	case entities.Transaction:
		return g.createPayment(ctx, endpoint, p)
	case entities.RefundRecord:
		return g.createRefund(ctx, endpoint, p)
	}
	return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Code: ErrorCodeBadRequest, Err: fmt.Errorf("%w: %T", ErrUnsupportedPayload, payload)}
}

func (g *MercadoPagoGateway) createPayment(ctx context.Context, endpoint string, tx entities.Transaction) (entities.Ack, error) {
	req := g.toPaymentRequest(tx)
	log.Printf("[payment][gateway] create start endpoint=%s user_id=%s amount=%.2f method_id=%s", endpoint, tx.UserID, req.TransactionAmount, req.PaymentMethodID)

	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed endpoint=%s err=%v", endpoint, err)
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Code: classifyGatewayError(err), Err: err}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		b = nil
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.Ack{ProviderID: strconv.Itoa(resp.ID), ProviderStatus: resp.Status, ProviderResponse: b}, nil
}

func (g *MercadoPagoGateway) createRefund(ctx context.Context, endpoint string, rec entities.RefundRecord) (entities.Ack, error) {
	paymentID, err := strconv.Atoi(rec.TransactionID)
	if err != nil {
		log.Printf("[payment][gateway] refund transaction_id is not a mercado pago payment id transaction_id=%q", rec.TransactionID)
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Code: ErrorCodeBadRequest, Err: err}
	}
	amount := rec.NetAmount.InexactFloat64()
	log.Printf("[payment][gateway] refund start endpoint=%s payment_id=%d amount=%.2f", endpoint, paymentID, amount)

	resp, err := g.refunds.CreatePartialRefund(ctx, paymentID, amount)
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed payment_id=%d err=%v", paymentID, err)
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Code: classifyGatewayError(err), Err: err}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		b = nil
	}
	log.Printf("[payment][gateway] refund success refund_id=%d status=%s", resp.ID, resp.Status)

	return entities.Ack{ProviderID: strconv.Itoa(resp.ID), ProviderStatus: resp.Status, ProviderResponse: b}, nil
}

func (g *MercadoPagoGateway) toPaymentRequest(tx entities.Transaction) payment.Request {
	methodID := strings.TrimSpace(tx.Metadata[MetadataPaymentMethodID])
	if methodID == "" {
		methodID = string(tx.Method)
	}

	metadata := map[string]any{
		"user_id":           tx.UserID,
		"original_amount":   tx.OriginalAmount.String(),
		"currency":          tx.Currency,
		"payment_method":    string(tx.Method),
		"fraud_check_level": tx.FraudCheckLevel,
		"fraud_verdict":     string(tx.FraudVerdict),
	}
	if tx.DiscountCode != nil {
		metadata["discount_code"] = *tx.DiscountCode
	}

	req := payment.Request{
		TransactionAmount: tx.FinalAmount.InexactFloat64(),
		PaymentMethodID:   methodID,
		Description:       fmt.Sprintf("Payment %s %s", tx.FinalAmount.StringFixed(2), tx.Currency),
		ExternalReference: fmt.Sprintf("%s-%d", tx.UserID, tx.Timestamp.UnixNano()),
		Token:             strings.TrimSpace(tx.Metadata[MetadataToken]),
		Metadata:          metadata,
	}
	if n, err := strconv.Atoi(tx.Metadata[MetadataInstallments]); err == nil && n > 0 {
		req.Installments = n
	} else if tx.Method == entities.PaymentMethodCreditCard {
		req.Installments = 1
	}
	if email := g.payerEmail(tx); email != "" {
		req.Payer = &payment.PayerRequest{Type: "customer", Email: email}
	}
	return req
}

// payerEmail prefers an explicit payer_email, then the PayPal account. In
// sandbox (TEST- token) it falls back to a test payer.
func (g *MercadoPagoGateway) payerEmail(tx entities.Transaction) string {
	if email := strings.TrimSpace(tx.Metadata[MetadataPayerEmail]); email != "" {
		return email
	}
	if tx.Method == entities.PaymentMethodPayPal {
		if email := strings.TrimSpace(tx.Metadata[entities.MetadataPayPalAccount]); email != "" {
			return email
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(g.accessToken), "TEST-") {
		return ""
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		return email
	}
	return sandboxPayerEmail
}

func mockAck(endpoint string, payload entities.Payload) (entities.Ack, error) {
	log.Printf("[payment][gateway] mock dispatch start endpoint=%s kind=%s", endpoint, payload.PayloadKind())

	resp := map[string]any{}
	if b, err := json.Marshal(payload); err == nil {
		if err := json.Unmarshal(b, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(b)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Err: err}
	}

	log.Printf("[payment][gateway] mock dispatch success provider_id=%s provider_status=approved", id)
	return entities.Ack{ProviderID: id, ProviderStatus: "approved", ProviderResponse: b}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
