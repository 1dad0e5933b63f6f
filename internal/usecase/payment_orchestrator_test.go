package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"payment_processor/internal/domain/entities"
	"payment_processor/internal/domain/pricing"
	mock_interfaces "payment_processor/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

type orchestratorDeps struct {
	api       *mock_interfaces.MockIApiClient
	notifier  *mock_interfaces.MockINotifier
	analytics *mock_interfaces.MockIAnalyticsLogger
	clock     *mock_interfaces.MockIClock
	logs      *bytes.Buffer
}

func newTestOrchestrator(t *testing.T, opts ...Option) (*PaymentOrchestrator, orchestratorDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := orchestratorDeps{
		api:       mock_interfaces.NewMockIApiClient(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
		analytics: mock_interfaces.NewMockIAnalyticsLogger(ctrl),
		clock:     mock_interfaces.NewMockIClock(ctrl),
		logs:      &bytes.Buffer{},
	}
	deps.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	opts = append([]Option{WithLogger(log.New(deps.logs, "", 0))}, opts...)
	o := NewPaymentOrchestrator(pricing.DefaultPolicy(), deps.api, deps.notifier, deps.analytics, deps.clock, opts...)
	return o, deps
}

func cardRequest(amount int64) entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:   decimal.NewFromInt(amount),
		Currency: "USD",
		UserID:   "1",
		Method:   entities.PaymentMethodCreditCard,
		Metadata: map[string]string{"card_number": "1234", "expiry": "12/25"},
	}
}

func expectHappyCollaborators(deps orchestratorDeps) {
	deps.api.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Ack{ProviderID: "p-1", ProviderStatus: "approved"}, nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	deps.analytics.EXPECT().Log(gomock.Any(), gomock.Any())
}

func TestPaymentOrchestrator_Process_Scenarios(t *testing.T) {
	t.Run("valid credit card payment keeps amount and uses method endpoint", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		req := cardRequest(100)

		var posted entities.Transaction
		gomock.InOrder(
			deps.api.EXPECT().Post(gomock.Any(), "/payments/credit_card", gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
				func(_ context.Context, _ string, p entities.Payload) (entities.Ack, error) {
					posted = p.(entities.Transaction)
					return entities.Ack{ProviderID: "p-1"}, nil
				},
			),
			deps.notifier.EXPECT().Notify(gomock.Any(), "1", gomock.Any(), "USD").Return(nil),
			deps.analytics.EXPECT().Log(gomock.Any(), gomock.Any()),
		)

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.FinalAmount.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected final amount 100, got %s", tx.FinalAmount)
		}
		if !tx.OriginalAmount.Equal(decimal.NewFromInt(100)) || tx.DiscountCode != nil {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
		if tx.FraudVerdict != entities.FraudVerdictSkipped {
			t.Fatalf("expected skipped fraud verdict, got %s", tx.FraudVerdict)
		}
		if !tx.Timestamp.Equal(fixedNow) {
			t.Fatalf("expected clock timestamp, got %v", tx.Timestamp)
		}
		if posted.UserID != tx.UserID || !posted.FinalAmount.Equal(tx.FinalAmount) {
			t.Fatalf("dispatched payload differs from returned transaction: %+v", posted)
		}
	})

	t.Run("missing card number fails with invalid metadata", func(t *testing.T) {
		o, _ := newTestOrchestrator(t)
		req := cardRequest(50)
		req.Metadata = map[string]string{"expiry": "12/25"}

		_, err := o.Process(context.Background(), req)
		if !errors.Is(err, pricing.ErrInvalidMetadata) {
			t.Fatalf("expected ErrInvalidMetadata, got %v", err)
		}
	})

	t.Run("SUMMER20 takes 20 percent off", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		expectHappyCollaborators(deps)
		req := cardRequest(100)
		req.DiscountCode = "SUMMER20"

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.FinalAmount.Equal(decimal.NewFromInt(80)) {
			t.Fatalf("expected 80, got %s", tx.FinalAmount)
		}
		if tx.DiscountCode == nil || *tx.DiscountCode != "SUMMER20" {
			t.Fatalf("expected discount code recorded, got %v", tx.DiscountCode)
		}
	})

	t.Run("EUR is converted at 1.2", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		expectHappyCollaborators(deps)
		req := cardRequest(100)
		req.Currency = "EUR"

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.FinalAmount.Equal(decimal.NewFromInt(120)) {
			t.Fatalf("expected 120, got %s", tx.FinalAmount)
		}
	})

	t.Run("discount applies before conversion", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		expectHappyCollaborators(deps)
		req := cardRequest(100)
		req.Currency = "EUR"
		req.DiscountCode = "WELCOME10"

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.FinalAmount.Equal(decimal.NewFromInt(108)) {
			t.Fatalf("expected (100-10)*1.2=108, got %s", tx.FinalAmount)
		}
	})

	t.Run("paypal dispatches to paypal endpoint", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		deps.api.EXPECT().Post(gomock.Any(), "/payments/paypal", gomock.Any()).Return(entities.Ack{}, nil)
		deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		deps.analytics.EXPECT().Log(gomock.Any(), entities.AnalyticsEvent{
			UserID:   "u-2",
			Amount:   decimal.NewFromInt(25),
			Currency: "USD",
			Method:   entities.PaymentMethodPayPal,
		})

		_, err := o.Process(context.Background(), entities.PaymentRequest{
			Amount:   decimal.NewFromInt(25),
			Currency: "USD",
			UserID:   "u-2",
			Method:   entities.PaymentMethodPayPal,
			Metadata: map[string]string{"paypal_account": "u2@example.com"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentOrchestrator_Process_ValidationHasNoSideEffects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*entities.PaymentRequest)
		want error
	}{
		{name: "unsupported method", mut: func(r *entities.PaymentRequest) { r.Method = "bitcoin" }, want: pricing.ErrUnsupportedMethod},
		{name: "missing expiry", mut: func(r *entities.PaymentRequest) { delete(r.Metadata, "expiry") }, want: pricing.ErrInvalidMetadata},
		{name: "blank card number", mut: func(r *entities.PaymentRequest) { r.Metadata["card_number"] = "  " }, want: pricing.ErrInvalidMetadata},
		{name: "paypal without account", mut: func(r *entities.PaymentRequest) {
			r.Method = entities.PaymentMethodPayPal
			r.Metadata = map[string]string{}
		}, want: pricing.ErrInvalidMetadata},
		{name: "negative amount", mut: func(r *entities.PaymentRequest) { r.Amount = decimal.NewFromInt(-1) }, want: ErrInvalidAmount},
		{name: "negative fraud level", mut: func(r *entities.PaymentRequest) { r.FraudCheckLevel = -1 }, want: ErrInvalidFraudLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No EXPECT calls: any collaborator call fails the test.
			o, deps := newTestOrchestrator(t)
			req := cardRequest(100)
			tc.mut(&req)

			tx, err := o.Process(context.Background(), req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tx.UserID != "" {
				t.Fatalf("expected no transaction, got %+v", tx)
			}
			if !strings.Contains(deps.logs.String(), "failed at stage=start") {
				t.Fatalf("expected failure logged at start stage, logs: %s", deps.logs.String())
			}
		})
	}
}

func TestPaymentOrchestrator_Process_DispatchFailure(t *testing.T) {
	t.Run("plain client error is wrapped as ApiError", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		deps.api.EXPECT().Post(gomock.Any(), "/payments/credit_card", gomock.Any()).Return(entities.Ack{}, errors.New("boom")).Times(1)
		deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.analytics.EXPECT().Log(gomock.Any(), gomock.Any()).Times(0)

		_, err := o.Process(context.Background(), cardRequest(100))
		if !errors.Is(err, entities.ErrApiError) {
			t.Fatalf("expected ErrApiError, got %v", err)
		}
		var apiErr *entities.ApiError
		if !errors.As(err, &apiErr) || apiErr.Endpoint != "/payments/credit_card" || apiErr.Err.Error() != "boom" {
			t.Fatalf("unexpected api error: %#v", err)
		}
	})

	t.Run("ApiError from client propagates unmodified", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		clientErr := &entities.ApiError{Endpoint: "/payments/credit_card", Code: "unauthorized", Err: errors.New("401")}
		deps.api.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Ack{}, clientErr)

		_, err := o.Process(context.Background(), cardRequest(100))
		if err != clientErr {
			t.Fatalf("expected client error as-is, got %v", err)
		}
	})
}

func TestPaymentOrchestrator_Process_BestEffortCollaborators(t *testing.T) {
	t.Run("notifier failure is a warning and analytics still runs", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		gomock.InOrder(
			deps.api.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Ack{}, nil),
			deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down")),
			deps.analytics.EXPECT().Log(gomock.Any(), gomock.Any()),
		)

		if _, err := o.Process(context.Background(), cardRequest(100)); err != nil {
			t.Fatalf("notifier failure must not fail the payment: %v", err)
		}
		if !strings.Contains(deps.logs.String(), "notification failed") {
			t.Fatalf("expected notification warning, logs: %s", deps.logs.String())
		}
	})

	t.Run("nil notifier and analytics are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_interfaces.NewMockIApiClient(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		clock.EXPECT().Now().Return(fixedNow)
		api.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Ack{}, nil)
		o := NewPaymentOrchestrator(pricing.DefaultPolicy(), api, nil, nil, clock, WithLogger(log.New(&bytes.Buffer{}, "", 0)))

		if _, err := o.Process(context.Background(), cardRequest(5)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentOrchestrator_Process_AdvisorySignals(t *testing.T) {
	t.Run("unknown discount code", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		expectHappyCollaborators(deps)
		req := cardRequest(100)
		req.DiscountCode = "BOGUS"

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unknown discount code must not fail: %v", err)
		}
		if !tx.FinalAmount.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected unchanged amount, got %s", tx.FinalAmount)
		}
		if !strings.Contains(deps.logs.String(), "unknown discount code") {
			t.Fatalf("expected warning, logs: %s", deps.logs.String())
		}
	})

	t.Run("unknown currency passes through", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		expectHappyCollaborators(deps)
		req := cardRequest(100)
		req.Currency = "JPY"

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unknown currency must not fail: %v", err)
		}
		if !tx.FinalAmount.Equal(decimal.NewFromInt(100)) || tx.Currency != "JPY" {
			t.Fatalf("expected pass-through, got %+v", tx)
		}
		if !strings.Contains(deps.logs.String(), "unknown currency") {
			t.Fatalf("expected warning, logs: %s", deps.logs.String())
		}
	})

	t.Run("fraud verdict recorded and logged", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		expectHappyCollaborators(deps)
		req := cardRequest(1500)
		req.FraudCheckLevel = 2

		tx, err := o.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("fraud verdict must not block: %v", err)
		}
		if tx.FraudVerdict != entities.FraudVerdictHigh {
			t.Fatalf("expected high, got %s", tx.FraudVerdict)
		}
		if !strings.Contains(deps.logs.String(), "tier=heavy") {
			t.Fatalf("expected heavy check log, logs: %s", deps.logs.String())
		}
	})
}

func TestPaymentOrchestrator_Process_FraudGate(t *testing.T) {
	errBlocked := errors.New("blocked")
	gate := func(v entities.FraudVerdict) error {
		if v == entities.FraudVerdictHigh {
			return errBlocked
		}
		return nil
	}

	t.Run("gate error aborts before dispatch", func(t *testing.T) {
		o, _ := newTestOrchestrator(t, WithFraudGate(gate))
		req := cardRequest(5000)
		req.FraudCheckLevel = 1

		if _, err := o.Process(context.Background(), req); !errors.Is(err, errBlocked) {
			t.Fatalf("expected gate error, got %v", err)
		}
	})

	t.Run("gate passes lower tiers", func(t *testing.T) {
		o, deps := newTestOrchestrator(t, WithFraudGate(gate))
		expectHappyCollaborators(deps)
		req := cardRequest(50)
		req.FraudCheckLevel = 1

		if _, err := o.Process(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentOrchestrator_Process_MetadataIsCopied(t *testing.T) {
	o, deps := newTestOrchestrator(t)
	expectHappyCollaborators(deps)
	req := cardRequest(10)

	tx, err := o.Process(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req.Metadata["card_number"] = "9999"
	if tx.Metadata["card_number"] != "1234" {
		t.Fatalf("transaction metadata aliases request metadata")
	}
}

func TestPaymentOrchestrator_Process_NotConfigured(t *testing.T) {
	t.Run("api client", func(t *testing.T) {
		o := NewPaymentOrchestrator(pricing.DefaultPolicy(), nil, nil, nil, nil, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
		if _, err := o.Process(context.Background(), cardRequest(1)); !errors.Is(err, ErrApiClientNotConfigured) {
			t.Fatalf("expected ErrApiClientNotConfigured, got %v", err)
		}
	})

	t.Run("clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_interfaces.NewMockIApiClient(ctrl)
		o := NewPaymentOrchestrator(pricing.DefaultPolicy(), api, nil, nil, nil, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
		if _, err := o.Refund(context.Background(), entities.RefundRequest{TransactionID: "t"}); !errors.Is(err, ErrClockNotConfigured) {
			t.Fatalf("expected ErrClockNotConfigured, got %v", err)
		}
	})
}

func TestPaymentOrchestrator_Refund(t *testing.T) {
	t.Run("5 percent fee", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		var posted entities.RefundRecord
		deps.api.EXPECT().Post(gomock.Any(), "/payments/refund", gomock.AssignableToTypeOf(entities.RefundRecord{})).DoAndReturn(
			func(_ context.Context, _ string, p entities.Payload) (entities.Ack, error) {
				posted = p.(entities.RefundRecord)
				return entities.Ack{ProviderID: "r-1"}, nil
			},
		)

		rec, err := o.Refund(context.Background(), entities.RefundRequest{
			TransactionID: " TXN123 ",
			UserID:        "1",
			Reason:        "Test refund",
			Amount:        decimal.NewFromInt(100),
			Currency:      "USD",
			Metadata:      map[string]string{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.NetAmount.Equal(decimal.NewFromInt(95)) || !rec.Fee.Equal(decimal.NewFromInt(5)) {
			t.Fatalf("expected fee 5 net 95, got fee=%s net=%s", rec.Fee, rec.NetAmount)
		}
		if rec.TransactionID != "TXN123" || !rec.Timestamp.Equal(fixedNow) {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if posted.TransactionID != rec.TransactionID || !posted.NetAmount.Equal(rec.NetAmount) {
			t.Fatalf("dispatched record differs: %+v", posted)
		}
	})

	t.Run("dispatch failure propagates as ApiError", func(t *testing.T) {
		o, deps := newTestOrchestrator(t)
		deps.api.EXPECT().Post(gomock.Any(), "/payments/refund", gomock.Any()).Return(entities.Ack{}, errors.New("timeout"))

		_, err := o.Refund(context.Background(), entities.RefundRequest{TransactionID: "t-1", Amount: decimal.NewFromInt(10)})
		if !errors.Is(err, entities.ErrApiError) {
			t.Fatalf("expected ErrApiError, got %v", err)
		}
	})

	t.Run("input validation", func(t *testing.T) {
		o, _ := newTestOrchestrator(t)
		if _, err := o.Refund(context.Background(), entities.RefundRequest{TransactionID: "  "}); !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
		if _, err := o.Refund(context.Background(), entities.RefundRequest{TransactionID: "t", Amount: decimal.NewFromInt(-5)}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("custom fee rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_interfaces.NewMockIApiClient(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		clock.EXPECT().Now().Return(fixedNow)
		api.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Ack{}, nil)

		policy := pricing.DefaultPolicy()
		refunds, err := pricing.NewRefundCalculator(decimal.RequireFromString("0.1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		policy.Refunds = refunds
		o := NewPaymentOrchestrator(policy, api, nil, nil, clock, WithLogger(log.New(&bytes.Buffer{}, "", 0)))

		rec, err := o.Refund(context.Background(), entities.RefundRequest{TransactionID: "t", Amount: decimal.NewFromInt(200)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.NetAmount.Equal(decimal.NewFromInt(180)) {
			t.Fatalf("expected 180, got %s", rec.NetAmount)
		}
	})
}

func TestPaymentEndpoint(t *testing.T) {
	if got := PaymentEndpoint(entities.PaymentMethodCreditCard); got != "/payments/credit_card" {
		t.Fatalf("unexpected endpoint %s", got)
	}
	if got := PaymentEndpoint(entities.PaymentMethodPayPal); got != "/payments/paypal" {
		t.Fatalf("unexpected endpoint %s", got)
	}
}
