package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"payment_processor/internal/domain/entities"
	"payment_processor/internal/domain/pricing"
	"payment_processor/internal/usecase/interfaces"
)

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidFraudLevel      = errors.New("invalid fraud_check_level")
	ErrInvalidTransactionID   = errors.New("invalid transaction_id")
	ErrApiClientNotConfigured = errors.New("payment api client not configured")
	ErrClockNotConfigured     = errors.New("clock not configured")
)

const (
	PaymentsBasePath = "/payments/"
	RefundEndpoint   = "/payments/refund"
)

// PaymentEndpoint is the dispatch endpoint for a payment method:
// the base path followed by the method identifier, verbatim.
func PaymentEndpoint(method entities.PaymentMethod) string {
	return PaymentsBasePath + string(method)
}

//go:generate mockgen -source=payment_orchestrator.go -destination=../adapter/http/handlers/mocks/payment_orchestrator_mock.go -package=mocks

// IPaymentOrchestrator runs the payment and refund pipelines.
type IPaymentOrchestrator interface {
	Process(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error)
	Refund(ctx context.Context, req entities.RefundRequest) (entities.RefundRecord, error)
}

// FraudGate decides whether a fraud verdict halts a payment. A non-nil error
// aborts the request before dispatch. No gate is installed by default.
type FraudGate func(entities.FraudVerdict) error

type Option func(*PaymentOrchestrator)

func WithLogger(l *log.Logger) Option {
	return func(o *PaymentOrchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithFraudGate(g FraudGate) Option {
	return func(o *PaymentOrchestrator) { o.fraudGate = g }
}

// PaymentOrchestrator sequences validation, fraud scoring, discount,
// conversion and assembly, then dispatches to the collaborators.
//
// Side-effect order is fixed: API dispatch first; notification and analytics
// only after the API accepted the payload. Notifier and analytics failures
// never fail the request and the API call is never retried.
type PaymentOrchestrator struct {
	validator pricing.Validator
	scorer    pricing.FraudScorer
	discounts pricing.DiscountEngine
	converter pricing.CurrencyConverter
	builder   pricing.TransactionBuilder
	refunds   pricing.RefundCalculator
	api       interfaces.IApiClient
	notifier  interfaces.INotifier
	analytics interfaces.IAnalyticsLogger
	clock     interfaces.IClock
	fraudGate FraudGate
	logger    *log.Logger
}

var _ IPaymentOrchestrator = (*PaymentOrchestrator)(nil)

func NewPaymentOrchestrator(
	policy pricing.Policy,
	api interfaces.IApiClient,
	notifier interfaces.INotifier,
	analytics interfaces.IAnalyticsLogger,
	clock interfaces.IClock,
	opts ...Option,
) *PaymentOrchestrator {
	o := &PaymentOrchestrator{
		validator: pricing.NewValidator(),
		scorer:    pricing.NewFraudScorer(),
		discounts: pricing.NewDiscountEngine(policy.Discounts),
		converter: pricing.NewCurrencyConverter(policy.Currencies),
		builder:   pricing.NewTransactionBuilder(),
		refunds:   policy.Refunds,
		api:       api,
		notifier:  notifier,
		analytics: analytics,
		clock:     clock,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *PaymentOrchestrator) Process(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	run := o.newRun("process", req.UserID)
	o.logger.Printf("[payment][usecase] process start user_id=%s method=%s amount=%s currency=%s discount_code=%q fraud_check_level=%d",
		req.UserID, req.Method, req.Amount, req.Currency, req.DiscountCode, req.FraudCheckLevel)

	if req.Amount.IsNegative() {
		return entities.Transaction{}, run.fail(ErrInvalidAmount)
	}
	if req.FraudCheckLevel < 0 {
		return entities.Transaction{}, run.fail(ErrInvalidFraudLevel)
	}
	if err := o.validator.Validate(req.Method, req.Metadata); err != nil {
		return entities.Transaction{}, run.fail(err)
	}
	if o.api == nil {
		return entities.Transaction{}, run.fail(ErrApiClientNotConfigured)
	}
	if o.clock == nil {
		return entities.Transaction{}, run.fail(ErrClockNotConfigured)
	}
	run.advance(StageValidated)

	verdict := o.scorer.Score(req.Amount, req.FraudCheckLevel)
	if verdict != entities.FraudVerdictSkipped {
		tier := "light"
		if pricing.IsHeavyCheck(verdict) {
			tier = "heavy"
		}
		o.logger.Printf("[payment][usecase] fraud check tier=%s user_id=%s amount=%s verdict=%s", tier, req.UserID, req.Amount, verdict)
	}
	if o.fraudGate != nil {
		if err := o.fraudGate(verdict); err != nil {
			return entities.Transaction{}, run.fail(err)
		}
	}
	run.advance(StageFraudScored)

	amount, err := o.discounts.Apply(req.Amount, req.DiscountCode)
	if err != nil {
		o.logger.Printf("[payment][usecase] warning user_id=%s: %v; amount unchanged", req.UserID, err)
	}
	run.advance(StageDiscounted)

	amount, err = o.converter.Convert(amount, req.Currency)
	if err != nil {
		o.logger.Printf("[payment][usecase] warning user_id=%s: %v; passing amount through at rate 1", req.UserID, err)
	}
	run.advance(StageConverted)

	tx := o.builder.Build(req, amount, verdict, o.clock.Now())
	run.advance(StageBuilt)

	endpoint := PaymentEndpoint(req.Method)
	ack, err := o.api.Post(ctx, endpoint, tx)
	if err != nil {
		return entities.Transaction{}, run.fail(asApiError(endpoint, err))
	}
	o.logger.Printf("[payment][usecase] payment sent endpoint=%s user_id=%s final_amount=%s currency=%s provider_id=%s provider_status=%s",
		endpoint, tx.UserID, tx.FinalAmount, tx.Currency, ack.ProviderID, ack.ProviderStatus)
	run.advance(StageDispatched)

	if o.notifier != nil {
		if err := o.notifier.Notify(ctx, tx.UserID, tx.FinalAmount, tx.Currency); err != nil {
			o.logger.Printf("[payment][usecase] warning notification failed user_id=%s err=%v", tx.UserID, err)
		}
	}
	run.advance(StageNotified)

	if o.analytics != nil {
		o.analytics.Log(ctx, entities.AnalyticsEvent{
			UserID:   tx.UserID,
			Amount:   tx.FinalAmount,
			Currency: tx.Currency,
			Method:   tx.Method,
		})
	}
	run.advance(StageLogged)
	run.advance(StageDone)

	return tx, nil
}

func (o *PaymentOrchestrator) Refund(ctx context.Context, req entities.RefundRequest) (entities.RefundRecord, error) {
	run := o.newRun("refund", req.UserID)
	o.logger.Printf("[payment][usecase] refund start transaction_id=%q user_id=%s amount=%s currency=%s",
		req.TransactionID, req.UserID, req.Amount, req.Currency)

	req.TransactionID = strings.TrimSpace(req.TransactionID)
	if req.TransactionID == "" {
		return entities.RefundRecord{}, run.fail(ErrInvalidTransactionID)
	}
	if req.Amount.IsNegative() {
		return entities.RefundRecord{}, run.fail(ErrInvalidAmount)
	}
	if o.api == nil {
		return entities.RefundRecord{}, run.fail(ErrApiClientNotConfigured)
	}
	if o.clock == nil {
		return entities.RefundRecord{}, run.fail(ErrClockNotConfigured)
	}

	record := o.refunds.BuildRefund(req, o.clock.Now())
	run.advance(StageComputed)

	ack, err := o.api.Post(ctx, RefundEndpoint, record)
	if err != nil {
		return entities.RefundRecord{}, run.fail(asApiError(RefundEndpoint, err))
	}
	o.logger.Printf("[payment][usecase] refund processed transaction_id=%s fee=%s net_amount=%s provider_id=%s",
		record.TransactionID, record.Fee, record.NetAmount, ack.ProviderID)
	run.advance(StageDispatched)
	run.advance(StageDone)

	return record, nil
}

// asApiError passes *ApiError values from the client through untouched and
// wraps anything else.
func asApiError(endpoint string, err error) error {
	var apiErr *entities.ApiError
	if errors.As(err, &apiErr) {
		return err
	}
	return &entities.ApiError{Endpoint: endpoint, Err: err}
}
