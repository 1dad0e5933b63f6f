package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"payment_processor/internal/adapter/http/dto/request"
	"payment_processor/internal/adapter/http/dto/response"
	"payment_processor/internal/domain/entities"
	"payment_processor/internal/domain/pricing"
	"payment_processor/internal/infrastructure/payments"
	"payment_processor/internal/usecase"
	"payment_processor/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// PaymentHandler exposes the payment and refund pipelines over HTTP.
type PaymentHandler struct {
	usecase usecase.IPaymentOrchestrator
}

func NewPaymentHandler(uc usecase.IPaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ProcessPayment godoc
// @Summary      Process a payment
// @Description  Validates, scores, discounts and converts the payment, then sends it to the payment provider.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.PaymentRequest  true  "Payment request"
// @Success      200      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	requestID := requestIDFrom(c)

	var body request.PaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[payment][handler] invalid payload request_id=%s err=%v", requestID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process start request_id=%s user_id=%s method=%s", requestID, body.UserID, body.PaymentMethod)

	tx, err := h.usecase.Process(c.Request.Context(), body.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] process failed request_id=%s user_id=%s err=%v", requestID, body.UserID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success request_id=%s user_id=%s final_amount=%s currency=%s",
		requestID, tx.UserID, tx.FinalAmount, tx.Currency)

	c.JSON(http.StatusOK, response.FromTransaction(requestID, tx))
}

// RefundPayment godoc
// @Summary      Refund a payment
// @Description  Computes the refund fee and net amount, then sends the refund to the payment provider.
// @Tags         refunds
// @Accept       json
// @Produce      json
// @Param        refund  body      request.RefundRequest  true  "Refund request"
// @Success      200     {object}  response.RefundResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Failure      503     {object}  pkg.HTTPError
// @Router       /refunds [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	requestID := requestIDFrom(c)

	var body request.RefundRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[payment][handler] invalid refund payload request_id=%s err=%v", requestID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund start request_id=%s transaction_id=%s", requestID, body.TransactionID)

	record, err := h.usecase.Refund(c.Request.Context(), body.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] refund failed request_id=%s transaction_id=%s err=%v", requestID, body.TransactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success request_id=%s transaction_id=%s net_amount=%s",
		requestID, record.TransactionID, record.NetAmount)

	c.JSON(http.StatusOK, response.FromRefundRecord(requestID, record))
}

func requestIDFrom(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(HeaderRequestID, id)
	return id
}

func mapPaymentError(err error) *pkg.AppError {
	var apiErr *entities.ApiError
	switch {
	case errors.Is(err, pricing.ErrInvalidMetadata), errors.Is(err, pricing.ErrUnsupportedMethod),
		errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidFraudLevel),
		errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr):
		return mapApiError(apiErr)
	case errors.Is(err, usecase.ErrApiClientNotConfigured), errors.Is(err, usecase.ErrClockNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Payment service not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapApiError(apiErr *entities.ApiError) *pkg.AppError {
	switch apiErr.Code {
	case payments.ErrorCodeCustomerNotFound:
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", apiErr, http.StatusBadRequest)
	case payments.ErrorCodeInvalidUsers:
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", apiErr, http.StatusBadRequest)
	case payments.ErrorCodeBadRequest:
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", apiErr, http.StatusBadRequest)
	case payments.ErrorCodeUnauthorized:
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", apiErr, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", apiErr, http.StatusBadGateway)
	}
}
