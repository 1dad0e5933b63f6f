package routes

import (
	"payment_processor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathRefunds  = "/refunds"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.POST(PathPayments, paymentHandler.ProcessPayment)
	rg.POST(PathRefunds, paymentHandler.RefundPayment)
}
