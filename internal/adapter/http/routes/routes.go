package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "payment_processor/docs" // This will be auto-generated
	"payment_processor/internal/adapter/http/handlers"
	"payment_processor/internal/adapter/persistence/repository"
	"payment_processor/internal/infrastructure/clock"
	"payment_processor/internal/infrastructure/config"
	"payment_processor/internal/infrastructure/database"
	"payment_processor/internal/infrastructure/notification"
	"payment_processor/internal/infrastructure/payments"
	"payment_processor/internal/usecase"
	"payment_processor/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router := NewRouter(handlers.NewPaymentHandler(newPaymentOrchestrator(cfg)))

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(paymentHandler *handlers.PaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func newPaymentOrchestrator(cfg config.Config) *usecase.PaymentOrchestrator {
	var api interfaces.IApiClient
	switch cfg.PaymentAPIDriver {
	case config.PaymentAPIDriverHTTP:
		api = payments.NewHTTPApiClient(cfg.PaymentAPIAddr)
		log.Printf("[payment][gateway] using http payment api addr=%s", cfg.PaymentAPIAddr)
	default:
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			api = mpGateway
		}
	}

	return usecase.NewPaymentOrchestrator(
		cfg.Policy,
		api,
		newNotifier(cfg),
		newAnalytics(),
		clock.SystemClock{},
	)
}

func newNotifier(cfg config.Config) interfaces.INotifier {
	if cfg.RedisAddr == "" {
		log.Printf("[payment][notifier] REDIS_ADDR not set; notifications are only logged")
		return notification.NewLogNotifier(nil)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[payment][notifier] redis ping failed addr=%s err=%v", cfg.RedisAddr, err)
	}
	return notification.NewRedisNotifier(client, cfg.NotificationsChannel)
}

func newAnalytics() interfaces.IAnalyticsLogger {
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		log.Printf("[payment][analytics] dynamodb not configured; events are only logged: %v", err)
		return repository.LogAnalytics{}
	}
	return repository.NewAnalyticsDynamoLogger(ddb)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
