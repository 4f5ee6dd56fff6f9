package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "financier/docs" // swag generated
	"financier/internal/adapter/persistence/repository"
	"financier/internal/infrastructure/config"
	"financier/internal/infrastructure/database"
	"financier/internal/infrastructure/logger"
	"financier/internal/infrastructure/metrics"
	"financier/internal/infrastructure/payments"
	"financier/internal/usecase"
	"financier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const startupTimeout = 15 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	links, err := newGatewayLinkRepository(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to dynamodb")
	}

	gateway := newPaymentGateway(cfg, log)
	billingUseCase := usecase.NewBillingUseCase(links, gateway, usecase.Attributes{
		Customer: cfg.CustomerAttribute,
		Account:  cfg.AccountAttribute,
	}, log)

	router := NewRouter(log, billingUseCase, cfg.GatewayMock)

	log.WithField("port", cfg.Port).Info("starting http server")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.WithError(err).Fatal("failed to startup the application")
	}
}

// NewRouter builds the engine with every route and middleware. Test token
// issuance is routed only when withTokens is set.
func NewRouter(log logrus.FieldLogger, billingUseCase usecase.IBillingUseCase, withTokens bool) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/metrics", metrics.Handler())
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, billingUseCase, log, withTokens)
	return router
}

func setMiddlewares(router *gin.Engine, log logrus.FieldLogger) {
	router.Use(logger.Middleware(log))
	router.Use(metrics.Middleware)
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func newGatewayLinkRepository(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*repository.GatewayLinkDynamoRepository, error) {
	settings := database.SettingsFromEnv()
	ddb, err := database.Connect(ctx, settings)
	if err != nil {
		return nil, err
	}
	if settings.Local() {
		created, err := database.EnsureTable(ctx, ddb, cfg.GatewayLinksTable)
		if err != nil {
			return nil, err
		}
		if created {
			log.WithField("table", cfg.GatewayLinksTable).Info("created dynamodb table")
		}
	}
	return repository.NewGatewayLinkDynamoRepository(ddb, cfg.GatewayLinksTable), nil
}

// newPaymentGateway returns nil when no gateway can be configured; the use
// case then answers every call with ErrPaymentGatewayUnavailable.
func newPaymentGateway(cfg config.Config, log logrus.FieldLogger) interfaces.IPaymentGateway {
	opts := payments.Options{
		CustomerAttribute: cfg.CustomerAttribute,
		AccountAttribute:  cfg.AccountAttribute,
		Observe:           metrics.ObserveGatewayCall,
	}
	if cfg.GatewayMock {
		log.Warn("payment gateway mock mode enabled; no real money moves")
		return payments.NewFakeGateway(cfg.StripeSecretKey, opts)
	}

	gateway, err := payments.NewStripeGateway(cfg.StripeSecretKey, opts)
	if err != nil {
		log.WithError(err).Warn("stripe gateway not configured")
		return nil
	}
	return gateway
}
