package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/controller"
	circuitbreaker "github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/circuit-breaker"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/payment-gateway"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/sms"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/tracing"
	localmiddleware "github.com/anandbhardwaj456/E-commerce-webapp/internal/middleware"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	if traceProvider != nil {
		tracer := traceProvider.Tracer("storefront-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	if err := os.MkdirAll(app.Config.UploadDir, 0o755); err != nil {
		log.Error().Err(err).Msg("Failed to create upload directory")
	}
	e.Static("/uploads", app.Config.UploadDir)

	g := e.Group("/api/v1")

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	var publisher service.EventPublisher
	kafkaConn, err := kafka.CreateKafkaProducer(app.Config)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to message broker, events will be dropped")
	} else {
		publisher = kafka.CreatePublisher(kafkaConn)
	}

	kafkaReader := kafka.CreateKafkaReader(app.Config)

	midtransClient := paymentgateway.CreateMidtransClient(app.Config)
	gateway := paymentgateway.CreateMidtransGateway(midtransClient)

	smsBreaker := circuitbreaker.CreateCircuitBreaker("sms-gateway")
	smsSender := sms.CreateGatewaySender(app.Config.SMSConfig, smsBreaker)

	productRepo := repository.CreateNewProductRepository(app.DB)
	reviewRepo := repository.CreateNewReviewRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)
	adRepo := repository.CreateNewAdvertisementRepository(app.DB)

	productSvc := service.CreateProductService(productRepo)
	reviewSvc := service.CreateReviewService(reviewRepo, productRepo)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, userRepo, gateway, publisher, kafkaReader, app.Config)
	authSvc := service.CreateAuthService(userRepo, smsSender, publisher, app.Config)
	userSvc := service.CreateUserService(userRepo)
	adminSvc := service.CreateAdminService(userRepo, productRepo, orderRepo)
	adSvc := service.CreateAdvertisementService(adRepo)

	isLoggedIn := localmiddleware.Authenticated(app.Config.JWTSecret)
	isAdmin := localmiddleware.AdminOnly()

	controller.CreateProductController(g, productSvc, app.Config.UploadDir, isLoggedIn, isAdmin)
	controller.CreateReviewController(g, reviewSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn, isAdmin)
	controller.CreateAuthController(g, authSvc, userSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateAdminController(g, adminSvc, isLoggedIn, isAdmin)
	controller.CreateAdvertisementController(g, adSvc, app.Config.UploadDir, isLoggedIn, isAdmin)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(
			time.Hour,
		),
		gocron.NewTask(
			orderSvc.CancelStaleUnpaidOrders,
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule unpaid order cleanup")
	}

	scheduler.Start()

	if publisher != nil {
		go orderSvc.ConsumeEvents()
	}

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
