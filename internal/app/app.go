package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/config"
	"github.com/reusemart/consignment-service/internal/controller"
	"github.com/reusemart/consignment-service/internal/infrastructure/mailer"
	"github.com/reusemart/consignment-service/internal/infrastructure/message-queue/kafka"
	"github.com/reusemart/consignment-service/internal/infrastructure/storage"
	"github.com/reusemart/consignment-service/internal/infrastructure/tracing"
	"github.com/reusemart/consignment-service/internal/middleware"
	"github.com/reusemart/consignment-service/internal/repository"
	"github.com/reusemart/consignment-service/internal/service"
	"github.com/reusemart/consignment-service/internal/view"
	"github.com/reusemart/consignment-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if app.Config.Environment == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer(tracing.ServiceName)

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Empty subsystem keeps metric names unprefixed.
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	// Events are best effort; a missing broker leaves a nil producer whose Publish is a no-op.
	producer, err := kafka.CreateKafkaProducer(app.Config)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to kafka, events are disabled")
	}
	defer producer.Close()

	if err := app.registerRoutes(e, producer); err != nil {
		logger.Fatal().Err(err).Msg("Failed to register routes")
	}

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}

func (app *App) registerRoutes(e *echo.Echo, publisher service.EventPublisher) error {
	e.Use(middleware.Logger)

	renderer, err := view.CreateRenderer()
	if err != nil {
		return err
	}
	e.Renderer = renderer

	imageStorage, err := storage.CreateLocalStorage(app.Config.UploadConfig)
	if err != nil {
		return err
	}
	e.Static(app.Config.UploadConfig.BaseURL, app.Config.UploadConfig.Dir)

	mail := mailer.CreateMailer(app.Config.SMTPConfig)

	barangRepo := repository.CreateBarangRepository(app.DB)
	penitipRepo := repository.CreatePenitipRepository(app.DB)
	accountRepo := repository.CreateAccountRepository(app.DB)
	transaksiRepo := repository.CreateTransaksiRepository(app.DB)

	barangSvc := service.CreateBarangService(barangRepo, imageStorage, publisher)
	penitipSvc := service.CreatePenitipService(penitipRepo, accountRepo)
	authSvc := service.CreateAuthService(accountRepo, app.Config, mail, publisher)
	transaksiSvc := service.CreateTransaksiService(transaksiRepo)

	g := e.Group("/api")
	controller.CreateAuthController(g, authSvc, app.Config)
	controller.CreateBarangController(g, barangSvc, app.Config.JWTSecret)
	controller.CreatePenitipController(g, penitipSvc, app.Config.JWTSecret)
	controller.CreateTransaksiController(g, transaksiSvc, app.Config.JWTSecret)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	controller.CreatePageController(e.Group("/admin"), barangSvc)

	return nil
}
