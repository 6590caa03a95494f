package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/config"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/database"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/health"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/middleware"
	natspkg "github.com/halarumdigital/traki-dispatch/internal/pkg/nats"
	nrpkg "github.com/halarumdigital/traki-dispatch/internal/pkg/newrelic"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/server"
	ws "github.com/halarumdigital/traki-dispatch/internal/pkg/websocket"
	couriergateway "github.com/halarumdigital/traki-dispatch/services/couriers/gateway"
	courierhandler "github.com/halarumdigital/traki-dispatch/services/couriers/handler"
	courierrepository "github.com/halarumdigital/traki-dispatch/services/couriers/repository"
	courierusecase "github.com/halarumdigital/traki-dispatch/services/couriers/usecase"
	"github.com/halarumdigital/traki-dispatch/services/dispatch/gateway"
	"github.com/halarumdigital/traki-dispatch/services/dispatch/handler"
	"github.com/halarumdigital/traki-dispatch/services/dispatch/repository"
	"github.com/halarumdigital/traki-dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic APM (nil when disabled)
	nrApp := nrpkg.InitNewRelic(configs)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	requestRepo := repository.NewRequestRepository(configs, postgresClient.GetDB())
	offerRepo := repository.NewOfferRepository(configs, postgresClient.GetDB())
	settingsRepo := repository.NewSettingsRepository(configs, postgresClient.GetDB())
	courierRepo := courierrepository.NewCourierRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	dispatchGW := gateway.NewDispatchGW(natsClient)
	courierGW := couriergateway.NewCourierGW(natsClient)

	// Initialize usecases
	dispatchUC := usecase.NewDispatchUC(configs, requestRepo, offerRepo, courierRepo, settingsRepo, dispatchGW)
	courierUC := courierusecase.NewCourierUC(configs, courierRepo, settingsRepo, courierGW)

	// Initialize websocket manager
	wsManager := ws.NewManager(configs.JWT)

	// Initialize handlers
	dispatchHandler := handler.NewHandler(dispatchUC)
	courierHandler := courierhandler.NewHandler(courierUC, natsClient, wsManager)

	// Initialize NATS consumers
	if err := courierHandler.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer courierHandler.Stop()

	// Start background monitors
	monitorCtx, stopMonitors := context.WithCancel(context.Background())
	defer stopMonitors()

	autoCancelInterval := time.Duration(configs.Monitor.AutoCancelIntervalSeconds) * time.Second
	livenessInterval := time.Duration(configs.Monitor.LivenessIntervalSeconds) * time.Second
	go dispatchUC.RunAutoCancelMonitor(monitorCtx, autoCancelInterval)
	go courierUC.RunLivenessMonitor(monitorCtx, livenessInterval)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(configs.APIKey)
	dispatchHandler.RegisterRoutes(e, apiKeyMiddleware)
	courierHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
