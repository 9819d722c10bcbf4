package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/scrapline/scrapline/internal/pkg/config"
	"github.com/scrapline/scrapline/internal/pkg/database"
	"github.com/scrapline/scrapline/internal/pkg/health"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/middleware"
	natspkg "github.com/scrapline/scrapline/internal/pkg/nats"
	nrpkg "github.com/scrapline/scrapline/internal/pkg/newrelic"
	quotesGateway "github.com/scrapline/scrapline/services/quotes/gateway"
	quotesHandler "github.com/scrapline/scrapline/services/quotes/handler"
	quotesRepository "github.com/scrapline/scrapline/services/quotes/repository"
	quotesUsecase "github.com/scrapline/scrapline/services/quotes/usecase"
	settingsHandler "github.com/scrapline/scrapline/services/settings/handler"
	settingsRepository "github.com/scrapline/scrapline/services/settings/repository"
	settingsUsecase "github.com/scrapline/scrapline/services/settings/usecase"
	usersGateway "github.com/scrapline/scrapline/services/users/gateway"
	usersHandler "github.com/scrapline/scrapline/services/users/handler"
	usersRepository "github.com/scrapline/scrapline/services/users/repository"
	usersUsecase "github.com/scrapline/scrapline/services/users/usecase"
)

func main() {
	appName := "scrapline-api"
	configPath := "config/scrapline.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	db := postgresClient.GetDB()
	quoteRepo := quotesRepository.NewQuoteRepository(configs, db)
	userRepo := usersRepository.NewUserRepository(configs, db)
	settingsRepo := settingsRepository.NewSettingsRepository(configs, db, redisClient.Client)

	// Initialize gateways
	quoteGW := quotesGateway.NewQuoteGW(configs, natsClient)
	userGW := usersGateway.NewUserGW(natsClient)

	// Initialize use cases. The user repository doubles as the lookup
	// ledger and the settings repository as the pricing policy.
	quoteUC, err := quotesUsecase.NewQuoteUC(configs, quoteRepo, quoteGW, userRepo, settingsRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize quote use case", logger.Err(err))
	}
	userUC, err := usersUsecase.NewUserUC(configs, userRepo, userGW, settingsRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize user use case", logger.Err(err))
	}
	settingsUC, err := settingsUsecase.NewSettingsUC(settingsRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize settings use case", logger.Err(err))
	}

	// Initialize handlers
	quoteHandler := quotesHandler.NewHandler(quoteUC, configs, redisClient)
	userHandler := usersHandler.NewHandler(userUC, configs)
	settingHandler := settingsHandler.NewHandler(settingsUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery first)
	e.Use(echomiddleware.Recover())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	quoteHandler.RegisterRoutes(e)
	userHandler.RegisterRoutes(e)
	settingHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	postgresClient.Close()
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}
	natsClient.Close()

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
