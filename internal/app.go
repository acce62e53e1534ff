package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authapi_client "housing-insights-service/internal/adapters/authapi"
	kvstore_adapter "housing-insights-service/internal/adapters/kvstore"
	logger_adapter "housing-insights-service/internal/adapters/logger"
	postgres_adapter "housing-insights-service/internal/adapters/postgres"
	predictor_client "housing-insights-service/internal/adapters/predictor"
	"housing-insights-service/internal/adapters/rabbitmq"
	randsource_adapter "housing-insights-service/internal/adapters/randsource"
	"housing-insights-service/internal/adapters/rest"
	"housing-insights-service/internal/configs"
	"housing-insights-service/internal/constants"
	"housing-insights-service/internal/core/port"
	"housing-insights-service/internal/core/usecase"
	fluentlogger "housing-insights-service/pkg/fluent_logger"
	"housing-insights-service/pkg/postgres"
	"housing-insights-service/pkg/rabbitmq/rabbitmq_common"
	"housing-insights-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	rabbitMQ     *rabbitmq_common.ConnectionManager
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- Loggers ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- Persistence ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	kvRepository, err := postgres_adapter.NewKeyValueRepository(context.Background(), dbPool)
	if err != nil {
		appLogger.Error("Failed to create key/value repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create key/value repository: %w", err)
	}

	historyStore := kvstore_adapter.NewHistoryStore(kvRepository)
	preferencesStore := kvstore_adapter.NewPreferencesStore(kvRepository)

	// --- Remote services ---
	predictorClient := predictor_client.NewClient(appConfig.Predictor.URL)
	authClient := authapi_client.NewClient(appConfig.Auth.URL)

	// A cold scoring endpoint is worth knowing about at startup, but it
	// must not block the service from coming up.
	healthCtx, cancelHealth := context.WithTimeout(context.Background(), 5*time.Second)
	if ok, err := predictorClient.Health(healthCtx); err != nil || !ok {
		appLogger.Warn("Scoring endpoint is not ready; predictions will fail until it is", port.Fields{
			"url": appConfig.Predictor.URL,
		})
	} else {
		appLogger.Info("Scoring endpoint is up", port.Fields{"url": appConfig.Predictor.URL})
	}
	cancelHealth()

	// --- Query events (optional) ---
	var queryEvents port.QueryEventPublisherPort
	var connManager *rabbitmq_common.ConnectionManager
	if appConfig.RabbitMQ.Enabled {
		pkgLogger := rabbitmq.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		connManager, err = rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, pkgLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.QueryEventsExchangeName,
			ExchangeType:             constants.QueryEventsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   pkgLogger,
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create query events producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create query events producer: %w", err)
		}

		queryEvents, err = rabbitmq.NewQueryEventPublisher(producer,
			constants.PredictionRecordedRoutingKey,
			constants.AnalyticsRecordedRoutingKey)
		if err != nil {
			appLogger.Error("Failed to create query event publisher", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create query event publisher: %w", err)
		}
		appLogger.Info("Query events publisher initialized", port.Fields{
			"exchange": constants.QueryEventsExchangeName,
		})
	}

	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- Use cases ---
	predictPriceUseCase := usecase.NewPredictPriceUseCase(predictorClient, historyStore, queryEvents, appConfig.Predictor.USDToINRRate)
	marketAnalyticsUseCase := usecase.NewGetMarketAnalyticsUseCase(historyStore, queryEvents, randsource_adapter.NewMathRandSource())
	getHistoryUseCase := usecase.NewGetHistoryUseCase(historyStore)
	removeHistoryEntryUseCase := usecase.NewRemoveHistoryEntryUseCase(historyStore)
	clearHistoryUseCase := usecase.NewClearHistoryUseCase(historyStore)
	getPreferencesUseCase := usecase.NewGetPreferencesUseCase(preferencesStore)
	savePreferencesUseCase := usecase.NewSavePreferencesUseCase(preferencesStore)

	// --- REST API server ---
	handlers := rest.Handlers{
		Insights:    rest.NewInsightsHandler(predictPriceUseCase, marketAnalyticsUseCase),
		History:     rest.NewHistoryHandler(getHistoryUseCase, removeHistoryEntryUseCase, clearHistoryUseCase),
		Preferences: rest.NewPreferencesHandler(getPreferencesUseCase, savePreferencesUseCase),
		Locations:   rest.NewLocationsHandler(),
		Health:      rest.NewHealthHandler(predictorClient),
	}
	authMiddleware := rest.NewAuthMiddleware(authClient)
	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, authMiddleware, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient: fluentClient,
		rabbitMQ:     connManager,
		logger:       appLogger,
	}

	return application, nil
}

// Run starts all application components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.rabbitMQ != nil {
			if err := a.rabbitMQ.Close(); err != nil {
				a.logger.Error("Error during RabbitMQ shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Log to stdout; fluent may already be unreachable.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
