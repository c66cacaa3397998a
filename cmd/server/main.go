package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"
	"github.com/ziflex/lecho/v3"

	"github.com/finhub/finhub.go/db"
	"github.com/finhub/finhub.go/db/migrations"
	"github.com/finhub/finhub.go/ledger"
	"github.com/finhub/finhub.go/lib"
	"github.com/finhub/finhub.go/lib/service"
	"github.com/finhub/finhub.go/lib/tokens"
	"github.com/finhub/finhub.go/lib/transport"
	"github.com/finhub/finhub.go/rabbitmq"
)

func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := lib.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error initializing db connection")
	}

	// Migrate the DB
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error initializing db migrator")
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error migrating database")
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Error().Err(err).Msg("sentry init error")
		}
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a
	// publisher and no entry events will be pushed to a broker.
	var publisher rabbitmq.Publisher
	if c.RabbitMQUri != "" {
		amqpPublisher, err := rabbitmq.DialAMQP(c.RabbitMQUri, c.RabbitMQEntryExchange, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Error connecting to rabbitmq")
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	svc := &service.FinhubService{
		Config:    c,
		DB:        dbConn,
		Ledger:    ledger.NewService(db.NewLedgerStore(dbConn), logger),
		Logger:    logger,
		Publisher: publisher,
	}

	// init echo server
	echoLogger := lecho.From(logger)
	e := transport.InitEcho(c, echoLogger)

	logMw := transport.CreateLoggingMiddleware(echoLogger)
	// strict rate limit for requests that move funds
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)
	securedWithStrictRateLimit := e.Group("", tokens.Middleware(c.JWTSecret), strictRateLimitMiddleware, logMw)

	transport.RegisterEndpoints(svc, e, secured, securedWithStrictRateLimit, strictRateLimitMiddleware, logMw)

	if c.EnablePrometheus {
		go transport.StartPrometheusEcho(echoLogger, c, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
}
