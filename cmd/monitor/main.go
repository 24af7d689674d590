package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MichalMitros/price-monitor/cmd/monitor/config"
	"github.com/MichalMitros/price-monitor/internal/decoder"
	"github.com/MichalMitros/price-monitor/internal/extractor"
	"github.com/MichalMitros/price-monitor/internal/handler"
	"github.com/MichalMitros/price-monitor/internal/mailer"
	"github.com/MichalMitros/price-monitor/internal/monitor"
	"github.com/MichalMitros/price-monitor/internal/notification"
	"github.com/MichalMitros/price-monitor/internal/platform/rabbitmq"
	"github.com/MichalMitros/price-monitor/internal/platform/storage"
	"github.com/MichalMitros/price-monitor/internal/scheduler"
	"github.com/MichalMitros/price-monitor/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when calling extraction service.
	UserAgent = "price-monitor/0.0.1"

	shutdownTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// .env is optional, environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal().
			Err(err).
			Msg("can't load .env file")
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	if err = storage.Migrate(ctx, pgDB); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't migrate database")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	consumer, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ consumer channel")
	}

	if err = consumer.BindQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare refresh queue")
	}

	if err = consumer.SetPrefetch(cfg.RabbitMQ.Prefetch); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't set RabbitMQ prefetch")
	}

	publisher, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ publisher channel")
	}

	store := storage.NewPostgres(pgDB)

	extr := extractor.NewClient(
		extractor.NewHTTPClient(cfg.Extractor.ConnectTimeout, cfg.Extractor.ReadTimeout),
		decoder.Decoder{},
		cfg.Extractor.URL,
		UserAgent,
	)
	probeExtractor(ctx, extr, &logger)

	mon, err := monitor.NewMonitor(
		extr,
		store,
		notification.NewSink(store, &logger),
		mailer.NewSMTPMailer(mailer.NewSMTPSender(cfg.SMTP), cfg.SMTP, &logger),
		&logger,
		monitor.WithPoolSize(cfg.WorkerPoolSize),
	)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't create monitor")
	}

	han := handler.NewHandler(consumer, mon, &logger)

	// start consuming and handling refresh commands
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	sched, err := scheduler.NewScheduler(
		store,
		commander.NewRefreshCommander(commander.NewRabbitMQSender(publisher, cfg.RabbitMQ.RoutingKey)),
		&logger,
		cfg.Scheduler.Schedule,
		cfg.Scheduler.Parallelism,
	)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't create scheduler")
	}
	sched.Start()

	logger.Info().
		Str("schedule", cfg.Scheduler.Schedule).
		Int("workers", cfg.WorkerPoolSize).
		Msg("price monitor up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	sched.Stop(shutdownCtx)

	// wait for consumer to finish, then for scheduled refreshes
	<-consumer.Done()
	mon.Close()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}

// probeExtractor logs whether extraction service is reachable. Unavailable service doesn't stop the monitor.
func probeExtractor(ctx context.Context, extr *extractor.Client, logger *zerolog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := extr.Probe(ctx); err != nil {
		logger.Warn().
			Err(err).
			Msg("extraction service is not available")
		return
	}

	logger.Info().Msg("extraction service is available")
}
