package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"city_pulse/internal/api"
	"city_pulse/internal/config"
	"city_pulse/internal/location"
	"city_pulse/internal/mailer/brevo"
	"city_pulse/internal/migrations"
	"city_pulse/internal/publisher"
	"city_pulse/internal/scheduler"
	"city_pulse/internal/service"
	"city_pulse/internal/source/letsroll"
	"city_pulse/internal/storage/postgres"
	"city_pulse/internal/synth"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	cities, err := location.Load(cfg.LocationsPath)
	if err != nil {
		logger.Error("failed to load locations", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded locations", "cities", len(cities.Cities()))

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Run(db.DB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	rabbitMQ, err := publisher.NewRabbitMQ(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	ledgerStore := postgres.NewLedgerStore(db)
	seenSkaterStore := postgres.NewSeenSkaterStore(db)
	cityUpdateStore := postgres.NewCityUpdateStore(db)
	queueStore := postgres.NewQueueStore(db)
	cooldownStore := postgres.NewCooldownStore(db)
	listStore := postgres.NewListStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Upstream clients
	source := letsroll.NewClient(cfg.API, logger)
	brevoClient := brevo.NewClient(cfg.Brevo, logger)

	var synthesizer service.ContentSynthesizer
	if cfg.Synthesis.APIKey != "" {
		synthesizer = synth.NewClient(cfg.Synthesis, logger)
	} else {
		logger.Warn("synthesis disabled, digests use the template fallback")
	}

	// Engines
	discoveryEngine := service.NewDiscoveryEngine(
		source, ledgerStore, seenSkaterStore, txManager, logger, cfg.Discovery)
	publicationEngine := service.NewPublicationEngine(
		ledgerStore, cityUpdateStore, synthesizer, rabbitMQ, cities,
		txManager, logger, cfg.Publication, cfg.API.MediaBaseURL)
	contactSyncEngine := service.NewContactSyncEngine(
		source, brevoClient, cooldownStore, listStore, logger, cfg.ContactSync, cfg.Brevo)
	reportService := service.NewReportService(contactSyncEngine, cities, logger, cfg.Server.ReportTTL)

	discoveryRunner := service.NewRunner(queueStore, discoveryEngine, cities, logger, cfg.Queue.TickDelay)
	contactSyncRunner := service.NewRunner(queueStore, contactSyncEngine, cities, logger, cfg.Queue.TickDelay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	discoveryTimer := scheduler.NewTickTimer(ctx, discoveryRunner.Tick)
	defer discoveryTimer.Stop()
	discoveryRunner.SetScheduler(discoveryTimer)

	contactSyncTimer := scheduler.NewTickTimer(ctx, contactSyncRunner.Tick)
	defer contactSyncTimer.Stop()
	contactSyncRunner.SetScheduler(contactSyncTimer)

	sched := scheduler.New(logger)
	sched.Add(scheduler.Job{
		Name:     "discovery_enqueue",
		Interval: cfg.Discovery.Interval,
		Run: func(ctx context.Context) error {
			_, err := discoveryRunner.Enqueue(ctx)
			return err
		},
	})
	sched.Add(scheduler.Job{
		Name:     "contact_sync_enqueue",
		Interval: cfg.ContactSync.Interval,
		Run: func(ctx context.Context) error {
			_, err := contactSyncRunner.Enqueue(ctx)
			return err
		},
	})
	sched.Add(scheduler.Job{
		Name:     "publication",
		Interval: cfg.Publication.Interval,
		Run: func(ctx context.Context) error {
			_, err := publicationEngine.Run(ctx)
			return err
		},
	})
	// Safety net for missed one-shot wakeups.
	sched.Add(scheduler.Job{
		Name:     "discovery_fallback_tick",
		Interval: cfg.Queue.FallbackInterval,
		Run:      discoveryRunner.Tick,
	})
	sched.Add(scheduler.Job{
		Name:     "contact_sync_fallback_tick",
		Interval: cfg.Queue.FallbackInterval,
		Run:      contactSyncRunner.Tick,
	})

	server := api.NewServer(
		cfg.Server.Addr,
		[]*service.Runner{discoveryRunner, contactSyncRunner},
		publicationEngine,
		discoveryEngine,
		contactSyncEngine,
		reportService,
		cities,
		logger,
	)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
		_ = server.Shutdown(context.Background())
	}()

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting city pulse",
		"cities", len(cities.Cities()),
		"frequency", cfg.Publication.Frequency,
		"addr", cfg.Server.Addr,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
