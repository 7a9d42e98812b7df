package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/charlinto/MedRemApp/internal/app"
	"github.com/charlinto/MedRemApp/internal/config"
	"github.com/charlinto/MedRemApp/internal/domain"
	"github.com/charlinto/MedRemApp/internal/infra/notifier"
	"github.com/charlinto/MedRemApp/internal/infra/pubsub"
	"github.com/charlinto/MedRemApp/internal/infra/repository"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
	"github.com/charlinto/MedRemApp/internal/observability/metrics"
	"github.com/charlinto/MedRemApp/internal/observability/tracing"
)

const serviceName = "medication-reminder"

var version = "dev"

// components holds everything a command needs. close releases them in
// reverse order of construction.
type components struct {
	cfg         *config.Config
	db          *gorm.DB
	store       domain.RecordStore
	schedules   app.ScheduleUseCase
	occurrences app.OccurrenceUseCase
	owners      app.OwnerUseCase
	dispatch    app.DispatchUseCase
	httpMetrics *metrics.HTTPMetrics

	// metricsHandler is nil unless metrics are scraped.
	metricsHandler http.Handler

	closers []func(context.Context) error
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogger(cfg.Log)

	return cfg, nil
}

func setupLogger(cfg config.LogConfig) {
	level := logging.ParseLevel(cfg.Level)
	slog.SetDefault(slog.New(logging.NewHandler(os.Stdout, level)))
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.SlowThreshold),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initChannels(ctx context.Context, cfg *config.Config) ([]notifier.Channel, error) {
	var channels []notifier.Channel

	if cfg.SMTP.Enabled() {
		email, err := notifier.NewEmailChannel(notifier.EmailConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			return nil, err
		}

		channels = append(channels, email)
	} else {
		slog.Warn("SMTP_HOST not set, email channel disabled")
	}

	if cfg.FCM.Enabled() {
		push, err := notifier.NewPushChannel(ctx, notifier.PushConfig{
			CredentialsFile: cfg.FCM.CredentialsFile,
			ProjectID:       cfg.FCM.ProjectID,
		})
		if err != nil {
			return nil, err
		}

		channels = append(channels, push)
	} else {
		slog.Warn("FCM_CREDENTIALS_FILE not set, push channel disabled")
	}

	return channels, nil
}

func bootstrap(ctx context.Context) (*components, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	c := &components{cfg: cfg}

	telemetry := cfg.Telemetry

	tracerProvider, err := tracing.NewExportingProvider(ctx,
		tracing.Config{ServiceName: telemetry.ServiceName, ServiceVersion: version, Environment: telemetry.Environment},
		tracing.ExporterConfig{Kind: telemetry.TracesExporter, Endpoint: telemetry.OTLPEndpoint, Insecure: telemetry.OTLPInsecure},
	)
	if err != nil {
		return nil, c.abort(ctx, err)
	}

	tracerProvider.Install()
	c.closers = append(c.closers, tracerProvider.Shutdown)

	meterProvider, err := metrics.NewExportingProvider(ctx,
		metrics.Config{ServiceName: telemetry.ServiceName, ServiceVersion: version, Environment: telemetry.Environment},
		metrics.ExporterConfig{
			Kind:     telemetry.MetricsExporter,
			Endpoint: telemetry.OTLPEndpoint,
			Insecure: telemetry.OTLPInsecure,
			Interval: telemetry.MetricInterval,
		},
	)
	if err != nil {
		return nil, c.abort(ctx, err)
	}

	meterProvider.Install()
	c.closers = append(c.closers, meterProvider.Shutdown)
	c.metricsHandler = meterProvider.Handler()

	meter := meterProvider.Meter(serviceName)

	dispatchMetrics, err := metrics.NewDispatchMetrics(meter)
	if err != nil {
		return nil, c.abort(ctx, fmt.Errorf("failed to create dispatch metrics: %w", err))
	}

	c.httpMetrics, err = metrics.NewHTTPMetrics(meter)
	if err != nil {
		return nil, c.abort(ctx, fmt.Errorf("failed to create http metrics: %w", err))
	}

	c.db, err = initDatabase(cfg.Database)
	if err != nil {
		return nil, c.abort(ctx, fmt.Errorf("failed to initialize database: %w", err))
	}

	c.closers = append(c.closers, func(context.Context) error {
		sqlDB, err := c.db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Close()
	})

	channels, err := initChannels(ctx, cfg)
	if err != nil {
		return nil, c.abort(ctx, err)
	}

	var publisher pubsub.Publisher

	if cfg.PubSub.Enabled() {
		natsPublisher, err := pubsub.NewNATSPublisher(ctx, pubsub.NATSPublisherConfig{
			URL:   cfg.PubSub.NATSURL,
			Topic: cfg.PubSub.Topic,
		})
		if err != nil {
			return nil, c.abort(ctx, err)
		}

		publisher = natsPublisher
		c.closers = append(c.closers, func(context.Context) error {
			return natsPublisher.Close()
		})

		slog.Info("NATS publisher initialized",
			"url", cfg.PubSub.NATSURL,
			"topic", cfg.PubSub.Topic,
		)
	}

	c.store = repository.NewRecordStore(c.db)

	loc := cfg.Schedule.Location
	manager := app.NewOccurrenceManager(domain.NewExpander(loc, nil), cfg.Schedule.HorizonDays, nil)

	c.schedules = app.NewScheduleUseCase(c.store, manager)
	c.occurrences = app.NewOccurrenceUseCase(c.store, loc, nil)
	c.owners = app.NewOwnerUseCase(c.store.Owners())
	c.dispatch = app.NewDispatchUseCase(
		c.store.Occurrences(),
		channels,
		publisher,
		dispatchMetrics,
		app.DispatchOptions{
			Lookahead:   cfg.Dispatch.Lookahead,
			Concurrency: cfg.Dispatch.Concurrency,
			BatchSize:   cfg.Dispatch.BatchSize,
			Location:    loc,
		},
		nil,
	)

	slog.Info("components initialized",
		"channels", len(channels),
		"horizon_days", cfg.Schedule.HorizonDays,
		"timezone", loc.String(),
	)

	return c, nil
}

func (c *components) abort(ctx context.Context, err error) error {
	return errors.Join(err, c.close(ctx))
}

func (c *components) close(ctx context.Context) error {
	var errs []error

	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
