package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Dispatch  DispatchConfig
	Schedule  ScheduleConfig
	SMTP      SMTPConfig
	FCM       FCMConfig
	PubSub    PubSubConfig
	Telemetry TelemetryConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type DispatchConfig struct {
	TickPeriod  time.Duration
	Lookahead   time.Duration
	Concurrency int
	BatchSize   int
	// AdminToken guards the manual dispatch route. Empty disables it.
	AdminToken string
}

type ScheduleConfig struct {
	HorizonDays int
	Location    *time.Location
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type FCMConfig struct {
	CredentialsFile string
	ProjectID       string
}

type PubSubConfig struct {
	NATSURL string
	Topic   string
}

const (
	ExporterNone       = "none"
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

type TelemetryConfig struct {
	ServiceName     string
	Environment     string
	TracesExporter  string
	MetricsExporter string
	OTLPEndpoint    string
	OTLPInsecure    bool
	MetricInterval  time.Duration
}

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	database, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	dispatch, err := loadDispatchConfig()
	if err != nil {
		return nil, err
	}

	schedule, err := loadScheduleConfig()
	if err != nil {
		return nil, err
	}

	telemetry, err := loadTelemetryConfig()
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: *database,
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Dispatch: *dispatch,
		Schedule: *schedule,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", "reminders@medrem.app"),
		},
		FCM: FCMConfig{
			CredentialsFile: os.Getenv("FCM_CREDENTIALS_FILE"),
			ProjectID:       os.Getenv("FCM_PROJECT_ID"),
		},
		PubSub: PubSubConfig{
			NATSURL: os.Getenv("NATS_URL"),
			Topic:   getEnv("PUBSUB_TOPIC", "reminder.dispatched"),
		},
		Telemetry: *telemetry,
	}, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	return &DatabaseConfig{
		DSN:             dsn,
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
		SlowThreshold:   slowThreshold,
	}, nil
}

func loadDispatchConfig() (*DispatchConfig, error) {
	tickPeriod, err := time.ParseDuration(getEnv("DISPATCH_TICK_PERIOD", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_TICK_PERIOD: %w", err)
	}

	if tickPeriod <= 0 {
		return nil, fmt.Errorf("invalid DISPATCH_TICK_PERIOD: must be positive")
	}

	lookahead, err := time.ParseDuration(getEnv("DISPATCH_LOOKAHEAD", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_LOOKAHEAD: %w", err)
	}

	if lookahead < 0 {
		return nil, fmt.Errorf("invalid DISPATCH_LOOKAHEAD: must not be negative")
	}

	concurrency, err := strconv.Atoi(getEnv("DISPATCH_CONCURRENCY", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_CONCURRENCY: %w", err)
	}

	if concurrency < 1 {
		return nil, fmt.Errorf("invalid DISPATCH_CONCURRENCY: must be at least 1")
	}

	batchSize, err := strconv.Atoi(getEnv("DISPATCH_BATCH_SIZE", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_BATCH_SIZE: %w", err)
	}

	return &DispatchConfig{
		TickPeriod:  tickPeriod,
		Lookahead:   lookahead,
		Concurrency: concurrency,
		BatchSize:   batchSize,
		AdminToken:  os.Getenv("DISPATCH_ADMIN_TOKEN"),
	}, nil
}

func loadTelemetryConfig() (*TelemetryConfig, error) {
	tracesExporter := getEnv("OTEL_TRACES_EXPORTER", ExporterNone)
	switch tracesExporter {
	case ExporterNone, ExporterStdout, ExporterOTLP:
	default:
		return nil, fmt.Errorf("invalid OTEL_TRACES_EXPORTER: %q", tracesExporter)
	}

	metricsExporter := getEnv("OTEL_METRICS_EXPORTER", ExporterPrometheus)
	switch metricsExporter {
	case ExporterNone, ExporterStdout, ExporterOTLP, ExporterPrometheus:
	default:
		return nil, fmt.Errorf("invalid OTEL_METRICS_EXPORTER: %q", metricsExporter)
	}

	insecure, err := strconv.ParseBool(getEnv("OTEL_EXPORTER_OTLP_INSECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTEL_EXPORTER_OTLP_INSECURE: %w", err)
	}

	interval, err := time.ParseDuration(getEnv("OTEL_METRIC_EXPORT_INTERVAL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTEL_METRIC_EXPORT_INTERVAL: %w", err)
	}

	if interval <= 0 {
		return nil, fmt.Errorf("invalid OTEL_METRIC_EXPORT_INTERVAL: must be positive")
	}

	return &TelemetryConfig{
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "medication-reminder"),
		Environment:     os.Getenv("DEPLOY_ENV"),
		TracesExporter:  tracesExporter,
		MetricsExporter: metricsExporter,
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTLPInsecure:    insecure,
		MetricInterval:  interval,
	}, nil
}

func loadScheduleConfig() (*ScheduleConfig, error) {
	horizonDays, err := strconv.Atoi(getEnv("SCHEDULE_HORIZON_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_HORIZON_DAYS: %w", err)
	}

	if horizonDays < 1 {
		return nil, fmt.Errorf("invalid SCHEDULE_HORIZON_DAYS: must be at least 1")
	}

	loc, err := time.LoadLocation(getEnv("SCHEDULE_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE: %w", err)
	}

	return &ScheduleConfig{
		HorizonDays: horizonDays,
		Location:    loc,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func (c *FCMConfig) Enabled() bool {
	return c.CredentialsFile != ""
}

func (c *PubSubConfig) Enabled() bool {
	return c.NATSURL != ""
}
