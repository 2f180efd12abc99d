package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr        = ":4001"
	defaultDatabaseURL     = "consultdesk.db"
	defaultAdminToken      = "change-me-admin-token"
	defaultBusinessTZ      = "Africa/Lagos"
	defaultWindowDays      = "60"
	defaultSMTPPort        = "587"
	defaultNotifyWorkers   = "2"
	defaultNotifyQueueSize = "100"
	defaultNotifyRetries   = "3"
	defaultNotifyRetryBase = "2s"
	defaultRateLimit       = "20"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultMetricsEnabled  = "true"
	defaultShutdownTimeout = "10s"

	minProdAdminTokenLen = 16
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	Admin   AdminConfig
	Booking BookingConfig
	SMTP    SMTPConfig
	Notify  NotifyConfig
	Redis   RedisConfig
	Logging LoggingConfig

	RateLimitPerMinute int
	CORSOrigins        []string
	MetricsEnabled     bool
	ShutdownTimeout    time.Duration
}

type AdminConfig struct {
	Token        string
	PasswordHash string
}

type BookingConfig struct {
	Location   *time.Location
	WindowDays int
}

type SMTPConfig struct {
	Host         string
	Port         int
	User         string
	Pass         string
	From         string
	ContactEmail string
}

// Enabled reports whether mail can actually be delivered.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

type NotifyConfig struct {
	Workers    int
	QueueSize  int
	MaxRetries int
	RetryBase  time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", ""))
	if cfg.HTTPAddr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cfg.HTTPAddr = ":" + port
		} else {
			cfg.HTTPAddr = defaultHTTPAddr
		}
	}
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))

	cfg.Admin.Token = strings.TrimSpace(getEnv("ADMIN_TOKEN", defaultAdminToken))
	cfg.Admin.PasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	var err error
	tz := strings.TrimSpace(getEnv("BUSINESS_TZ", defaultBusinessTZ))
	cfg.Booking.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TZ value %q: %w", tz, err)
	}
	if cfg.Booking.WindowDays, err = parseIntEnv("BOOKING_WINDOW_DAYS", defaultWindowDays); err != nil {
		return nil, err
	}

	cfg.SMTP.Host = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if cfg.SMTP.Port, err = parseIntEnv("SMTP_PORT", defaultSMTPPort); err != nil {
		return nil, err
	}
	cfg.SMTP.User = strings.TrimSpace(os.Getenv("SMTP_USER"))
	cfg.SMTP.Pass = os.Getenv("SMTP_PASS")
	cfg.SMTP.ContactEmail = strings.TrimSpace(os.Getenv("CONTACT_EMAIL"))
	cfg.SMTP.From = strings.TrimSpace(getEnv("SMTP_FROM", firstNonEmpty(cfg.SMTP.ContactEmail, cfg.SMTP.User)))

	if cfg.Notify.Workers, err = parseIntEnv("NOTIFY_WORKERS", defaultNotifyWorkers); err != nil {
		return nil, err
	}
	if cfg.Notify.QueueSize, err = parseIntEnv("NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize); err != nil {
		return nil, err
	}
	if cfg.Notify.MaxRetries, err = parseIntEnv("NOTIFY_MAX_RETRIES", defaultNotifyRetries); err != nil {
		return nil, err
	}
	if cfg.Notify.RetryBase, err = parseDurationEnv("NOTIFY_RETRY_BASE", defaultNotifyRetryBase); err != nil {
		return nil, err
	}

	cfg.Redis.Address = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = parseIntEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	if cfg.RateLimitPerMinute, err = parseIntEnv("RATE_LIMIT_PER_MINUTE", defaultRateLimit); err != nil {
		return nil, err
	}
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	cfg.Logging.Level = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))
	cfg.Logging.Format = strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat))
	cfg.MetricsEnabled = parseBoolEnv("METRICS_ENABLED", defaultMetricsEnabled)

	if cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool { return isProdLike(c.AppEnv) }

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.Admin.Token == "" {
		return fmt.Errorf("ADMIN_TOKEN must not be empty")
	}
	if cfg.Booking.WindowDays < 1 || cfg.Booking.WindowDays > 365 {
		return fmt.Errorf("BOOKING_WINDOW_DAYS must be between 1 and 365")
	}
	if cfg.SMTP.Port <= 0 {
		return fmt.Errorf("SMTP_PORT must be > 0")
	}
	if cfg.Notify.Workers <= 0 {
		return fmt.Errorf("NOTIFY_WORKERS must be > 0")
	}
	if cfg.Notify.QueueSize <= 0 {
		return fmt.Errorf("NOTIFY_QUEUE_SIZE must be > 0")
	}
	if cfg.Notify.MaxRetries < 0 {
		return fmt.Errorf("NOTIFY_MAX_RETRIES must be >= 0")
	}
	if cfg.Notify.RetryBase <= 0 {
		return fmt.Errorf("NOTIFY_RETRY_BASE must be > 0")
	}
	if cfg.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.Admin.Token, defaultAdminToken) {
			return fmt.Errorf("in prod/release ADMIN_TOKEN must be set and not default")
		}
		if len(cfg.Admin.Token) < minProdAdminTokenLen {
			return fmt.Errorf("in prod/release ADMIN_TOKEN must be at least %d characters", minProdAdminTokenLen)
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
