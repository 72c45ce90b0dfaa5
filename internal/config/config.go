package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidPort      = errors.New("PORT must be a number between 1 and 65535")
	ErrInvalidLogLevel  = errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	ErrInvalidTimeout   = errors.New("REQUEST_TIMEOUT must be positive")
	ErrInvalidRedisTTL  = errors.New("REDIS_TTL must be positive when the cache is enabled")
	ErrInvalidRateLimit = errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
)

type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"development"`
	Port           string        `env:"PORT" envDefault:"3001"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DataFile       string        `env:"DATA_FILE"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	CacheEnabled   bool          `env:"CACHE_ENABLED" envDefault:"false"`

	Redis     RedisConfig     `envPrefix:"REDIS_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
}

type RedisConfig struct {
	Host     string        `env:"HOST" envDefault:"localhost"`
	Port     string        `env:"PORT" envDefault:"6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"5m"`
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

type RateLimitConfig struct {
	RPS   float64 `env:"RPS" envDefault:"10"`
	Burst int     `env:"BURST" envDefault:"20"`
}

// TelemetryConfig leaves export disabled when Endpoint is empty.
type TelemetryConfig struct {
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"skypath"`
}

func (t TelemetryConfig) Enabled() bool {
	return t.Endpoint != ""
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win over
// the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return parse(env.Options{})
}

// FromMap builds a Config from the given variables only, ignoring the
// process environment.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, ErrInvalidPort)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ErrInvalidLogLevel)
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	if c.CacheEnabled && c.Redis.TTL <= 0 {
		errs = append(errs, ErrInvalidRedisTTL)
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, ErrInvalidRateLimit)
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
