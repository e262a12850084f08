// Package config загружает конфигурацию сервера из окружения и .env файла.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrMissingJWTSecret секрет подписи токенов не задан
var ErrMissingJWTSecret = errors.New("BOOKSHELF_JWT_SECRET is required")

// Config конфигурация сервера
type Config struct {
	Address         string        `env:"ADDRESS"          envDefault:":8080"`
	StorageDriver   string        `env:"STORAGE_DRIVER"   envDefault:"sqlite"`
	DatabaseDSN     string        `env:"DATABASE_DSN"     envDefault:"bookshelf.db"`
	JWTSecret       string        `env:"JWT_SECRET"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"text"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"        envDefault:"2h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AuthRateLimit   float64       `env:"AUTH_RATE_LIMIT"  envDefault:"1"`
	AuthRateBurst   int           `env:"AUTH_RATE_BURST"  envDefault:"10"`
	// TrustProxyHeaders включать только за reverse proxy, перезаписывающим X-Forwarded-For
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// Load читает конфигурацию. Если envFile не пустой, переменные из него
// подгружаются без перезаписи уже заданных в окружении.
// Отсутствие .env по умолчанию не является ошибкой.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return Parse(nil)
}

// Parse разбирает конфигурацию из окружения (или из environment, если задан)
func Parse(environment map[string]string) (*Config, error) {
	opts := env.Options{Prefix: "BOOKSHELF_"}
	if environment != nil {
		opts.Environment = environment
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	switch c.StorageDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("BOOKSHELF_DATABASE_DSN is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.AuthRateLimit <= 0 || c.AuthRateBurst <= 0 {
		return errors.New("auth rate limit and burst must be positive")
	}
	return nil
}
