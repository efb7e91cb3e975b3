package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	PricePerPage    int           `env:"PRICE_PER_PAGE" envDefault:"2"`
	PaymentDelay    time.Duration `env:"PAYMENT_DELAY" envDefault:"1500ms"`
	PaymentWorkers  int           `env:"PAYMENT_WORKERS" envDefault:"2"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES" envDefault:"33554432"`
	SeedDemoData    bool          `env:"SEED_DEMO_DATA" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

const (
	defaultRunAddress      = ":8080"
	defaultPricePerPage    = 2
	defaultPaymentDelay    = 1500 * time.Millisecond
	defaultPaymentWorkers  = 2
	defaultMaxUploadBytes  = 32 << 20
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from environment variables and flags. Flags win.
func Load() (*Config, error) {
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("printdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		paymentDelayStr    = cfg.PaymentDelay.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, empty keeps state in memory")
	fs.IntVar(&cfg.PricePerPage, "price", cfg.PricePerPage, "Price per page per copy")
	fs.StringVar(&paymentDelayStr, "payment-delay", paymentDelayStr, "Simulated payment processing time")
	fs.IntVar(&cfg.PaymentWorkers, "payment-workers", cfg.PaymentWorkers, "Number of concurrent payment workers")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Request body cap and multipart memory limit in bytes")
	fs.BoolVar(&cfg.SeedDemoData, "seed", cfg.SeedDemoData, "Seed demo shops and the sample intake record")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PaymentDelay, err = time.ParseDuration(paymentDelayStr); err != nil {
		return nil, fmt.Errorf("invalid payment delay: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}

	if cfg.PricePerPage <= 0 {
		cfg.PricePerPage = defaultPricePerPage
	}

	if cfg.PaymentDelay < 0 {
		cfg.PaymentDelay = defaultPaymentDelay
	}

	if cfg.PaymentWorkers <= 0 {
		cfg.PaymentWorkers = defaultPaymentWorkers
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

// UsesMemory reports whether state is kept in process memory.
func (c *Config) UsesMemory() bool {
	return c.DatabaseURI == ""
}
