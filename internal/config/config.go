package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the Time Bandit API service.
type Config struct {
	Addr           string   `env:"ADDR,default=:8080"`
	DBDSN          string   `env:"DB_DSN,required"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000"`
	NATSURL        string   `env:"NATS_URL"`
	OTLPEndpoint   string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	CookieSecure   bool     `env:"COOKIE_SECURE,default=true"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
