package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// APIGatewayConfig holds the configuration for the API gateway.
type APIGatewayConfig struct {
	ServiceName string `env:"API_GATEWAY_NAME" envDefault:"api-gateway"`
	Host        string `env:"API_GATEWAY_HOST" envDefault:"0.0.0.0"`
	HTTPPort    int    `env:"API_GATEWAY_HTTP_PORT" envDefault:"8080"`

	ConsulAddr      string `env:"CONSUL_ADDR"`
	AuthServiceName string `env:"AUTH_SERVICE_NAME" envDefault:"auth-service"`
	AuthServiceAddr string `env:"AUTH_SERVICE_ADDR"`

	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// NewAPIGatewayConfig parses the API gateway configuration from environment
// variables.
func NewAPIGatewayConfig(logger *zerolog.Logger) *APIGatewayConfig {
	cfg, err := env.ParseAs[APIGatewayConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate api gateway configuration")
	}

	return &cfg
}

// validate checks if the API gateway configuration is valid. The auth service
// is reached either through Consul or a direct address.
func (c *APIGatewayConfig) validate() error {
	if c.ConsulAddr == "" && c.AuthServiceAddr == "" {
		return fmt.Errorf("either CONSUL_ADDR or AUTH_SERVICE_ADDR must be set")
	}

	return nil
}
