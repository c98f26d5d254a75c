package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// AuthServiceConfig holds the configuration for the auth service.
type AuthServiceConfig struct {
	ServiceName string `env:"AUTH_SERVICE_NAME" envDefault:"auth-service"`
	Host        string `env:"AUTH_SERVICE_HOST" envDefault:"0.0.0.0"`
	GRPCPort    int    `env:"AUTH_SERVICE_GRPC_PORT" envDefault:"50051"`

	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"taskbridge"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ConsulAddr string `env:"CONSUL_ADDR"`

	AppVerifyEmailURL   string `env:"APP_VERIFY_EMAIL_URL"`
	AppPasswordResetURL string `env:"APP_PASSWORD_RESET_URL"`

	NotifierQueueSize int `env:"NOTIFIER_QUEUE_SIZE" envDefault:"64"`
	NotifierWorkers   int `env:"NOTIFIER_WORKERS" envDefault:"2"`

	Token TokenConfig
}

// TokenConfig holds token signing secrets and lifetimes. Access and refresh
// tokens are signed with distinct secrets.
type TokenConfig struct {
	Issuer                string        `env:"TOKEN_ISSUER" envDefault:"taskbridge"`
	AccessTokenSecret     string        `env:"ACCESS_TOKEN_SECRET"`
	AccessTokenExpiresIn  time.Duration `env:"ACCESS_TOKEN_EXPIRES_IN" envDefault:"15m"`
	RefreshTokenSecret    string        `env:"REFRESH_TOKEN_SECRET"`
	RefreshTokenExpiresIn time.Duration `env:"REFRESH_TOKEN_EXPIRES_IN" envDefault:"168h"`
	TwoFactorExpiresIn    time.Duration `env:"TWO_FACTOR_EXPIRES_IN" envDefault:"5m"`
}

// NewAuthServiceConfig parses the auth service configuration from environment
// variables.
func NewAuthServiceConfig(logger *zerolog.Logger) *AuthServiceConfig {
	cfg, err := env.ParseAs[AuthServiceConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate auth service configuration")
	}

	return &cfg
}

// validate checks if the auth service configuration is valid.
func (c *AuthServiceConfig) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.Token.AccessTokenSecret == "" {
		return fmt.Errorf("missing ACCESS_TOKEN_SECRET environment variable")
	}
	if c.Token.RefreshTokenSecret == "" {
		return fmt.Errorf("missing REFRESH_TOKEN_SECRET environment variable")
	}
	if c.Token.AccessTokenSecret == c.Token.RefreshTokenSecret {
		return fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}
	if c.AppVerifyEmailURL == "" {
		return fmt.Errorf("missing APP_VERIFY_EMAIL_URL environment variable")
	}
	if c.AppPasswordResetURL == "" {
		return fmt.Errorf("missing APP_PASSWORD_RESET_URL environment variable")
	}

	return nil
}
