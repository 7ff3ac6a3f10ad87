package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode     bool          `env:"TEST_MODE"`
	Port           uint16        `env:"PORT" envDefault:"9090"`
	Secret         string        `env:"SECRET,required"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"12"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"24h"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL,required"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY,required,unset"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER" envDefault:"no-reply@studiobooking.app"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"PasswordReset"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	SentryDsn string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return config, nil
}
