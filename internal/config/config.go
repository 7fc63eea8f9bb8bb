package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`

	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":8080"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	RabbitmqURL                  string `env:"RABBITMQ_URL,required"`
	RabbitmqNotificationExchange string `env:"RABBITMQ_NOTIFICATION_EXCHANGE" envDefault:"billing.notifications"`
	RabbitmqNotificationQueue    string `env:"RABBITMQ_NOTIFICATION_QUEUE" envDefault:"billing.notification.created"`

	// DailyCronSpec is when the in-process runner fires the daily
	// billing run (cmd/cron). Standard 5-field cron syntax.
	DailyCronSpec string `env:"DAILY_CRON_SPEC" envDefault:"0 9 * * *"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	return cfg, nil
}
