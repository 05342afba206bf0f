package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	VST      VST
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"true"`
	APIKey        string `env:"HTTP_API_KEY"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	PaymentEventsTopic string   `env:"KAFKA_PAYMENT_EVENTS_TOPIC" envDefault:"vst-payment-events"`
}

type VST struct {
	TerminalID           string        `env:"VST_TERMINAL_ID"`
	FallbackCallbackURL  string        `env:"VST_FALLBACK_CALLBACK_URL"`
	ServicePaymentType   string        `env:"VST_SERVICE_PAYMENT_TYPE" envDefault:"cnap"`
	CallbackIPWL         []string      `env:"VST_CALLBACK_IP_WL" envDefault:""`
	CallbackCheckEnabled bool          `env:"VST_CALLBACK_CHECK_ENABLED" envDefault:"false"`
	CallbackPublicKey    string        `env:"VST_CALLBACK_PUBLIC_KEY" envDefault:""` // base64 of a PEM encoded key
	ExpireAfter          time.Duration `env:"VST_EXPIRE_AFTER" envDefault:"24h"`
	ExpireInterval       time.Duration `env:"VST_EXPIRE_INTERVAL" envDefault:"1h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
