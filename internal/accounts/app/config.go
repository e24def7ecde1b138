package app

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	DatabaseFile string `env:"ACCOUNTS_DATABASE_FILE, default=accounts.db"`
	PepperFile   string `env:"ACCOUNTS_PEPPER_FILE, default=pepper"`

	Env       string `env:"ENV, default=dev"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogFormat string `env:"LOG_FORMAT, default=json"`

	Port                int           `env:"PORT, default=8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD, default=10s"`

	// SMTPAddr is the host:port of the outbound mail relay. Left empty,
	// mail is logged instead of sent.
	SMTPAddr string `env:"ACCOUNTS_SMTP_ADDR"`
	SMTPFrom string `env:"ACCOUNTS_SMTP_FROM, default=accounts@localhost"`

	// Bootstrap credentials seed the first manager when the store is
	// empty. Both must be set for seeding to happen.
	BootstrapEmail string `env:"ACCOUNTS_BOOTSTRAP_EMAIL"`
	BootstrapPIN   string `env:"ACCOUNTS_BOOTSTRAP_PIN"`
}

func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
