package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/hszk-dev/bank/internal/domain/model"
	"github.com/hszk-dev/bank/pkg/statusreport"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Status StatusConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

type LogConfig struct {
	Level slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

// StatusConfig controls what the status endpoint reports and how each bank
// state is colored.
type StatusConfig struct {
	State     model.BankState    `envconfig:"BANK_STATE" default:"Open"`
	OpenColor statusreport.Color `envconfig:"BANK_OPEN_COLOR" default:"Success"`
}

// Colors returns the state-to-color mapping.
func (c StatusConfig) Colors() map[model.BankState]statusreport.Color {
	return map[model.BankState]statusreport.Color{
		model.BankOpen: c.OpenColor,
	}
}

func (c StatusConfig) Validate() error {
	if _, err := model.ParseBankState(string(c.State)); err != nil {
		return err
	}
	if !c.OpenColor.IsValid() {
		return fmt.Errorf("%w: %q", statusreport.ErrInvalidColor, c.OpenColor)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Status.Validate(); err != nil {
		return nil, fmt.Errorf("invalid status config: %w", err)
	}
	return &cfg, nil
}
