package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/hszk-dev/bank/internal/domain/model"
	"github.com/hszk-dev/bank/pkg/statusreport"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout 10s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("expected log level info, got %v", cfg.Log.Level)
	}
	if cfg.Status.State != model.BankOpen {
		t.Errorf("expected state Open, got %s", cfg.Status.State)
	}
	if cfg.Status.OpenColor != statusreport.ColorSuccess {
		t.Errorf("expected open color Success, got %s", cfg.Status.OpenColor)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BANK_OPEN_COLOR", "Warning")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("expected log level debug, got %v", cfg.Log.Level)
	}
	if got := cfg.Status.Colors()[model.BankOpen]; got != statusreport.ColorWarning {
		t.Errorf("expected Open mapped to Warning, got %s", got)
	}
}

func TestLoad_InvalidColor(t *testing.T) {
	t.Setenv("BANK_OPEN_COLOR", "Purple")

	_, err := Load()
	var parseErr *envconfig.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *envconfig.ParseError", err)
	}
	if parseErr.FieldName != "OpenColor" {
		t.Errorf("expected parse error for OpenColor, got %s", parseErr.FieldName)
	}
}

func TestLoad_InvalidState(t *testing.T) {
	t.Setenv("BANK_STATE", "Closed")

	_, err := Load()
	if !errors.Is(err, model.ErrInvalidBankState) {
		t.Errorf("Load() error = %v, want ErrInvalidBankState", err)
	}
}
