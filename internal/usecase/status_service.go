package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hszk-dev/bank/internal/domain/model"
	"github.com/hszk-dev/bank/internal/infrastructure/metrics"
	"github.com/hszk-dev/bank/pkg/statusreport"
)

var (
	// ErrUnmappedState is returned when the reported state has no configured color.
	ErrUnmappedState = errors.New("bank state has no color mapping")
)

// BankReport is the status document emitted by the bank.
type BankReport = statusreport.Report[model.BankState]

// StatusService defines the interface for reporting bank status.
type StatusService interface {
	// GetStatus returns the current status report.
	// Each call returns an independent copy that the caller may modify.
	GetStatus(ctx context.Context) (BankReport, error)
}

// StatusServiceConfig holds configuration for StatusService.
type StatusServiceConfig struct {
	// State is the state reported to callers.
	State model.BankState
	// Colors maps each bank state to the color dashboards render it with.
	Colors map[model.BankState]statusreport.Color
}

// DefaultStatusServiceConfig returns the default configuration.
func DefaultStatusServiceConfig() StatusServiceConfig {
	return StatusServiceConfig{
		State: model.BankOpen,
		Colors: map[model.BankState]statusreport.Color{
			model.BankOpen: statusreport.ColorSuccess,
		},
	}
}

type statusService struct {
	report BankReport
}

// NewStatusService validates cfg and builds the report it will serve.
func NewStatusService(cfg StatusServiceConfig) (StatusService, error) {
	if !cfg.State.IsValid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidBankState, cfg.State)
	}

	for state, color := range cfg.Colors {
		if !color.IsValid() {
			return nil, fmt.Errorf("color for %s: %w: %q", state, statusreport.ErrInvalidColor, color)
		}
	}

	color, ok := cfg.Colors[cfg.State]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnmappedState, cfg.State)
	}

	report := statusreport.New(cfg.State, color)
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("invalid status report: %w", err)
	}

	return &statusService{report: report}, nil
}

func (s *statusService) GetStatus(ctx context.Context) (BankReport, error) {
	metrics.StatusReportsTotal.WithLabelValues(
		s.report.Status.Name.String(),
		s.report.Status.Color.String(),
	).Inc()

	return s.report.Clone(), nil
}
