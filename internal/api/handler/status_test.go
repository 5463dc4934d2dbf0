package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hszk-dev/bank/internal/domain/model"
	"github.com/hszk-dev/bank/internal/usecase"
	"github.com/hszk-dev/bank/pkg/statusreport"
)

// Mock StatusService

type mockStatusService struct {
	getStatusFn func(ctx context.Context) (usecase.BankReport, error)
}

func (m *mockStatusService) GetStatus(ctx context.Context) (usecase.BankReport, error) {
	if m.getStatusFn != nil {
		return m.getStatusFn(ctx)
	}
	return statusreport.New(model.BankOpen, statusreport.ColorSuccess), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatusHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *mockStatusService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "open bank",
			setupMock:      func(m *mockStatusService) {},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"status":{"name":"Open","color":"Success"},"primary_metric":null,"metrics":null,"notices":[]}`,
		},
		{
			name: "configured color",
			setupMock: func(m *mockStatusService) {
				m.getStatusFn = func(ctx context.Context) (usecase.BankReport, error) {
					return statusreport.New(model.BankOpen, statusreport.ColorWarning), nil
				}
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"status":{"name":"Open","color":"Warning"},"primary_metric":null,"metrics":null,"notices":[]}`,
		},
		{
			name: "service error",
			setupMock: func(m *mockStatusService) {
				m.getStatusFn = func(ctx context.Context) (usecase.BankReport, error) {
					return usecase.BankReport{}, errors.New("boom")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"internal_error","message":"An unexpected error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockStatusService{}
			tt.setupMock(mock)

			h := NewStatusHandler(mock, discardLogger())

			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			rec := httptest.NewRecorder()

			h.Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}
			if body := strings.TrimSpace(rec.Body.String()); body != tt.wantBody {
				t.Errorf("unexpected body:\n got: %s\nwant: %s", body, tt.wantBody)
			}
		})
	}
}

func TestStatusHandler_Get_DecodesIntoReport(t *testing.T) {
	h := NewStatusHandler(&mockStatusService{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	var report usecase.BankReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if err := report.Validate(); err != nil {
		t.Errorf("decoded report is invalid: %v", err)
	}
	if report.Status.Name != model.BankOpen {
		t.Errorf("expected name Open, got %s", report.Status.Name)
	}
	if report.Status.Color != statusreport.ColorSuccess {
		t.Errorf("expected color Success, got %s", report.Status.Color)
	}
	if report.PrimaryMetric != nil || report.Metrics != nil {
		t.Errorf("expected no metrics, got %+v / %+v", report.PrimaryMetric, report.Metrics)
	}
	if report.Notices == nil || len(report.Notices) != 0 {
		t.Errorf("expected empty notices, got %#v", report.Notices)
	}
}
