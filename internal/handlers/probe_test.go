package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthFlag bool

func (h healthFlag) Healthy() bool { return bool(h) }

func TestReadiness(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		db         Pinger
		upstream   HealthReporter
		hasKey     bool
		wantStatus int
		wantBody   string
	}{
		{"all good", ok, healthFlag(true), true, http.StatusOK, `"status":"ok"`},
		{"no optional deps", nil, nil, true, http.StatusOK, `"status":"ok"`},
		{"missing key", nil, nil, false, http.StatusServiceUnavailable, "dictionary API key not configured"},
		{"database down", down, healthFlag(true), true, http.StatusServiceUnavailable, "database unavailable"},
		{"upstream down", ok, healthFlag(false), true, http.StatusServiceUnavailable, "dictionary upstream unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(tt.db, tt.upstream, tt.hasKey)
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			req, _ := http.NewRequest(http.MethodGet, "/readyz", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("GET /readyz failed: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("readyz status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("readyz body = %s, want it to contain %q", body, tt.wantBody)
			}

			// Liveness never depends on collaborators.
			req, _ = http.NewRequest(http.MethodGet, "/healthz", nil)
			resp, err = app.Test(req)
			if err != nil {
				t.Fatalf("GET /healthz failed: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("healthz status = %d, want 200", resp.StatusCode)
			}
		})
	}
}
