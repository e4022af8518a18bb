package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Pinger checks a backing store. *db.DB satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter reports upstream reachability. *jobs.UpstreamChecker satisfies it.
type HealthReporter interface {
	Healthy() bool
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db        Pinger
	upstream  HealthReporter
	hasAPIKey bool
}

// NewProbeHandler creates a new probe handler. database and upstream may be nil.
func NewProbeHandler(database Pinger, upstream HealthReporter, hasAPIKey bool) *ProbeHandler {
	return &ProbeHandler{db: database, upstream: upstream, hasAPIKey: hasAPIKey}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the application can serve lookups.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if !h.hasAPIKey {
		return notReady(c, "dictionary API key not configured")
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return notReady(c, "database unavailable")
		}
	}

	if h.upstream != nil && !h.upstream.Healthy() {
		return notReady(c, "dictionary upstream unreachable")
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

func notReady(c fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"status": "error",
		"error":  reason,
	})
}
