package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wordlookup/internal/handlers"
	"wordlookup/internal/handlers/api"
)

// Deps are the collaborators the routes need. Optional fields may be nil.
type Deps struct {
	Lookup   handlers.Lookuper
	Recorder handlers.OutcomeRecorder
	TopWords handlers.TopWordsSource // nil without a database
	DB       handlers.Pinger         // nil without a database
	Upstream handlers.HealthReporter // nil when the checker is disabled
	Gatherer prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize handlers
	dictionaryHandler := handlers.NewDictionaryHandler(deps.Lookup, deps.Recorder, deps.TopWords, s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.DB, deps.Upstream, s.Cfg.HasAPIKey())
	lookupAPI := api.NewLookupHandler(deps.Lookup, deps.Recorder, s.Cfg.MediaBaseURL)

	// Page
	s.App.Get("/", dictionaryHandler.Index)
	s.App.Get("/search", dictionaryHandler.Search)
	s.App.Post("/search", dictionaryHandler.Search)

	// JSON API
	s.App.Get("/api/v1/lookup/:word", lookupAPI.Lookup)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}
