// Package lookupstate keeps the viewer's current lookup result in their session.
package lookupstate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/storage/redis/v3"

	"wordlookup/internal/models"
)

// sessionKey holds the JSON-encoded result. One key for the whole group so a
// save can never leave word and definitions out of step.
const sessionKey = "lookup_result"

// ErrNoSession is returned when the session middleware did not run.
var ErrNoSession = errors.New("no session in request context")

// Options configures the session middleware.
type Options struct {
	RedisURL     string // empty keeps sessions in memory
	CookieSecure bool
}

// NewMiddleware returns the session middleware and its store. Sessions live in
// Redis when a URL is configured, otherwise in process memory.
func NewMiddleware(opts Options) (fiber.Handler, *session.Store) {
	cfg := session.Config{
		CookieSecure:   opts.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if opts.RedisURL != "" {
		cfg.Storage = redis.New(redis.Config{URL: opts.RedisURL})
	}
	return session.NewWithStore(cfg)
}

// Load returns the result stored in the request's session, or nil if no
// lookup has succeeded in this session yet.
func Load(c fiber.Ctx) (*models.LookupResult, error) {
	sess := session.FromContext(c)
	if sess == nil {
		return nil, ErrNoSession
	}

	raw, ok := sess.Get(sessionKey).(string)
	if !ok || raw == "" {
		return nil, nil
	}

	var result models.LookupResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("decode session lookup: %w", err)
	}
	return &result, nil
}

// Save replaces the stored result with result as one value.
func Save(c fiber.Ctx, result *models.LookupResult) error {
	if result == nil {
		return nil
	}

	sess := session.FromContext(c)
	if sess == nil {
		return ErrNoSession
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode session lookup: %w", err)
	}
	sess.Set(sessionKey, string(data))
	return nil
}
