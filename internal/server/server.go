package server

import (
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"

	"wordlookup/internal/config"
	"wordlookup/internal/lookupstate"
	staticfiles "wordlookup/static"
	"wordlookup/views"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	// Setup template engine
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	engine.Reload(cfg.IsDev())

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			} else {
				slog.Error("unhandled request error", "path", c.Path(), "error", err)
			}

			return c.Status(code).Render("error", fiber.Map{
				"Title":       "Error",
				"Message":     message,
				"SiteTitle":   cfg.SiteTitle,
				"SiteTagline": cfg.SiteTagline,
				"SiteFooter":  cfg.SiteFooter,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// CORS middleware
	corsOrigins := cfg.BaseURL
	if cfg.CORSOrigins != "" {
		corsOrigins = cfg.CORSOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(corsOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "HX-Request", "HX-Current-URL", "HX-Target"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Cookie encryption middleware
	encryptionKey := deriveEncryptionKey(cfg.SessionSecret)
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: encryptionKey,
	}))

	// Session middleware; the viewer's lookup result lives here
	sessionMiddleware, _ := lookupstate.NewMiddleware(lookupstate.Options{
		RedisURL:     cfg.RedisURL,
		CookieSecure: !cfg.IsDev(),
	})
	app.Use(sessionMiddleware)

	// Rate limiting per IP; every search spends upstream API quota
	if cfg.RateLimitPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitPerMinute,
			Expiration: 1 * time.Minute,
			Next: func(c fiber.Ctx) bool {
				return !isLookupPath(c.Path())
			},
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"status": "error",
					"error":  "Rate limit exceeded. Please try again later.",
				})
			},
		}))
	}

	// Static files, embedded like the templates
	app.Get("/static/*", static.New("", static.Config{FS: staticfiles.FS}))

	return &Server{
		App: app,
		Cfg: cfg,
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

// isLookupPath reports whether a request path triggers an upstream lookup.
func isLookupPath(path string) bool {
	return path == "/search" || strings.HasPrefix(path, "/api/v1/lookup/")
}

// deriveEncryptionKey derives a 32-byte encryption key from the session secret.
func deriveEncryptionKey(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(hash[:])
}
