package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "fyyur/docs"
	"fyyur/internal/config"
	"fyyur/internal/database"
	"fyyur/internal/handlers"
	"fyyur/internal/repository"
	"fyyur/internal/routes"
	"fyyur/internal/services"
	"fyyur/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Fyyur API
// @version 1.0
// @description Read-only JSON view of the Fyyur venue and artist booking directory

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1
// @schemes http https

const version = "1.0.0"

func main() {
	// Load environment variables before reading configuration
	workDir, _ := os.Getwd()
	envFile, envErr := config.LoadEnvFiles(workDir)

	cfg := config.Load()
	log := setupLogger()

	if envErr != nil {
		log.Warnf("Could not load environment file: %v", envErr)
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	zone := cfg.BookingZone()
	clock := services.ZoneClock(zone)

	var images services.ImageStore
	if cfg.MinIOEnabled() {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Warnf("Image uploads disabled: %v", err)
		} else {
			images = minioService
		}
	}

	venueService := services.NewVenueService(repository.NewVenueRepository(db), images, clock, log)
	artistService := services.NewArtistService(repository.NewArtistRepository(db), images, clock, log)
	showService := services.NewShowService(repository.NewShowRepository(db), clock, log)

	sessions := session.New(session.Config{
		Expiration:     cfg.App.SessionExpiration,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	pages := handlers.NewPages(handlers.NewFlashStore(sessions, log))

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		Views:                 views.New(zone),
		ErrorHandler:          handlers.ErrorHandler(pages, log),
	})

	setupMiddleware(app, cfg)

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, routes.Handlers{
		Home:    handlers.NewHomeHandler(venueService, artistService, pages),
		Venues:  handlers.NewVenueHandler(venueService, pages, log),
		Artists: handlers.NewArtistHandler(artistService, pages, log),
		Shows:   handlers.NewShowHandler(showService, pages, zone, log),
		API:     handlers.NewAPIHandler(venueService, artistService, showService, log),
		Upload:  handlers.NewUploadHandler(images, log),
		Health:  handlers.NewHealthHandler(db, images != nil, version, log),
	})

	done := make(chan struct{})
	go waitForShutdown(app, log, done)

	log.WithFields(logrus.Fields{
		"port":    cfg.Server.Port,
		"zone":    zone.String(),
		"uploads": images != nil,
		"csrf":    cfg.App.CSRFEnabled,
	}).Infof("%s %s starting", cfg.App.Name, version)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Error("HTTP server stopped")
		return
	}
	<-done
}

// setupLogger logs JSON to stdout. LOG_LEVEL wins over the GO_ENV default.
func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	log.SetOutput(os.Stdout)

	level := logrus.InfoLevel
	switch os.Getenv("GO_ENV") {
	case "dev", "development":
		level = logrus.DebugLevel
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			log.Warnf("Ignoring LOG_LEVEL %q: %v", raw, err)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)

	return log
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	if cfg.App.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/api") || strings.HasPrefix(c.Path(), "/swagger")
			},
			Extractor:      csrfToken,
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			CookieHTTPOnly: true,
			Expiration:     time.Hour,
			ContextKey:     handlers.CSRFContextKey,
		}))
	}
}

// csrfToken reads the token from the form field the templates render, or
// from a header for script callers of DELETE routes.
func csrfToken(c *fiber.Ctx) (string, error) {
	if token := c.Get("X-CSRF-Token"); token != "" {
		return token, nil
	}
	return csrf.CsrfFromForm("csrf_token")(c)
}

// waitForShutdown blocks until SIGINT or SIGTERM, then drains in-flight
// requests so the deferred database close runs after the last query.
func waitForShutdown(app *fiber.App, log *logrus.Logger, done chan<- struct{}) {
	defer close(done)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.WithError(err).Error("Server shutdown failed")
		return
	}
	log.Info("Server stopped")
}
