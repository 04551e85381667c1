// Package main is the entry point for the bookstore API server.
// It wires together configuration, the in-memory stores, the session
// manager, and the HTTP router.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aoideee/bookstore-api/internal/data"
	"github.com/aoideee/bookstore-api/internal/session"

	"github.com/joho/godotenv"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup.
// Flags take precedence; defaults fall back to the environment (optionally
// loaded from a .env file).
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 3001)
	environment string // Runtime environment: development, staging, or production
	jwt         struct {
		secret string        // HMAC secret used to sign session tokens
		ttl    time.Duration // Validity window of each session token
	}
	limiter struct {
		rps     float64 // Sustained requests per second per client IP
		burst   int     // Burst capacity per client IP
		enabled bool    // Disable to turn the limiter off (useful in tests)
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers
// need. A pointer to this struct is passed as the receiver on all handler
// and route methods.
type applicationDependencies struct {
	config   serverConfig     // Server configuration loaded at startup
	logger   *slog.Logger     // Structured logger that writes to stdout
	store    data.Store       // In-memory catalog and user stores
	sessions *session.Manager // Login session issuance and verification
}

// main parses configuration, builds the shared dependencies, and starts
// the HTTP server.
func main() {
	// Pull in a .env file if one is present; real environment variables win.
	_ = godotenv.Load()

	var settings serverConfig

	flag.IntVar(&settings.port, "port", envInt("PORT", 3001), "Server port")
	flag.StringVar(&settings.environment, "env", envString("ENVIRONMENT", "development"), "Environment(development|staging|production)")
	flag.StringVar(&settings.jwt.secret, "jwt-secret", envString("JWT_SECRET", "access"), "Session token signing secret")
	flag.DurationVar(&settings.jwt.ttl, "jwt-ttl", time.Hour, "Session token lifetime")
	flag.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter requests per second per IP")
	flag.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter burst per IP")
	flag.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable per-IP rate limiting")

	flag.Parse()

	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Bundle all shared dependencies into a single struct. The stores are
	// owned here and passed by reference everywhere; no package globals.
	appInstance := &applicationDependencies{
		config:   settings,
		logger:   logger,
		store:    data.NewStore(),
		sessions: session.NewManager(settings.jwt.secret, settings.jwt.ttl),
	}

	logger.Info("catalog seeded", "books", len(appInstance.store.Books.All()), "version", appVersion)

	err := appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// envString returns the value of the named environment variable, or
// fallback when it is unset or empty.
func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt is envString for integer-valued variables. Unparsable values fall
// back silently; flags remain the authoritative override.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
