/*
main.go - HTTP server entry point

PURPOSE:
  Starts the work-time API: profiles, ledgers, reports and calendar
  queries over a SQLite database. Handles configuration, dependency
  injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env and WORKTIME_* environment variables
  2. Parse command-line flags (override the environment)
  3. Initialize logger and SQLite store
  4. Create API handler and router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: WORKTIME_PORT or 8080)
  -db         SQLite database path (default: WORKTIME_DB or worktime.db)
              Use ":memory:" for in-memory database
  -log-level  debug|info|warn|error (default: WORKTIME_LOG_LEVEL or info)
  -log-format console|json (default: WORKTIME_LOG_FORMAT or console)
  -log-file   Append logs to this file instead of stdout
  -regions    Default regions for calendar queries (default: WORKTIME_DEFAULT_REGIONS or de)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  ./server -db="./data/worktime.db"
  ./server -db=":memory:" -log-format=json
  WORKTIME_PORT=3000 ./server

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment variables
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/worktime/api"
	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/config"
	"github.com/warp/worktime/logger"
	"github.com/warp/worktime/store/sqlite"
)

func main() {
	cfg := config.Load()

	// Flags
	port := flag.String("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DatabasePath, "SQLite database path")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	logFormat := flag.String("log-format", cfg.LogFormat, "Log format (console|json)")
	regions := flag.String("regions", cfg.DefaultRegions, "Default calendar regions")
	logFile := flag.String("log-file", "", "Append logs to this file instead of stdout")
	flag.Parse()

	logCfg := logger.Config{
		Level:      *logLevel,
		Format:     *logFormat,
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
	if *logFile != "" {
		logCfg.Output, logCfg.FilePath = "file", *logFile
	}
	logger.Init(logCfg)
	defer logger.Close()
	log := logger.Component("server")

	defaultRegions := calendar.ParseRegions(*regions)
	if err := calendar.ValidateRegions(defaultRegions); err != nil {
		log.Fatal().Err(err).Msg("Invalid default regions")
	}

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("Failed to initialize database")
	}
	defer store.Close()

	// Initialize handler
	handler := api.NewHandler(store)
	handler.DefaultRegions = defaultRegions

	// Create router
	router := api.NewRouter(handler, cfg.CORSOrigins...)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("db", *dbPath).
			Strs("regions", defaultRegions).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server failed")
			quit <- syscall.SIGTERM
		}
	}()

	// Wait for interrupt signal
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
