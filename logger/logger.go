// Package logger provides the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
	output io.Closer = nopCloser{}
)

// Config configures the logger.
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"` // json/console
	Output     string `json:"output"` // stdout/stderr/file
	FilePath   string `json:"file_path,omitempty"`
	TimeFormat string `json:"time_format,omitempty"`
}

// DefaultConfig returns console output at info level.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init configures the global logger. Only the first call has an effect.
func Init(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
		logger, output = New(cfg)
	})
}

// Close releases the log file opened by Init. The global logger is left
// writing to stderr.
func Close() error {
	err := output.Close()
	logger = logger.Output(os.Stderr)
	output = nopCloser{}
	return err
}

// New builds a logger from cfg without touching the global one. The
// closer releases the log file for Output "file" and is a no-op otherwise.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	switch cfg.Output {
	case "stderr":
		return newWithWriter(os.Stderr, cfg), nopCloser{}
	case "file":
		if cfg.FilePath != "" {
			if f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				return newWithWriter(f, cfg), f
			}
		}
	}
	return newWithWriter(os.Stdout, cfg), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newWithWriter(output io.Writer, cfg Config) zerolog.Logger {
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}
	return zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger, initializing it with DefaultConfig if
// Init was never called.
func Get() *zerolog.Logger {
	Init(DefaultConfig())
	return &logger
}

// WithContext returns the global logger tagged with the chi request id
// carried by ctx, if any.
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Get().With().Logger()
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		l = l.With().Str("request_id", reqID).Logger()
	}
	return &l
}

// Component returns a child logger for one part of the service.
func Component(name string) *zerolog.Logger {
	l := Get().With().Str("component", name).Logger()
	return &l
}
