// Package logging provides the zerolog logger shared by the CLI and loaders.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Debug().Str("catalog", path).Msg("Loading catalog")
//
// Log output goes to stderr so it never mixes with command output on stdout.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, disabled.
	Level string

	// Format is console or json.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

//nolint:gochecknoglobals // Process-wide logger
var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // Logging works before Init is called
func init() {
	initLogger(Config{Level: "warn", Format: "console"})
}

// Init configures the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	output := cfg.Output
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) (l zerolog.Level) {
	switch strings.ToLower(level) {
	case "trace":
		l = zerolog.TraceLevel
	case "debug":
		l = zerolog.DebugLevel
	case "warn", "warning":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	case "disabled", "off":
		l = zerolog.Disabled
	default:
		l = zerolog.InfoLevel
	}
	return l
}

// ValidLevel reports whether level is a recognized level name.
func ValidLevel(level string) (ok bool) {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		ok = true
	}
	return ok
}

// Debug starts a debug level message.
func Debug() (e *zerolog.Event) {
	mu.RLock()
	defer mu.RUnlock()
	e = log.Debug()
	return e
}

// Info starts an info level message.
func Info() (e *zerolog.Event) {
	mu.RLock()
	defer mu.RUnlock()
	e = log.Info()
	return e
}

// Warn starts a warn level message.
func Warn() (e *zerolog.Event) {
	mu.RLock()
	defer mu.RUnlock()
	e = log.Warn()
	return e
}
