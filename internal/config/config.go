package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/chatroom/internal/app"
	"github.com/atomicstack/chatroom/internal/source"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTickRate = "CHATROOM_TICK_RATE"
	envWidth    = "CHATROOM_WIDTH"
	envHeight   = "CHATROOM_HEIGHT"
	envTrace    = "CHATROOM_TRACE"
	envLogFile  = "CHATROOM_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("chatroom", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	tickRate := fs.Duration("tick-rate", envOrDuration(env, envTickRate, source.DefaultTickRate), "interval between idle redraw ticks")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "fixed screen width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "fixed screen height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *tickRate <= 0 {
		return Config{}, fmt.Errorf("tick-rate must be > 0 (got %s)", *tickRate)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			TickRate: *tickRate,
			Width:    *width,
			Height:   *height,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tickRate": tickRate.String(),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive (got %s)", cfg.App.TickRate)
	}
	return nil
}
