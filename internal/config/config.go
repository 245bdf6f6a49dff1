package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/menuctl/internal/app"
)

// Config captures runtime configuration for the demo host.
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
	envItems         = "MENUCTL_ITEMS"
	envTips          = "MENUCTL_TIPS"
	envTipDuration   = "MENUCTL_TIP_DURATION"
	envCaseSensitive = "MENUCTL_CASE_SENSITIVE"
	envVerbose       = "MENUCTL_VERBOSE"
	envTrace         = "MENUCTL_TRACE"
	envLogFile       = "MENUCTL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menuctl", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	items := fs.String("items", envOrDefault(env, envItems, ""), "path to a YAML default-items list")
	tips := fs.Bool("tips", envOrBool(env, envTips, true), "show result tooltips after a selection")
	tipDuration := fs.Duration("tip-duration", envOrDuration(env, envTipDuration, 4*time.Second), "tooltip auto-dismissal delay (0 keeps tooltips up)")
	caseSensitive := fs.Bool("case-sensitive", envOrBool(env, envCaseSensitive, false), "compare item names case-sensitively")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print dispatch results to the footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *tipDuration < 0 {
		return Config{}, fmt.Errorf("tip-duration must be >= 0 (got %s)", *tipDuration)
	}

	cfg := Config{
		App: app.Config{
			ItemsPath:     *items,
			ShowTips:      *tips,
			TipDuration:   *tipDuration,
			CaseSensitive: *caseSensitive,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"items":         *items,
			"tips":          strconv.FormatBool(*tips),
			"tipDuration":   tipDuration.String(),
			"caseSensitive": strconv.FormatBool(*caseSensitive),
			"verbose":       strconv.FormatBool(*verbose),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
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
	if path := cfg.App.ItemsPath; path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("items file: %w", err)
		}
	}
	return nil
}
