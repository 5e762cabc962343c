package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMaxIterationsInvalid rejects negative pass limits.
var ErrMaxIterationsInvalid = errors.New("shortcodes config: max iterations must be zero or positive")

// ErrConcurrencyInvalid rejects negative batch concurrency.
var ErrConcurrencyInvalid = errors.New("shortcodes config: batch concurrency must be zero or positive")

// ErrUnwrapNameInvalid rejects unwrap entries that cannot be matched as shortcode names.
var ErrUnwrapNameInvalid = errors.New("shortcodes config: unwrap shortcode name is invalid")

// ErrBuiltInsFeatureRequired rejects a built-in selection while built-ins are disabled.
var ErrBuiltInsFeatureRequired = errors.New("shortcodes config: built-ins must be enabled to select built-in names")
var ErrLoggingProviderRequired = errors.New("shortcodes config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("shortcodes config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("shortcodes config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("shortcodes config: logging format is invalid")

var shortcodeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// Config aggregates feature flags and options for the expansion module.
type Config struct {
	Shortcodes ShortcodeConfig
	Features   Features
	Logging    LoggingConfig
}

// ShortcodeConfig controls registry bootstrapping and the expansion driver.
type ShortcodeConfig struct {
	// MaxIterations caps expansion passes per document; zero selects the engine default.
	MaxIterations int
	// Concurrency bounds parallel expansion in batch jobs; zero selects GOMAXPROCS.
	Concurrency   int
	BuiltIns      BuiltInsConfig
	// Unwrap lists extra wrapper shortcodes whose delimiters are dropped.
	Unwrap []string
}

// BuiltInsConfig selects the shipped WordPress handlers.
type BuiltInsConfig struct {
	Enabled bool
	// Names restricts registration to the listed built-ins; empty registers all.
	Names []string
}

// Features toggles optional layers.
type Features struct {
	Logger   bool
	Commands bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the configuration used by the migration toolkit.
func DefaultConfig() Config {
	return Config{
		Shortcodes: ShortcodeConfig{
			MaxIterations: 0,
			BuiltIns: BuiltInsConfig{
				Enabled: true,
			},
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Shortcodes.MaxIterations < 0 {
		return fmt.Errorf("%w: %d", ErrMaxIterationsInvalid, cfg.Shortcodes.MaxIterations)
	}
	if cfg.Shortcodes.Concurrency < 0 {
		return fmt.Errorf("%w: %d", ErrConcurrencyInvalid, cfg.Shortcodes.Concurrency)
	}
	if !cfg.Shortcodes.BuiltIns.Enabled && len(cfg.Shortcodes.BuiltIns.Names) > 0 {
		return ErrBuiltInsFeatureRequired
	}
	for _, name := range cfg.Shortcodes.Unwrap {
		if !shortcodeNamePattern.MatchString(strings.TrimSpace(name)) {
			return fmt.Errorf("%w: %q", ErrUnwrapNameInvalid, name)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizedProvider returns the lower-cased logging provider name.
func (cfg LoggingConfig) NormalizedProvider() string {
	return normalizeProvider(cfg.Provider)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
