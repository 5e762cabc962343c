package di

import (
	"fmt"
	"strings"

	commandsshortcode "github.com/goliatone/go-shortcodes/internal/commands/shortcode"
	"github.com/goliatone/go-shortcodes/internal/jobs"
	"github.com/goliatone/go-shortcodes/internal/logging"
	"github.com/goliatone/go-shortcodes/internal/logging/gologger"
	"github.com/goliatone/go-shortcodes/internal/runtimeconfig"
	"github.com/goliatone/go-shortcodes/internal/shortcode"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// Container wires the shortcode registry, expander, loggers and command
// handlers described by a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider  interfaces.LoggerProvider
	metrics         interfaces.ShortcodeMetrics
	registry        *shortcode.Registry
	expander        *shortcode.Expander
	commandRegistry commandsshortcode.CommandRegistry
	commandHandlers *commandsshortcode.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithMetrics wires the expansion metrics recorder.
func WithMetrics(metrics interfaces.ShortcodeMetrics) Option {
	return func(c *Container) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// WithRegistry seeds the container with a caller-owned registry. Built-ins and
// configured unwrap names are appended to it.
func WithRegistry(registry *shortcode.Registry) Option {
	return func(c *Container) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithCommandRegistry registers command handlers on reg when the commands
// feature is enabled.
func WithCommandRegistry(reg commandsshortcode.CommandRegistry) Option {
	return func(c *Container) {
		c.commandRegistry = reg
	}
}

// NewContainer validates cfg and builds the runtime graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureRegistry(); err != nil {
		return nil, err
	}
	c.configureExpander()
	if err := c.configureCommands(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch c.Config.Logging.NormalizedProvider() {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger provider: %w", err)
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureRegistry() error {
	if c.registry == nil {
		c.registry = shortcode.NewRegistry()
	}
	logger := logging.RegistryLogger(c.loggerProvider)

	if c.Config.Shortcodes.BuiltIns.Enabled {
		if err := shortcode.RegisterBuiltIns(c.registry, c.Config.Shortcodes.BuiltIns.Names); err != nil {
			return err
		}
	}
	for _, name := range c.Config.Shortcodes.Unwrap {
		if err := c.registry.RegisterUnwrap(strings.TrimSpace(name)); err != nil {
			return err
		}
	}

	logging.WithFields(logger, map[string]any{
		"definitions": c.registry.Len(),
		"built_ins":   c.Config.Shortcodes.BuiltIns.Enabled,
		"unwrap":      len(c.Config.Shortcodes.Unwrap),
	}).Debug("shortcodes.registry.configured")
	return nil
}

func (c *Container) configureExpander() {
	opts := []shortcode.ExpanderOption{
		shortcode.WithLogger(logging.ExpanderLogger(c.loggerProvider)),
		shortcode.WithMaxIterations(c.Config.Shortcodes.MaxIterations),
	}
	if c.metrics != nil {
		opts = append(opts, shortcode.WithMetrics(c.metrics))
	}
	c.expander = shortcode.NewExpander(c.registry, opts...)
}

func (c *Container) configureCommands() error {
	if !c.Config.Features.Commands {
		return nil
	}
	set, err := commandsshortcode.RegisterShortcodeCommands(c.commandRegistry, c.expander, c.loggerProvider)
	if err != nil {
		return fmt.Errorf("di: register shortcode commands: %w", err)
	}
	c.commandHandlers = set
	return nil
}

// NewBatchWorker returns a worker expanding document batches with the
// container's expander and configured concurrency.
func (c *Container) NewBatchWorker(opts ...jobs.Option) *jobs.Worker {
	base := []jobs.Option{
		jobs.WithLogger(logging.ModuleLogger(c.loggerProvider, "shortcodes.jobs")),
		jobs.WithConcurrency(c.Config.Shortcodes.Concurrency),
	}
	return jobs.NewWorker(c.expander, append(base, opts...)...)
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Registry returns the shortcode registry.
func (c *Container) Registry() *shortcode.Registry {
	return c.registry
}

// Expander returns the expansion driver bound to the registry.
func (c *Container) Expander() *shortcode.Expander {
	return c.expander
}

// CommandHandlers returns the shortcode command handlers, nil when the
// commands feature is disabled.
func (c *Container) CommandHandlers() *commandsshortcode.HandlerSet {
	return c.commandHandlers
}
