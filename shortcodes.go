package shortcodes

import (
	"context"

	commandsshortcode "github.com/goliatone/go-shortcodes/internal/commands/shortcode"
	"github.com/goliatone/go-shortcodes/internal/di"
	"github.com/goliatone/go-shortcodes/internal/jobs"
	"github.com/goliatone/go-shortcodes/internal/shortcode"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// Engine types.
type (
	Registry       = shortcode.Registry
	RegistryOption = shortcode.RegistryOption
	Expander       = shortcode.Expander
	ExpanderOption = shortcode.ExpanderOption
	Definition     = shortcode.Definition
	Handler        = shortcode.Handler
	Split          = shortcode.Split
	Attributes     = shortcode.Attributes
	Attribute      = shortcode.Attribute
	Value          = shortcode.Value
	ValueKind      = shortcode.ValueKind
	Occurrence     = shortcode.Occurrence
)

// Command types.
type (
	ExpandContentCommand = commandsshortcode.ExpandContentCommand
	ExpandResult         = commandsshortcode.ExpandResult
	CommandHandlers      = commandsshortcode.HandlerSet
	CommandRegistry      = commandsshortcode.CommandRegistry
)

// Batch types.
type (
	Document    = jobs.Document
	BatchResult = jobs.Result
)

const (
	SplitBefore          = shortcode.SplitBefore
	SplitAfter           = shortcode.SplitAfter
	DefaultMaxIterations = shortcode.DefaultMaxIterations

	KindString = shortcode.KindString
	KindBool   = shortcode.KindBool
	KindInt    = shortcode.KindInt
	KindFloat  = shortcode.KindFloat
)

var (
	ErrDefinitionNotFound = shortcode.ErrDefinitionNotFound
	ErrInvalidDefinition  = shortcode.ErrInvalidDefinition
	ErrNonTerminating     = shortcode.ErrNonTerminating
)

// NewRegistry constructs an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	return shortcode.NewRegistry(opts...)
}

// NewExpander constructs an expander over registry.
func NewExpander(registry *Registry, opts ...ExpanderOption) *Expander {
	return shortcode.NewExpander(registry, opts...)
}

func WithLogger(logger interfaces.Logger) ExpanderOption { return shortcode.WithLogger(logger) }

func WithMetrics(metrics interfaces.ShortcodeMetrics) ExpanderOption {
	return shortcode.WithMetrics(metrics)
}

func WithMaxIterations(limit int) ExpanderOption { return shortcode.WithMaxIterations(limit) }

// ParseAttributes tokenizes a raw shortcode attribute list.
func ParseAttributes(raw string) Attributes { return shortcode.ParseAttributes(raw) }

// Cast converts a textual value into its typed form.
func Cast(raw string) Value { return shortcode.Cast(raw) }

// RegisterBuiltIns registers the shipped WordPress handlers on registry.
func RegisterBuiltIns(registry *Registry, names ...string) error {
	return shortcode.RegisterBuiltIns(registry, names)
}

// Module is the configured shortcode runtime.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Registry returns the module registry. Definitions registered on it are
// visible to subsequent Expand calls.
func (m *Module) Registry() *Registry {
	return m.container.Registry()
}

// Expander returns the configured expansion driver.
func (m *Module) Expander() interfaces.ShortcodeExpander {
	return m.container.Expander()
}

// Expand rewrites every registered shortcode in input.
func (m *Module) Expand(ctx context.Context, input string) (string, error) {
	return m.container.Expander().Expand(ctx, input)
}

// Parse is Expand with a background context.
func (m *Module) Parse(input string) (string, error) {
	return m.Expand(context.Background(), input)
}

// ExpandBatch expands docs concurrently. Per-document failures are reported on
// the matching BatchResult.
func (m *Module) ExpandBatch(ctx context.Context, docs []Document) ([]BatchResult, error) {
	return m.container.NewBatchWorker().Process(ctx, docs)
}

// Commands returns the command handlers, nil unless the commands feature is enabled.
func (m *Module) Commands() *CommandHandlers {
	return m.container.CommandHandlers()
}

// Option re-exports.
var (
	WithLoggerProvider  = di.WithLoggerProvider
	WithRegistry        = di.WithRegistry
	WithCommandRegistry = di.WithCommandRegistry
	WithModuleMetrics   = di.WithMetrics
)
