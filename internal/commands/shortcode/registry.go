package shortcodecmd

import (
	"errors"

	"github.com/goliatone/go-shortcodes/internal/commands"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterShortcodeCommands.
type HandlerSet struct {
	Expand *ExpandContentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	expandHandlerOpts []commands.HandlerOption[ExpandContentCommand]
}

// WithExpandHandlerOptions forwards options to the ExpandContentHandler constructor.
func WithExpandHandlerOptions(opts ...commands.HandlerOption[ExpandContentCommand]) Option {
	return func(cfg *options) {
		cfg.expandHandlerOpts = append(cfg.expandHandlerOpts, opts...)
	}
}

// RegisterShortcodeCommands builds the shortcode command handlers and, when
// reg is non-nil, registers them.
func RegisterShortcodeCommands(reg CommandRegistry, expander interfaces.ShortcodeExpander, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if expander == nil {
		return nil, errors.New("shortcode command registration: expander is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "shortcodes")
	expandHandler := NewExpandContentHandler(expander, logger, cfg.expandHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(expandHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Expand: expandHandler}, nil
}
