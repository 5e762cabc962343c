package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

const (
	rootModule      = "shortcodes"
	expanderModule  = "shortcodes.expander"
	registryModule  = "shortcodes.registry"
	commandsModule  = "shortcodes.commands"
	fieldContentID  = "content_id"
	fieldSourceName = "source"
)

// ModuleLogger returns a module-scoped logger, falling back to a no-op logger
// when provider is nil or returns nothing. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ExpanderLogger returns the logger namespace used by the expansion driver.
func ExpanderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, expanderModule)
}

// RegistryLogger returns the logger namespace used while registering definitions.
func RegistryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, registryModule)
}

// CommandsLogger returns the logger namespace used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider, name string) interfaces.Logger {
	module := commandsModule
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		module += "." + trimmed
	}
	return ModuleLogger(provider, module)
}

// WithSourceContext tags logger with the content being migrated. Empty values are ignored.
func WithSourceContext(logger interfaces.Logger, contentID, source string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(contentID); trimmed != "" {
		fields[fieldContentID] = trimmed
	}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldSourceName] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
