package commands

import (
	"strings"

	"github.com/goliatone/go-shortcodes/internal/logging"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// CommandLogger returns the logger for the named command module, tagged with
// component and command_module fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.CommandsLogger(provider, name), map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
