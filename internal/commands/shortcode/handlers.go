package shortcodecmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-shortcodes/internal/commands"
	"github.com/goliatone/go-shortcodes/internal/logging"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

const expandOperation = "shortcodes.expand_content"

var _ command.Commander[ExpandContentCommand] = (*ExpandContentHandler)(nil)

// ExpandContentHandler runs the expansion engine through the shared command handler foundation.
type ExpandContentHandler struct {
	inner *commands.Handler[ExpandContentCommand]
}

// NewExpandContentHandler creates a handler bound to expander.
func NewExpandContentHandler(expander interfaces.ShortcodeExpander, logger interfaces.Logger, opts ...commands.HandlerOption[ExpandContentCommand]) *ExpandContentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ExpandContentCommand) error {
		if msg.ContentID != uuid.Nil || msg.Source != "" {
			fields := map[string]any{"source": msg.Source}
			if msg.ContentID != uuid.Nil {
				fields["content_id"] = msg.ContentID.String()
			}
			ctx = logging.ContextWithFields(ctx, fields)
		}

		output, err := expander.Expand(ctx, msg.Content)
		if err != nil {
			return err
		}

		contentID := ""
		if msg.ContentID != uuid.Nil {
			contentID = msg.ContentID.String()
		}
		logging.WithFields(logging.WithSourceContext(baseLogger, contentID, msg.Source), map[string]any{
			"input_bytes":  len(msg.Content),
			"output_bytes": len(output),
		}).Debug("shortcodes.command.expand_content.completed")

		msg.ResultCallback(ExpandResult{
			ContentID: msg.ContentID,
			Source:    msg.Source,
			Output:    output,
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExpandContentCommand]{
		commands.WithLogger[ExpandContentCommand](baseLogger),
		commands.WithOperation[ExpandContentCommand](expandOperation),
		commands.WithMessageFields(func(msg ExpandContentCommand) map[string]any {
			fields := map[string]any{}
			if msg.ContentID != uuid.Nil {
				fields["content_id"] = msg.ContentID
			}
			if msg.Source != "" {
				fields["source"] = msg.Source
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExpandContentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExpandContentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExpandContentCommand].
func (h *ExpandContentHandler) Execute(ctx context.Context, msg ExpandContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
