package shortcodecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const expandContentMessageType = "shortcodes.expand_content"

// ResultCallback receives the expanded text. It is invoked synchronously from
// the handler after a successful expansion.
type ResultCallback func(ExpandResult)

// ExpandResult carries the outcome of an ExpandContentCommand.
type ExpandResult struct {
	ContentID uuid.UUID
	Source    string
	Output    string
}

// ExpandContentCommand expands the shortcodes found in one exported post body.
type ExpandContentCommand struct {
	// ContentID correlates log entries with the post being migrated.
	ContentID uuid.UUID `json:"content_id,omitempty"`
	// Source names the exporting platform, e.g. "wordpress".
	Source string `json:"source,omitempty"`
	// Content is the raw HTML or Markdown fragment to expand.
	Content        string         `json:"content"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ExpandContentCommand) Type() string { return expandContentMessageType }

// Validate ensures the command carries something to expand and somewhere to
// deliver it.
func (cmd ExpandContentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Content, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("shortcodes.expand_content.content_required", "content is required")
			}
			return nil
		})),
		validation.Field(&cmd.ResultCallback, validation.By(func(value any) error {
			if cb, _ := value.(ResultCallback); cb == nil {
				return validation.NewError("shortcodes.expand_content.callback_required", "result callback is required")
			}
			return nil
		})),
		validation.Field(&cmd.Source, validation.Length(0, 64)),
	)
}
