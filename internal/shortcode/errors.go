package shortcode

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrDefinitionNotFound indicates a lookup for a name nothing was registered under.
	ErrDefinitionNotFound = errors.New("shortcode: definition not found")
	// ErrInvalidDefinition occurs when a definition fails validation.
	ErrInvalidDefinition = errors.New("shortcode: invalid definition")
	// ErrNonTerminating indicates expansion exceeded the pass limit, usually
	// because a handler re-emits its own trigger text.
	ErrNonTerminating = errors.New("shortcode: expansion did not terminate")
)

const (
	textCodeNotFound          = "SHORTCODE_NOT_FOUND"
	textCodeInvalidDefinition = "SHORTCODE_INVALID_DEFINITION"
	textCodeNonTerminating    = "SHORTCODE_NON_TERMINATING"
)

func notFoundError(name string) error {
	return goerrors.Wrap(ErrDefinitionNotFound, goerrors.CategoryNotFound, fmt.Sprintf("shortcode %q is not registered", name)).
		WithTextCode(textCodeNotFound)
}

func invalidDefinitionError(name string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %v", ErrInvalidDefinition, err), goerrors.CategoryValidation, fmt.Sprintf("shortcode %q definition rejected", name)).
		WithTextCode(textCodeInvalidDefinition)
}

func nonTerminatingError(passes int, last string) error {
	return goerrors.Wrap(ErrNonTerminating, goerrors.CategoryInternal, fmt.Sprintf("shortcode expansion exceeded %d passes", passes)).
		WithTextCode(textCodeNonTerminating).
		WithMetadata(map[string]any{
			"passes":    passes,
			"shortcode": last,
		})
}
