package shortcode

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// ValidateDefinition checks that a definition can be matched and invoked.
func ValidateDefinition(def Definition) error {
	return validation.ValidateStruct(&def,
		validation.Field(&def.Name,
			validation.Required.Error("name is required"),
			validation.Match(namePattern).Error("name may only contain letters, digits, '_' and '-'"),
		),
		validation.Field(&def.Handler, validation.By(func(value any) error {
			if handler, _ := value.(Handler); handler == nil {
				return validation.NewError("shortcode.definition.handler_required", "handler is required")
			}
			return nil
		})),
		validation.Field(&def.Split),
	)
}

// Validate implements validation.Validatable.
func (s Split) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Marker,
			validation.Required.Error("split marker is required"),
			validation.By(func(value any) error {
				marker, _ := value.(string)
				if strings.ContainsAny(marker, "[]") || strings.TrimSpace(marker) != marker {
					return validation.NewError("shortcode.split.marker_invalid", "split marker must be a bare tag name")
				}
				return nil
			}),
		),
		validation.Field(&s.Part, validation.In(SplitBefore, SplitAfter).Error("split part must be 0 or 1")),
	)
}
