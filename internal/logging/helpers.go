package logging

import (
	"maps"

	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// WithFields returns logger carrying fields when it implements
// interfaces.FieldsLogger; other loggers are returned as is. Nil or empty
// fields skip allocation.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}
