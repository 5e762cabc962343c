package shortcodes

import "github.com/goliatone/go-shortcodes/internal/runtimeconfig"

var (
	ErrMaxIterationsInvalid    = runtimeconfig.ErrMaxIterationsInvalid
	ErrUnwrapNameInvalid       = runtimeconfig.ErrUnwrapNameInvalid
	ErrConcurrencyInvalid      = runtimeconfig.ErrConcurrencyInvalid
	ErrBuiltInsFeatureRequired = runtimeconfig.ErrBuiltInsFeatureRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	ShortcodeConfig = runtimeconfig.ShortcodeConfig
	BuiltInsConfig  = runtimeconfig.BuiltInsConfig
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
