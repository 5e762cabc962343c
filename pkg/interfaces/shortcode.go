package interfaces

import (
	"context"
	"time"
)

// ShortcodeExpander rewrites bracket shortcodes in a text blob until no
// registered shortcode remains.
type ShortcodeExpander interface {
	Expand(ctx context.Context, input string) (string, error)
}

// ShortcodeMetrics receives expansion telemetry. Implementations must be safe
// for concurrent use when one expander is shared across goroutines.
type ShortcodeMetrics interface {
	// ObserveExpansion records how long a single handler invocation took.
	ObserveExpansion(shortcode string, duration time.Duration)
	// ObservePasses records the number of passes an Expand call needed.
	ObservePasses(passes int)
	// IncrementNonTerminating counts Expand calls aborted by the pass limit.
	IncrementNonTerminating(shortcode string)
}
