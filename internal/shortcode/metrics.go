package shortcode

import (
	"time"

	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// NoOpMetrics returns a metrics recorder that drops every observation.
func NoOpMetrics() interfaces.ShortcodeMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveExpansion(string, time.Duration) {}

func (noopMetrics) ObservePasses(int) {}

func (noopMetrics) IncrementNonTerminating(string) {}
