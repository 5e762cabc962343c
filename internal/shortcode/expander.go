package shortcode

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-shortcodes/internal/logging"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

// DefaultMaxIterations bounds the number of expansion passes per Expand call.
const DefaultMaxIterations = 10000

// Expander drives shortcode expansion to a fixpoint over a registry.
type Expander struct {
	registry      *Registry
	logger        interfaces.Logger
	metrics       interfaces.ShortcodeMetrics
	maxIterations int
}

// ExpanderOption customises expander behaviour.
type ExpanderOption func(*Expander)

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ExpanderOption {
	return func(e *Expander) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics wires the metrics recorder used for telemetry.
func WithMetrics(metrics interfaces.ShortcodeMetrics) ExpanderOption {
	return func(e *Expander) {
		if metrics != nil {
			e.metrics = metrics
		}
	}
}

// WithMaxIterations overrides the pass limit. Non-positive values restore the default.
func WithMaxIterations(limit int) ExpanderOption {
	return func(e *Expander) {
		if limit <= 0 {
			limit = DefaultMaxIterations
		}
		e.maxIterations = limit
	}
}

// NewExpander constructs an expander reading definitions from registry.
func NewExpander(registry *Registry, opts ...ExpanderOption) *Expander {
	e := &Expander{
		registry:      registry,
		logger:        logging.NoOp(),
		metrics:       NoOpMetrics(),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Registry exposes the registry the expander reads from.
func (e *Expander) Registry() *Registry {
	return e.registry
}

// Expand repeatedly resolves the next occurrence, runs its handler and splices
// the output over the matched span until no registered shortcode remains.
// Text that does not match a registered name is left untouched. The pass
// limit is raised to the number of opening brackets in input so large
// documents always fit. Expansion fails with ErrNonTerminating once the limit
// is exceeded.
func (e *Expander) Expand(ctx context.Context, input string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if e.registry == nil || e.registry.Len() == 0 {
		return input, nil
	}

	logger := logging.WithFields(e.baseLogger(ctx), map[string]any{
		"operation": "shortcode.expand",
	})

	names := e.registry.Names()
	limit := max(e.maxIterations, strings.Count(input, "["))
	doc := input
	passes := 0
	last := ""

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		occ, ok := Resolve(doc, names)
		if !ok {
			break
		}
		if passes >= limit {
			e.metrics.IncrementNonTerminating(occ.Name)
			logging.WithFields(logger, map[string]any{
				"passes":    passes,
				"shortcode": occ.Name,
				"previous":  last,
			}).Error("shortcode.expander.non_terminating")
			return "", nonTerminatingError(passes, occ.Name)
		}

		def, err := e.registry.Lookup(occ.Name)
		if err != nil {
			return "", err
		}

		start := time.Now()
		output := e.invoke(def, occ)
		elapsed := time.Since(start)
		e.metrics.ObserveExpansion(occ.Name, elapsed)

		logging.WithFields(logger, map[string]any{
			"shortcode":    occ.Name,
			"pass":         passes,
			"self_closing": occ.SelfClosing(),
			"start":        occ.Start,
			"end":          occ.End,
		}).Trace("shortcode.expander.pass")

		doc = doc[:occ.Start] + output + doc[occ.End:]
		last = occ.Name
		passes++
	}

	e.metrics.ObservePasses(passes)
	logging.WithFields(logger, map[string]any{
		"passes": passes,
	}).Debug("shortcode.expander.completed")
	return doc, nil
}

func (e *Expander) invoke(def Definition, occ Occurrence) string {
	attrs := ParseAttributes(occ.RawAttributes)

	content := occ.Content
	if def.Split != nil && content != nil {
		part := def.Split.Apply(*content)
		content = &part
	}
	return def.Handler(attrs, content)
}

func (e *Expander) baseLogger(ctx context.Context) interfaces.Logger {
	return logging.FromContext(ctx, e.logger)
}

var _ interfaces.ShortcodeExpander = (*Expander)(nil)
