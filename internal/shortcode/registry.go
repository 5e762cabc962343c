package shortcode

import (
	"context"
	"strings"
	"sync"
)

// Split part selectors.
const (
	SplitBefore = 0
	SplitAfter  = 1
)

// Handler expands one shortcode occurrence. content is nil for self-closing
// occurrences. Handlers must not touch the registry they are registered on.
type Handler func(attrs Attributes, content *string) string

// Split partitions occurrence content on the first [Marker] before the handler
// runs, keeping the segment selected by Part.
type Split struct {
	Marker string
	Part   int
}

// Apply returns the selected segment of content. Content without the marker
// is returned unchanged.
func (s Split) Apply(content string) string {
	before, after, found := strings.Cut(content, "["+s.Marker+"]")
	if !found {
		return content
	}
	if s.Part == SplitAfter {
		return after
	}
	return before
}

// Definition is a registered shortcode.
type Definition struct {
	Name    string
	Handler Handler
	Split   *Split
}

// Registry stores shortcode definitions in registration order. Names need not
// be unique; lookups resolve to the first definition registered under a name.
// Registration and reads are safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	definitions []Definition
	validate    func(Definition) error
}

// RegistryOption customises registry behaviour.
type RegistryOption func(*Registry)

// WithDefinitionValidator overrides the validation applied on registration.
// Passing nil disables validation.
func WithDefinitionValidator(fn func(Definition) error) RegistryOption {
	return func(r *Registry) {
		r.validate = fn
	}
}

// NewRegistry constructs an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		validate: ValidateDefinition,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register appends a definition without split configuration.
func (r *Registry) Register(name string, handler Handler) error {
	return r.add(Definition{Name: name, Handler: handler})
}

// RegisterWithSplit appends a definition whose content is split on [marker]
// before handler is invoked.
func (r *Registry) RegisterWithSplit(name, marker string, part int, handler Handler) error {
	return r.add(Definition{
		Name:    name,
		Handler: handler,
		Split:   &Split{Marker: marker, Part: part},
	})
}

// RegisterUnwrap appends a definition that drops the tag delimiters and keeps
// the content followed by a single space.
func (r *Registry) RegisterUnwrap(name string) error {
	return r.Register(name, unwrapHandler)
}

func unwrapHandler(_ Attributes, content *string) string {
	if content == nil {
		return " "
	}
	return *content + " "
}

func (r *Registry) add(def Definition) error {
	if r.validate != nil {
		if err := r.validate(def); err != nil {
			return invalidDefinitionError(def.Name, err)
		}
	}
	if def.Split != nil {
		split := *def.Split
		def.Split = &split
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions = append(r.definitions, def)
	return nil
}

// Lookup returns the first definition registered under name.
func (r *Registry) Lookup(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, def := range r.definitions {
		if def.Name == name {
			return def, nil
		}
	}
	return Definition{}, notFoundError(name)
}

// Definitions returns the definitions in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Definition(nil), r.definitions...)
}

// Names returns the registered names in registration order, duplicates included.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.definitions))
	for i, def := range r.definitions {
		names[i] = def.Name
	}
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}

// Parse expands input with a default Expander bound to this registry.
func (r *Registry) Parse(input string) (string, error) {
	return NewExpander(r).Expand(context.Background(), input)
}
