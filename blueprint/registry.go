package blueprint

import (
	"sort"
	"strconv"

	"github.com/fabrikgo/fabrik/fab"
)

// Registry is a simple in-memory mapping from names to factories.
//
// Hosts register the factories a blueprint may reference, typically once
// at startup. The registry itself does no validation beyond name lookup;
// arity and type checks happen when the blueprint is built.
type Registry struct {
	items map[string]fab.Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]fab.Factory{}}
}

// Provide stores a factory under a name and returns the registry for
// chaining. Registering the same name twice overwrites the earlier entry.
func (r *Registry) Provide(name string, f fab.Factory) *Registry {
	r.items[name] = f
	return r
}

// Get returns the factory if present (no panic).
func (r *Registry) Get(name string) (fab.Factory, bool) {
	f, ok := r.items[name]
	return f, ok
}

// MustGet returns the factory or panics with a helpful message.
// Useful in examples/tests where missing registry names should fail fast.
func (r *Registry) MustGet(name string) fab.Factory {
	f, ok := r.items[name]
	if !ok {
		panic("blueprint: registry missing factory " + strconv.Quote(name))
	}
	return f
}

// Names returns the registered factory names, sorted, for introspection.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
