package generator

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a fresh, unconfigured, unbound generator instance.
// Registries hold factories rather than instances because binding and
// configuration are one-way: each generation run wants its own generator
// to wire up.
type Factory func() Generator

// Registry maps names to generator factories. Registration is explicit;
// there is no scanning or implicit discovery. A Registry supports
// concurrent lookups across parallel generation runs; registration is
// expected to happen up front, before runs start.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register associates a name with a factory. Registering the same name
// again replaces the earlier factory; the last registration wins.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// New constructs a fresh generator for the given name.
func (r *Registry) New(name string) (Generator, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("generator: no generator registered under %q", name)
	}
	return factory(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
