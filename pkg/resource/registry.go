package resource

import "sync"

// Factory builds the collection registered under a type name. parent is the
// instance the collection hangs off.
type Factory func(parent Proxy, registry *Registry) CollectionResource

// Registry maps derived type names ("SmsMessages") to the factories of
// specialized collections. Names without a factory get a generic Collection,
// so the set of resource types stays open.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register installs factory under typeName, replacing any previous one.
func (r *Registry) Register(typeName string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[typeName] = factory
}

// Lookup returns the factory registered under typeName.
func (r *Registry) Lookup(typeName string) (Factory, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[typeName]

	return factory, ok
}

// Names returns the registered type names.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	return names
}

// New builds the collection for typeName under parent, falling back to a
// generic Collection when nothing is registered.
func (r *Registry) New(typeName string, parent Proxy) CollectionResource {
	if factory, ok := r.Lookup(typeName); ok {
		return factory(parent, r)
	}

	return NewCollection(typeName, parent, r)
}
