package resource

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/fivetwenty-io/twilio-client/pkg/naming"
)

// Instance is a single addressable resource. It starts unloaded, knowing
// only its identifier, and moves to loaded exactly once: either through
// Seed or through the first read of an absent attribute. There is no way
// back; nothing is ever re-fetched automatically. Entries wrapped from a
// list page are primed with the listed attributes but stay unloaded, so
// reading a field the list omitted still fetches the full representation.
//
// Concurrent readers of an unloaded instance share one load.
type Instance struct {
	name     string
	id       string
	idField  string
	proxy    Proxy
	registry *Registry

	mu         sync.Mutex
	loaded     bool
	attributes Representation
	children   map[string]CollectionResource
}

func newInstance(name, id, idField string, parent Proxy, registry *Registry) *Instance {
	return &Instance{
		name:       name,
		id:         id,
		idField:    idField,
		proxy:      parent,
		registry:   registry,
		attributes: Representation{idField: id},
		children:   map[string]CollectionResource{},
	}
}

// Name returns the singular type name, e.g. "Call".
func (i *Instance) Name() string {
	return i.name
}

// ID returns the identifier. It never loads.
func (i *Instance) ID() string {
	return i.id
}

// Loaded reports whether the representation has been fetched or seeded.
func (i *Instance) Loaded() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.loaded
}

// Receive implements Proxy.Receive.
func (i *Instance) Receive(ctx context.Context, key string, params Params) (Representation, error) {
	return i.proxy.Receive(ctx, joinPath(i.segment(), key), params)
}

// Send implements Proxy.Send.
func (i *Instance) Send(ctx context.Context, key string, params Params) (Representation, error) {
	return i.proxy.Send(ctx, joinPath(i.segment(), key), params)
}

// Peek reads key without touching the network. It reports LookupNeedsLoad
// when the value is absent and the instance has not loaded yet.
func (i *Instance) Peek(key string) Lookup {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.lookupLocked(key)
}

// Get returns the attribute or discovered child stored under key, loading
// the instance first if key is absent and no load has happened. A key still
// absent after the load yields LookupMissing, not an error. A failed load
// returns the error with a LookupMissing result and leaves the instance
// unloaded.
func (i *Instance) Get(ctx context.Context, key string) (Lookup, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	lookup := i.lookupLocked(key)
	if lookup.State != LookupNeedsLoad {
		return lookup, nil
	}

	err := i.loadLocked(ctx)
	if err != nil {
		return Lookup{State: LookupMissing}, err
	}

	return i.lookupLocked(key), nil
}

// Subresource returns the child collection discovered under key, loading
// the instance if needed.
func (i *Instance) Subresource(ctx context.Context, key string) (CollectionResource, error) {
	err := i.Load(ctx)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	child, ok := i.children[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %q", ErrNoSuchSubresource, i.name, key)
	}

	return child, nil
}

// Subresources returns the children discovered on load, keyed by their
// snake_case name.
func (i *Instance) Subresources(ctx context.Context) (map[string]CollectionResource, error) {
	err := i.Load(ctx)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	children := make(map[string]CollectionResource, len(i.children))
	for key, child := range i.children {
		children[key] = child
	}

	return children, nil
}

// Attributes returns a copy of the representation, loading it if needed.
func (i *Instance) Attributes(ctx context.Context) (Representation, error) {
	err := i.Load(ctx)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	return i.attributes.clone(), nil
}

// Load fetches the representation unless the instance is already loaded.
func (i *Instance) Load(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.loaded {
		return nil
	}

	return i.loadLocked(ctx)
}

// Update sends params to the instance. The local representation is left as
// it was: callers who need the server's new state must fetch it through a
// fresh Instance.
func (i *Instance) Update(ctx context.Context, params Params) error {
	_, err := i.proxy.Send(ctx, i.segment(), params)
	if err != nil {
		return fmt.Errorf("updating %s %s: %w", i.name, i.id, err)
	}

	return nil
}

// Set sends a single attribute update. See Update.
func (i *Instance) Set(ctx context.Context, key, value string) error {
	return i.Update(ctx, NewParams(key, value))
}

// Seed installs rep as the loaded representation without a request, as
// done right after a create. Seeding an instance that is already loaded
// has no effect.
func (i *Instance) Seed(rep Representation) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.loaded {
		return
	}

	i.commitLocked(rep)
}

// prime merges rep into the attributes of an unloaded instance without
// marking it loaded. Subresources are not discovered until the real load.
func (i *Instance) prime(rep Representation) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.loaded {
		return
	}

	for key, value := range rep {
		i.attributes[key] = value
	}

	i.attributes[i.idField] = i.id
}

// segment is the id as it appears in a request path.
func (i *Instance) segment() string {
	return url.PathEscape(i.id)
}

func (i *Instance) lookupLocked(key string) Lookup {
	if child, ok := i.children[key]; ok {
		return found(child)
	}

	if value, ok := i.attributes[key]; ok {
		return found(value)
	}

	if !i.loaded {
		return Lookup{State: LookupNeedsLoad}
	}

	return Lookup{State: LookupMissing}
}

func (i *Instance) loadLocked(ctx context.Context) error {
	rep, err := i.proxy.Receive(ctx, i.segment(), nil)
	if err != nil {
		return fmt.Errorf("loading %s %s: %w", i.name, i.id, err)
	}

	i.commitLocked(rep)

	return nil
}

// commitLocked builds the children before assigning anything, so the
// instance is either untouched or fully loaded.
func (i *Instance) commitLocked(rep Representation) {
	children := make(map[string]CollectionResource)

	for key := range rep.SubresourceURIs() {
		children[key] = i.registry.New(naming.Camelize(key), i)
	}

	if rep == nil {
		rep = Representation{}
	}

	attributes := rep.clone()
	if _, ok := attributes[i.idField]; !ok {
		attributes[i.idField] = i.id
	}

	i.attributes = attributes
	i.children = children
	i.loaded = true
}
