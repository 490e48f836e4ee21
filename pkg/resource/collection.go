package resource

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

// CollectionResource is a list endpoint of the graph. Collection is the
// generic implementation; specialized collections embed it.
type CollectionResource interface {
	Proxy

	// Name returns the PascalCase type name.
	Name() string
	// Schema returns the wire mapping of the collection.
	Schema() Schema
	// Get returns the unloaded member with the given identifier. It never
	// touches the network.
	Get(id string) *Instance
	// Create posts params to the collection and returns the new member,
	// already loaded from the response.
	Create(ctx context.Context, params Params) (*Instance, error)
	// List fetches one page and returns its raw entries.
	List(ctx context.Context, params Params) ([]Representation, error)
	// Page fetches the given page number and size.
	Page(ctx context.Context, page, size int, params Params) (*Page, error)
	// Instances fetches one page and wraps each entry as an Instance primed
	// with the listed attributes. The instances stay unloaded.
	Instances(ctx context.Context, params Params) ([]*Instance, error)
}

// Collection is the generic CollectionResource. It holds no mutable state.
type Collection struct {
	schema   Schema
	proxy    Proxy
	registry *Registry
}

// NewCollection creates a collection named name under parent. The schema is
// derived from name and then adjusted by opts.
func NewCollection(name string, parent Proxy, registry *Registry, opts ...CollectionOption) *Collection {
	schema := DefaultSchema(name)
	for _, opt := range opts {
		opt(&schema)
	}

	return &Collection{
		schema:   schema,
		proxy:    parent,
		registry: registry,
	}
}

// Name implements CollectionResource.Name.
func (c *Collection) Name() string {
	return c.schema.Name
}

// Schema implements CollectionResource.Schema.
func (c *Collection) Schema() Schema {
	return c.schema
}

// Registry returns the registry members resolve their children through.
func (c *Collection) Registry() *Registry {
	return c.registry
}

// Receive implements Proxy.Receive.
func (c *Collection) Receive(ctx context.Context, key string, params Params) (Representation, error) {
	return c.proxy.Receive(ctx, joinPath(c.schema.PathName, key), params)
}

// Send implements Proxy.Send.
func (c *Collection) Send(ctx context.Context, key string, params Params) (Representation, error) {
	return c.proxy.Send(ctx, joinPath(c.schema.PathName, key), params)
}

// Get implements CollectionResource.Get.
func (c *Collection) Get(id string) *Instance {
	return newInstance(c.schema.InstanceName, id, c.schema.IDField, c, c.registry)
}

// Create implements CollectionResource.Create.
func (c *Collection) Create(ctx context.Context, params Params) (*Instance, error) {
	rep, err := c.proxy.Send(ctx, c.schema.PathName, params)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.schema.InstanceName, err)
	}

	id, ok := rep.Identifier(c.schema.IDField)
	if !ok {
		return nil, &MissingIdentifierError{Collection: c.schema.Name, Field: c.schema.IDField}
	}

	instance := c.Get(id)
	instance.Seed(rep)

	return instance, nil
}

// List implements CollectionResource.List.
func (c *Collection) List(ctx context.Context, params Params) ([]Representation, error) {
	page, err := c.proxy.Receive(ctx, c.schema.PathName, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.schema.Name, err)
	}

	entries, err := page.Entries(c.schema.ListField)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.schema.Name, err)
	}

	return entries, nil
}

// Page implements CollectionResource.Page. The page number and size are
// sent ahead of params; a Page or PageSize key in params is ignored.
func (c *Collection) Page(ctx context.Context, page, size int, params Params) (*Page, error) {
	query := NewParams(
		constants.PageParam, strconv.Itoa(page),
		constants.PageSizeParam, strconv.Itoa(size),
	).Merge(params)

	body, err := c.proxy.Receive(ctx, c.schema.PathName, query)
	if err != nil {
		return nil, fmt.Errorf("fetching %s page %d: %w", c.schema.Name, page, err)
	}

	items, err := body.Entries(c.schema.ListField)
	if err != nil {
		return nil, fmt.Errorf("fetching %s page %d: %w", c.schema.Name, page, err)
	}

	return &Page{
		Number: page,
		Size:   size,
		Items:  items,
		Fields: body,
	}, nil
}

// Instances implements CollectionResource.Instances.
func (c *Collection) Instances(ctx context.Context, params Params) ([]*Instance, error) {
	entries, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return c.wrap(entries)
}

func (c *Collection) wrap(entries []Representation) ([]*Instance, error) {
	instances := make([]*Instance, 0, len(entries))

	for _, entry := range entries {
		id, ok := entry.Identifier(c.schema.IDField)
		if !ok {
			return nil, &MissingIdentifierError{Collection: c.schema.Name, Field: c.schema.IDField}
		}

		instance := c.Get(id)
		instance.prime(entry)
		instances = append(instances, instance)
	}

	return instances, nil
}
