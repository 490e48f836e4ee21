package twilio

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/twilio-client/pkg/naming"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Accounts is the top-level collection of accounts and subaccounts.
type Accounts struct {
	*resource.Collection
}

func newAccounts(parent resource.Proxy, registry *resource.Registry) *Accounts {
	return &Accounts{
		Collection: resource.NewCollection("Accounts", parent, registry),
	}
}

// Account returns the unloaded account with the given SID.
func (a *Accounts) Account(sid string) *Account {
	return &Account{
		Instance: a.Get(sid),
		registry: a.Registry(),
	}
}

// Account is a single account. Its collections are discovered from the
// subresource_uris of its representation.
type Account struct {
	*resource.Instance

	registry *resource.Registry
}

// Calls returns the account's calls.
func (a *Account) Calls(ctx context.Context) (*Calls, error) {
	return subresource[*Calls](ctx, a.Instance, a.registry, TypeCalls)
}

// SmsMessages returns the account's SMS messages.
func (a *Account) SmsMessages(ctx context.Context) (*SmsMessages, error) {
	return subresource[*SmsMessages](ctx, a.Instance, a.registry, TypeSmsMessages)
}

// ShortCodes returns the account's short codes.
func (a *Account) ShortCodes(ctx context.Context) (*ShortCodes, error) {
	return subresource[*ShortCodes](ctx, a.Instance, a.registry, TypeShortCodes)
}

// Conferences returns the account's conferences.
func (a *Account) Conferences(ctx context.Context) (*Conferences, error) {
	return subresource[*Conferences](ctx, a.Instance, a.registry, TypeConferences)
}

// Collection returns any sub-resource of the account by wire key, for
// example "incoming_phone_numbers".
func (a *Account) Collection(ctx context.Context, key string) (resource.CollectionResource, error) {
	return a.Subresource(ctx, key)
}

// subresource returns the child of instance registered as typeName. The
// child declared by the server is preferred; when the representation does
// not declare it, the collection is built from the registry under the same
// parent so well-known endpoints stay reachable.
func subresource[T resource.CollectionResource](
	ctx context.Context,
	instance *resource.Instance,
	registry *resource.Registry,
	typeName string,
) (T, error) {
	var zero T

	child, err := instance.Subresource(ctx, naming.Decamelize(typeName))
	if errors.Is(err, resource.ErrNoSuchSubresource) {
		child = registry.New(typeName, instance)
	} else if err != nil {
		return zero, err
	}

	typed, ok := child.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrUnexpectedResource, typeName, child)
	}

	return typed, nil
}
