package twilio

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/twilio-client/pkg/naming"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Target is the node a path resolves to. Exactly one field is set.
type Target struct {
	Collection resource.CollectionResource
	Instance   *resource.Instance
}

// Resolve walks a slash separated path of alternating collection keys and
// identifiers, starting at the configured account. A leading "accounts"
// segment starts at the Accounts collection instead. Collection keys may be
// given in snake_case or PascalCase.
//
//	calls                      -> the account's Calls collection
//	calls/CA123                -> call CA123 (unloaded)
//	calls/CA123/notifications  -> the call's Notifications collection
//	accounts/AC456/sms_messages
//
// Every instance on the way is loaded to discover its children; the final
// node is returned without loading.
func (c *Client) Resolve(ctx context.Context, path string) (Target, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return Target{Instance: c.account.Instance}, nil
	}

	instance := c.account.Instance
	rest := segments

	if naming.Decamelize(segments[0]) == "accounts" {
		if len(segments) == 1 {
			return Target{Collection: c.accounts}, nil
		}

		instance = c.accounts.Get(segments[1])
		rest = segments[2:]
	}

	for len(rest) > 0 {
		key := naming.Decamelize(rest[0])

		child, err := instance.Subresource(ctx, key)
		if err != nil {
			return Target{}, fmt.Errorf("resolving %q: %w", path, err)
		}

		if len(rest) == 1 {
			return Target{Collection: child}, nil
		}

		instance = child.Get(rest[1])
		rest = rest[2:]
	}

	return Target{Instance: instance}, nil
}

// ResolveCollection resolves path and requires it to name a collection.
func (c *Client) ResolveCollection(ctx context.Context, path string) (resource.CollectionResource, error) {
	target, err := c.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	if target.Collection == nil {
		return nil, fmt.Errorf("%w: %q names an instance, not a collection", ErrInvalidResourcePath, path)
	}

	return target.Collection, nil
}

// ResolveInstance resolves path and requires it to name an instance.
func (c *Client) ResolveInstance(ctx context.Context, path string) (*resource.Instance, error) {
	target, err := c.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	if target.Instance == nil {
		return nil, fmt.Errorf("%w: %q names a collection, not an instance", ErrInvalidResourcePath, path)
	}

	return target.Instance, nil
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}
