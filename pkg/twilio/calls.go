package twilio

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Call statuses accepted by an update of a live call.
const (
	CallStatusCompleted = "completed"
	CallStatusCanceled  = "canceled"
)

// Calls is the collection of an account's calls.
type Calls struct {
	*resource.Collection
}

func newCalls(parent resource.Proxy, registry *resource.Registry) *Calls {
	return &Calls{
		Collection: resource.NewCollection(TypeCalls, parent, registry),
	}
}

// Call returns the unloaded call with the given SID.
func (c *Calls) Call(sid string) *Call {
	return &Call{Instance: c.Get(sid)}
}

// CreateCall places an outgoing call from one number to another. url is the
// TwiML document executed once the call connects. Entries in extra are
// appended after From, To and Url and cannot override them.
func (c *Calls) CreateCall(ctx context.Context, from, to, url string, extra resource.Params) (*Call, error) {
	params := resource.NewParams(
		"From", from,
		"To", to,
		"Url", url,
	).Merge(extra)

	instance, err := c.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create call: %w", err)
	}

	return &Call{Instance: instance}, nil
}

// Call is a single call.
type Call struct {
	*resource.Instance
}

// Hangup ends the call, whatever state it is in.
func (c *Call) Hangup(ctx context.Context) error {
	return c.Set(ctx, "Status", CallStatusCompleted)
}

// Cancel ends the call only if it is still queued or ringing.
func (c *Call) Cancel(ctx context.Context) error {
	return c.Set(ctx, "Status", CallStatusCanceled)
}

// Redirect moves a live call to the TwiML document at url.
func (c *Call) Redirect(ctx context.Context, url string, extra resource.Params) error {
	return c.Update(ctx, resource.NewParams("Url", url).Merge(extra))
}
