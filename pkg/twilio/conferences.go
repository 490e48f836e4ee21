package twilio

import (
	"context"
	"strconv"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Conferences is the collection of an account's conferences.
type Conferences struct {
	*resource.Collection
}

func newConferences(parent resource.Proxy, registry *resource.Registry) *Conferences {
	return &Conferences{
		Collection: resource.NewCollection(TypeConferences, parent, registry),
	}
}

// Conference returns the unloaded conference with the given SID.
func (c *Conferences) Conference(sid string) *Conference {
	return &Conference{
		Instance: c.Get(sid),
		registry: c.Registry(),
	}
}

// Conference is a single conference.
type Conference struct {
	*resource.Instance

	registry *resource.Registry
}

// Participants returns the calls connected to the conference.
func (c *Conference) Participants(ctx context.Context) (*Participants, error) {
	return subresource[*Participants](ctx, c.Instance, c.registry, TypeParticipants)
}

// Participants is keyed by the SID of each participant's call rather than
// by a sid of its own.
type Participants struct {
	*resource.Collection
}

func newParticipants(parent resource.Proxy, registry *resource.Registry) *Participants {
	return &Participants{
		Collection: resource.NewCollection(TypeParticipants, parent, registry,
			resource.WithIDField("call_sid"),
		),
	}
}

// Participant returns the unloaded participant for callSID.
func (p *Participants) Participant(callSID string) *Participant {
	return &Participant{Instance: p.Get(callSID)}
}

// Participant is a call connected to a conference.
type Participant struct {
	*resource.Instance
}

// Mute stops the participant's audio reaching the conference.
func (p *Participant) Mute(ctx context.Context) error {
	return p.setMuted(ctx, true)
}

// Unmute reverses Mute.
func (p *Participant) Unmute(ctx context.Context) error {
	return p.setMuted(ctx, false)
}

func (p *Participant) setMuted(ctx context.Context, muted bool) error {
	return p.Set(ctx, "Muted", strconv.FormatBool(muted))
}
