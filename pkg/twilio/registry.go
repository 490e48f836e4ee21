package twilio

import (
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Type names of the registered collections, as derived from the wire keys
// of subresource_uris.
const (
	TypeCalls                 = "Calls"
	TypeSmsMessages           = "SmsMessages"
	TypeShortCodes            = "ShortCodes"
	TypeConferences           = "Conferences"
	TypeParticipants          = "Participants"
	TypeAvailablePhoneNumbers = "AvailablePhoneNumbers"
	TypeOutgoingCallerIDs     = "OutgoingCallerIds"
	TypeIncomingPhoneNumbers  = "IncomingPhoneNumbers"
	TypeRecordings            = "Recordings"
	TypeTranscriptions        = "Transcriptions"
	TypeNotifications         = "Notifications"
)

// NewRegistry returns a registry with every Twilio collection that needs a
// typed wrapper or a schema that differs from the naming convention.
func NewRegistry() *resource.Registry {
	registry := resource.NewRegistry()

	registry.Register(TypeCalls, func(parent resource.Proxy, registry *resource.Registry) resource.CollectionResource {
		return newCalls(parent, registry)
	})
	registry.Register(TypeSmsMessages, func(parent resource.Proxy, registry *resource.Registry) resource.CollectionResource {
		return newSmsMessages(parent, registry)
	})
	registry.Register(TypeShortCodes, func(parent resource.Proxy, registry *resource.Registry) resource.CollectionResource {
		return newShortCodes(parent, registry)
	})
	registry.Register(TypeConferences, func(parent resource.Proxy, registry *resource.Registry) resource.CollectionResource {
		return newConferences(parent, registry)
	})
	registry.Register(TypeParticipants, func(parent resource.Proxy, registry *resource.Registry) resource.CollectionResource {
		return newParticipants(parent, registry)
	})

	for _, name := range []string{
		TypeAvailablePhoneNumbers,
		TypeOutgoingCallerIDs,
		TypeIncomingPhoneNumbers,
		TypeRecordings,
		TypeTranscriptions,
		TypeNotifications,
	} {
		registry.Register(name, genericFactory(name))
	}

	return registry
}

func genericFactory(name string) resource.Factory {
	return func(parent resource.Proxy, registry *resource.Registry) resource.CollectionResource {
		return resource.NewCollection(name, parent, registry)
	}
}
