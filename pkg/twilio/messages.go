package twilio

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// SmsMessages is served from SMS/Messages and lists its entries under
// sms_messages, which the naming convention cannot derive.
type SmsMessages struct {
	*resource.Collection
}

func newSmsMessages(parent resource.Proxy, registry *resource.Registry) *SmsMessages {
	return &SmsMessages{
		Collection: resource.NewCollection(TypeSmsMessages, parent, registry,
			resource.WithPathName("SMS/Messages"),
			resource.WithListField("sms_messages"),
			resource.WithInstanceName("SmsMessage"),
		),
	}
}

// SendSms sends body from one number to another.
func (s *SmsMessages) SendSms(ctx context.Context, from, to, body string, extra resource.Params) (*resource.Instance, error) {
	params := resource.NewParams(
		"From", from,
		"To", to,
		"Body", body,
	).Merge(extra)

	message, err := s.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to send sms: %w", err)
	}

	return message, nil
}

// ShortCodes is served from SMS/ShortCodes.
type ShortCodes struct {
	*resource.Collection
}

func newShortCodes(parent resource.Proxy, registry *resource.Registry) *ShortCodes {
	return &ShortCodes{
		Collection: resource.NewCollection(TypeShortCodes, parent, registry,
			resource.WithPathName("SMS/ShortCodes"),
			resource.WithListField("short_codes"),
		),
	}
}
