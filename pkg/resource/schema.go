package resource

import (
	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/naming"
)

// Schema describes how a collection maps onto the wire. The defaults follow
// the naming convention; resources whose URL and list field disagree
// (SMS/Messages vs sms_messages) override them.
type Schema struct {
	// Name is the PascalCase type name, e.g. "SmsMessages".
	Name string
	// PathName is the path segment of the collection, e.g. "SMS/Messages".
	PathName string
	// ListField is the page field holding the entries, e.g. "sms_messages".
	ListField string
	// InstanceName is the type name of a single member, e.g. "SmsMessage".
	InstanceName string
	// IDField is the identifier field of a member representation.
	IDField string
}

// DefaultSchema derives a schema from a type name.
func DefaultSchema(name string) Schema {
	return Schema{
		Name:         name,
		PathName:     name,
		ListField:    naming.Decamelize(name),
		InstanceName: naming.Singularize(name),
		IDField:      constants.IDField,
	}
}

// CollectionOption configures the schema of a collection.
type CollectionOption func(*Schema)

// WithPathName overrides the path segment.
func WithPathName(pathName string) CollectionOption {
	return func(s *Schema) {
		s.PathName = pathName
	}
}

// WithListField overrides the page field holding the entries.
func WithListField(field string) CollectionOption {
	return func(s *Schema) {
		s.ListField = field
	}
}

// WithInstanceName overrides the singular type name, for irregular plurals.
func WithInstanceName(name string) CollectionOption {
	return func(s *Schema) {
		s.InstanceName = name
	}
}

// WithIDField overrides the identifier field of member representations.
func WithIDField(field string) CollectionOption {
	return func(s *Schema) {
		s.IDField = field
	}
}

// WithSchema replaces every non-empty field of the derived schema.
func WithSchema(schema Schema) CollectionOption {
	return func(s *Schema) {
		if schema.PathName != "" {
			s.PathName = schema.PathName
		}

		if schema.ListField != "" {
			s.ListField = schema.ListField
		}

		if schema.InstanceName != "" {
			s.InstanceName = schema.InstanceName
		}

		if schema.IDField != "" {
			s.IDField = schema.IDField
		}
	}
}
