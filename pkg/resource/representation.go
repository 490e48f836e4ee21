package resource

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

// Representation is a decoded JSON object as the server sent it.
type Representation map[string]any

// Value returns the raw value stored under key.
func (r Representation) Value(key string) (any, bool) {
	value, ok := r[key]

	return value, ok
}

// String returns the value under key formatted as a string, or "" when absent.
func (r Representation) String(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}

	return stringify(value)
}

// Identifier returns the non-empty identifier stored under field.
func (r Representation) Identifier(field string) (string, bool) {
	value, ok := r[field]
	if !ok || value == nil {
		return "", false
	}

	id := stringify(value)

	return id, id != ""
}

// SubresourceURIs returns the subresource_uris map, skipping entries whose
// URI is not a string.
func (r Representation) SubresourceURIs() map[string]string {
	raw, ok := r[constants.SubresourceURIsField].(map[string]any)
	if !ok {
		return nil
	}

	uris := make(map[string]string, len(raw))

	for key, value := range raw {
		if uri, ok := value.(string); ok {
			uris[key] = uri
		}
	}

	return uris
}

// Entries returns the objects listed under field. An absent field yields an
// empty list.
func (r Representation) Entries(field string) ([]Representation, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return []Representation{}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrMalformedList, field, raw)
	}

	entries := make([]Representation, 0, len(items))

	for index, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q[%d] holds %T", ErrMalformedList, field, index, item)
		}

		entries = append(entries, Representation(object))
	}

	return entries, nil
}

func (r Representation) clone() Representation {
	cloned := make(Representation, len(r))
	for key, value := range r {
		cloned[key] = value
	}

	return cloned
}

func stringify(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}
