package resource

import (
	"net/url"
	"strings"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an insertion-ordered parameter list. The API expects query and
// form fields in the order the caller supplied them, which url.Values
// cannot guarantee.
type Params []Param

// NewParams builds Params from alternating keys and values. A trailing key
// without a value gets an empty value.
func NewParams(pairs ...string) Params {
	params := make(Params, 0, (len(pairs)+1)/2)

	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}

		params = params.Set(pairs[i], value)
	}

	return params
}

// Set replaces the value of key, or appends it when absent.
func (p Params) Set(key, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value

			return p
		}
	}

	return append(p, Param{Key: key, Value: value})
}

// Get returns the value of key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return "", false
}

// Merge returns p followed by every entry of other whose key p does not
// already hold. Keys in p win.
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p), len(p)+len(other))
	copy(merged, p)

	for _, param := range other {
		if _, exists := merged.Get(param.Key); !exists {
			merged = append(merged, param)
		}
	}

	return merged
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p)
}

// Encode renders the parameters as key=value pairs joined with "&",
// in insertion order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, param := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}
