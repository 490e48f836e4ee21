package resource

// LookupState tags the outcome of an attribute read.
type LookupState int

const (
	// LookupMissing means the attribute is absent from a loaded representation.
	LookupMissing LookupState = iota
	// LookupFound means the attribute or child collection is available.
	LookupFound
	// LookupNeedsLoad means the attribute is absent and the instance has not loaded yet.
	LookupNeedsLoad
)

// String returns the state name.
func (s LookupState) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNeedsLoad:
		return "needs-load"
	default:
		return "missing"
	}
}

// Lookup is the result of reading an attribute from an Instance. Value is
// either a raw representation value or a CollectionResource for a
// discovered child.
type Lookup struct {
	State LookupState
	Value any
}

// Found reports whether the lookup produced a value.
func (l Lookup) Found() bool {
	return l.State == LookupFound
}

// String returns the value formatted as a string, or "" unless found.
func (l Lookup) String() string {
	if l.State != LookupFound || l.Value == nil {
		return ""
	}

	return stringify(l.Value)
}

// Collection returns the child collection held by the lookup.
func (l Lookup) Collection() (CollectionResource, bool) {
	if l.State != LookupFound {
		return nil, false
	}

	collection, ok := l.Value.(CollectionResource)

	return collection, ok
}

func found(value any) Lookup {
	return Lookup{State: LookupFound, Value: value}
}
