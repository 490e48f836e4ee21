package resource

import (
	"math"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

// Page is a single page of a collection. Items are the raw entries; Fields
// is the whole page body, including the list field and paging metadata.
type Page struct {
	Number int
	Size   int
	Items  []Representation
	Fields Representation
}

// Total returns the total item count reported by the server.
func (p *Page) Total() (int, bool) {
	total, ok := p.Fields[constants.TotalField].(float64)
	if !ok || total != math.Trunc(total) {
		return 0, false
	}

	return int(total), true
}

// NextPageURI returns the URI of the following page, or "" on the last page.
func (p *Page) NextPageURI() string {
	return p.Fields.String(constants.NextPageURIField)
}

// Get returns a page-level field such as "total" or "num_pages".
func (p *Page) Get(key string) Lookup {
	if value, ok := p.Fields[key]; ok {
		return found(value)
	}

	return Lookup{State: LookupMissing}
}
