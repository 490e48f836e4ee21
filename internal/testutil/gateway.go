// Package testutil provides a scripted resource.Gateway for tests.
package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Static errors for err113 compliance.
var (
	ErrUnexpectedRequest = errors.New("unexpected request")
	ErrConnectionRefused = errors.New("connection refused")
)

// Call is a request the Gateway received.
type Call struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Form   string
}

// URL returns the path with its query string, if any.
func (c Call) URL() string {
	if c.Query == "" {
		return c.Path
	}

	return c.Path + "?" + c.Query
}

// Gateway is a resource.Gateway that answers from a script keyed by method
// and URL, and records every call. Unscripted requests fail with
// ErrUnexpectedRequest.
type Gateway struct {
	mu      sync.Mutex
	replies map[string][]*resource.Reply
	failing map[string]error
	calls   []Call
}

// NewGateway creates an empty scripted gateway.
func NewGateway() *Gateway {
	return &Gateway{
		replies: make(map[string][]*resource.Reply),
		failing: make(map[string]error),
	}
}

// OnGet scripts a JSON reply for a GET of url (path plus query).
func (g *Gateway) OnGet(url string, status int, body any) *Gateway {
	return g.OnReply(http.MethodGet, url, JSONReply(status, body))
}

// OnPost scripts a JSON reply for a POST to path.
func (g *Gateway) OnPost(path string, status int, body any) *Gateway {
	return g.OnReply(http.MethodPost, path, JSONReply(status, body))
}

// OnReply scripts reply for method and url. Replies for the same request
// are served in order; the last one repeats.
func (g *Gateway) OnReply(method, url string, reply *resource.Reply) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := method + " " + url
	g.replies[key] = append(g.replies[key], reply)

	return g
}

// OnError makes every request for method and url fail with err.
func (g *Gateway) OnError(method, url string, err error) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.failing[method+" "+url] = err

	return g
}

// Fetch implements resource.Gateway.Fetch.
func (g *Gateway) Fetch(ctx context.Context, path string, query resource.Params) (*resource.Reply, error) {
	return g.serve(Call{
		Method: http.MethodGet,
		Path:   path,
		Query:  query.Encode(),
	})
}

// Submit implements resource.Gateway.Submit.
func (g *Gateway) Submit(ctx context.Context, path string, header http.Header, form resource.Params) (*resource.Reply, error) {
	return g.serve(Call{
		Method: http.MethodPost,
		Path:   path,
		Header: header.Clone(),
		Form:   form.Encode(),
	})
}

// Calls returns every request received so far.
func (g *Gateway) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()

	calls := make([]Call, len(g.calls))
	copy(calls, g.calls)

	return calls
}

// Count returns the number of requests received so far.
func (g *Gateway) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.calls)
}

// CountOf returns the number of requests received for method and url.
func (g *Gateway) CountOf(method, url string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := 0

	for _, call := range g.calls {
		if call.Method == method && call.URL() == url {
			count++
		}
	}

	return count
}

// Last returns the most recent request.
func (g *Gateway) Last() (Call, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.calls) == 0 {
		return Call{}, false
	}

	return g.calls[len(g.calls)-1], true
}

func (g *Gateway) serve(call Call) (*resource.Reply, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls = append(g.calls, call)
	key := call.Method + " " + call.URL()

	if err, ok := g.failing[key]; ok {
		return nil, err
	}

	queue := g.replies[key]
	if len(queue) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedRequest, key)
	}

	reply := queue[0]
	if len(queue) > 1 {
		g.replies[key] = queue[1:]
	}

	return reply, nil
}

// JSONReply builds a reply with a JSON content type. Strings and byte
// slices are used as the body verbatim; anything else is marshaled.
func JSONReply(status int, body any) *resource.Reply {
	header := http.Header{}
	header.Set("Content-Type", constants.ContentTypeJSON)

	return &resource.Reply{
		StatusCode: status,
		Header:     header,
		Body:       encode(body),
	}
}

func encode(body any) []byte {
	switch typed := body.(type) {
	case nil:
		return nil
	case []byte:
		return typed
	case string:
		return []byte(typed)
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			panic(fmt.Sprintf("testutil: marshaling reply body: %v", err))
		}

		return data
	}
}
