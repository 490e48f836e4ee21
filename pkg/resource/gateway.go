package resource

import (
	"context"
	"net/http"
)

// Reply is the raw outcome of a request.
type Reply struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Gateway is the transport the graph runs on. Implementations return an
// error only when no response was obtained; status and content checks are
// done by Root.
type Gateway interface {
	// Fetch issues a GET for path with query appended.
	Fetch(ctx context.Context, path string, query Params) (*Reply, error)
	// Submit issues a POST for path with the given headers and form body.
	Submit(ctx context.Context, path string, header http.Header, form Params) (*Reply, error)
}

// Proxy is the contract every node of the graph implements. A node answers
// Receive and Send by prefixing key with its own path segment and forwarding
// to its own proxy; Root is the base case.
type Proxy interface {
	// Receive reads the representation at key.
	Receive(ctx context.Context, key string, params Params) (Representation, error)
	// Send mutates the resource at key and returns the server's representation.
	Send(ctx context.Context, key string, params Params) (Representation, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func joinPath(segment, key string) string {
	if key == "" {
		return segment
	}

	return segment + "/" + key
}
