package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

// Root is the base of the delegation chain: the only node that talks to the
// Gateway. It turns an accumulated key such as "Accounts/AC123/Calls" into
// "/2010-04-01/Accounts/AC123/Calls.json", checks the reply and decodes it.
type Root struct {
	gateway Gateway
	version string
	logger  Logger
}

// RootOption configures a Root.
type RootOption func(*Root)

// WithVersion sets the API version path prefix.
func WithVersion(version string) RootOption {
	return func(r *Root) {
		r.version = version
	}
}

// WithLogger sets the logger for request and response events.
func WithLogger(logger Logger) RootOption {
	return func(r *Root) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRoot creates a Root on top of gateway.
func NewRoot(gateway Gateway, opts ...RootOption) (*Root, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}

	root := &Root{
		gateway: gateway,
		version: constants.DefaultAPIVersion,
		logger:  nopLogger{},
	}

	for _, opt := range opts {
		opt(root)
	}

	return root, nil
}

// Version returns the API version prefix.
func (r *Root) Version() string {
	return r.version
}

// Path returns the request path for key.
func (r *Root) Path(key string) string {
	return "/" + r.version + "/" + strings.Trim(key, "/") + constants.PathExtension
}

// Receive implements Proxy.Receive.
func (r *Root) Receive(ctx context.Context, key string, params Params) (Representation, error) {
	path := r.Path(key)

	r.logger.Debug("API Request", map[string]interface{}{
		"method": http.MethodGet,
		"path":   path,
		"query":  params.Encode(),
	})

	reply, err := r.gateway.Fetch(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return r.decode(http.MethodGet, path, reply)
}

// Send implements Proxy.Send.
func (r *Root) Send(ctx context.Context, key string, params Params) (Representation, error) {
	path := r.Path(key)

	r.logger.Debug("API Request", map[string]interface{}{
		"method": http.MethodPost,
		"path":   path,
		"fields": len(params),
	})

	header := http.Header{}
	header.Set("Content-Type", constants.ContentTypeForm)

	reply, err := r.gateway.Submit(ctx, path, header, params)
	if err != nil {
		return nil, fmt.Errorf("submitting %s: %w", path, err)
	}

	return r.decode(http.MethodPost, path, reply)
}

func (r *Root) decode(method, path string, reply *Reply) (Representation, error) {
	fields := map[string]interface{}{
		"method":      method,
		"path":        path,
		"status_code": reply.StatusCode,
	}

	if reply.StatusCode < constants.HTTPStatusSuccessMin || reply.StatusCode >= constants.HTTPStatusSuccessMax {
		r.logger.Error("API Response Error", fields)

		return nil, newTransportError(method, path, reply)
	}

	contentType := reply.Header.Get("Content-Type")
	if !isJSON(contentType) {
		r.logger.Error("API Response Error", fields)

		return nil, &ProtocolError{Method: method, Path: path, ContentType: contentType}
	}

	r.logger.Debug("API Response", fields)

	var rep Representation

	err := json.Unmarshal(reply.Body, &rep)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", path, err)
	}

	if rep == nil {
		return nil, fmt.Errorf("parsing %s response: %w", path, ErrNotAnObject)
	}

	return rep, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == constants.ContentTypeJSON
}
