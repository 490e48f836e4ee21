package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrGatewayRequired   = errors.New("gateway is required")
	ErrNoSuchSubresource = errors.New("no such subresource")
	ErrMalformedList     = errors.New("list field is not a sequence of objects")
	ErrNotAnObject       = errors.New("response body is not a JSON object")
)

// TransportError reports a response whose status falls outside [200,300).
// Body holds the raw response; Code, Message and MoreInfo are filled in when
// the body is a Twilio error document.
type TransportError struct {
	Method     string `json:"-"`
	Path       string `json:"-"`
	StatusCode int    `json:"-"`
	Body       []byte `json:"-"`

	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s (code: %d)", e.Method, e.Path, e.StatusCode, e.Message, e.Code)
	}

	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, string(e.Body))
}

// ProtocolError reports a successful response that did not carry JSON.
type ProtocolError struct {
	Method      string
	Path        string
	ContentType string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s %s: expected application/json response, got %q", e.Method, e.Path, e.ContentType)
}

// MissingIdentifierError reports a representation without an identifier
// where one was required, e.g. the response to a create.
type MissingIdentifierError struct {
	Collection string
	Field      string
}

// Error implements the error interface.
func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s: representation has no %q field", e.Collection, e.Field)
}

func newTransportError(method, path string, reply *Reply) *TransportError {
	transportErr := &TransportError{
		Method:     method,
		Path:       path,
		StatusCode: reply.StatusCode,
		Body:       reply.Body,
	}

	// best effort; a non-JSON error body leaves the detail fields empty
	_ = json.Unmarshal(reply.Body, transportErr)

	return transportErr
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsProtocolError checks if the error is a non-JSON success response.
func IsProtocolError(err error) bool {
	protocolErr := &ProtocolError{}

	return errors.As(err, &protocolErr)
}

// IsMissingIdentifier checks if the error is a representation without an identifier.
func IsMissingIdentifier(err error) bool {
	missingErr := &MissingIdentifierError{}

	return errors.As(err, &missingErr)
}
