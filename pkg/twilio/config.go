package twilio

import (
	"errors"
	"time"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccountSIDRequired  = errors.New("account SID is required")
	ErrAuthTokenRequired   = errors.New("auth token is required")
	ErrUnexpectedResource  = errors.New("unexpected resource type")
	ErrInvalidResourcePath = errors.New("invalid resource path")
)

// Logger interface for logging.
type Logger = resource.Logger

// Config represents client configuration for building a Client.
type Config struct {
	// AccountSID identifies the account and is the basic auth username.
	AccountSID string
	// AuthToken is the basic auth password.
	AuthToken string

	// BaseURL overrides the API host (default https://api.twilio.com).
	BaseURL string
	// APIVersion overrides the version path prefix (default 2010-04-01).
	APIVersion string
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds a single HTTP attempt.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries for connection errors, 429 and 5xx.
	// Zero disables retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger

	// Gateway replaces the HTTP transport. AuthToken and the transport
	// settings above are ignored when it is set.
	Gateway resource.Gateway
}
