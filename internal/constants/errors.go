package constants

import "errors"

// Configuration errors.
var (
	ErrNoAccountSID     = errors.New("no account SID configured, use --account-sid, TWILIO_ACCOUNT_SID or 'twilio config set account_sid'")
	ErrNoAuthToken      = errors.New("no auth token configured, use --auth-token or TWILIO_AUTH_TOKEN")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidRetries   = errors.New("retries must be a non-negative integer")
)

// Validation errors.
var (
	ErrInvalidParamFormat      = errors.New("invalid parameter format, expected KEY=VALUE")
	ErrNoParams                = errors.New("at least one --param is required")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)
