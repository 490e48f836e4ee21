package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultBaseURL is the Twilio REST API host.
	DefaultBaseURL = "https://api.twilio.com"

	// DefaultAPIVersion is the path prefix of every request.
	DefaultAPIVersion = "2010-04-01"

	// PathExtension is appended to every resource path.
	PathExtension = ".json"

	// DefaultUserAgent identifies the client to the API.
	DefaultUserAgent = "twilio-client-go"

	// IdempotencyHeader carries a per-request token so retried POSTs are applied once.
	IdempotencyHeader = "I-Twilio-Idempotency-Token"
)

// Representation field names.
const (
	// IDField is the identifier field of every instance representation.
	IDField = "sid"

	// SubresourceURIsField maps sub-resource names to their URIs.
	SubresourceURIsField = "subresource_uris"

	// TotalField is the total item count of a page, when the API reports it.
	TotalField = "total"

	// NextPageURIField is the URI of the following page, when there is one.
	NextPageURIField = "next_page_uri"
)

// Pagination query parameters.
const (
	// PageParam selects the zero-based page number.
	PageParam = "Page"

	// PageSizeParam selects the number of items per page.
	PageSizeParam = "PageSize"
)

// Content types.
const (
	// ContentTypeJSON is the only accepted response media type.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is the encoding of mutating requests.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status bounds.
const (
	// HTTPStatusSuccessMin is the first status code treated as success.
	HTTPStatusSuccessMin = 200

	// HTTPStatusSuccessMax is the first status code past the success range.
	HTTPStatusSuccessMax = 300
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)
