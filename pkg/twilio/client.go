package twilio

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/twilio-client/internal/http"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Client is the entry point of the Twilio resource graph.
type Client struct {
	root     *resource.Root
	registry *resource.Registry
	accounts *Accounts
	account  *Account
}

// New creates a client from config.
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	if config.AccountSID == "" {
		return nil, ErrAccountSIDRequired
	}

	gateway := config.Gateway
	if gateway == nil {
		if config.AuthToken == "" {
			return nil, ErrAuthTokenRequired
		}

		gateway = newGateway(config)
	}

	rootOpts := []resource.RootOption{}
	if config.APIVersion != "" {
		rootOpts = append(rootOpts, resource.WithVersion(config.APIVersion))
	}

	if config.Logger != nil {
		rootOpts = append(rootOpts, resource.WithLogger(config.Logger))
	}

	root, err := resource.NewRoot(gateway, rootOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource root: %w", err)
	}

	registry := NewRegistry()
	accounts := newAccounts(root, registry)

	return &Client{
		root:     root,
		registry: registry,
		accounts: accounts,
		account:  accounts.Account(config.AccountSID),
	}, nil
}

// NewWithCredentials creates a client for the production API.
func NewWithCredentials(accountSID, authToken string) (*Client, error) {
	return New(&Config{
		AccountSID: accountSID,
		AuthToken:  authToken,
	})
}

// Accounts returns the top-level Accounts collection.
func (c *Client) Accounts() *Accounts {
	return c.accounts
}

// Account returns the configured account. It is not loaded until one of its
// attributes or sub-resources is read.
func (c *Client) Account() *Account {
	return c.account
}

// Registry returns the registry of specialized resources.
func (c *Client) Registry() *resource.Registry {
	return c.registry
}

// Root returns the node that owns the transport.
func (c *Client) Root() *resource.Root {
	return c.root
}

func newGateway(config *Config) *internalhttp.Client {
	opts := []internalhttp.Option{
		internalhttp.WithBasicAuth(config.AccountSID, config.AuthToken),
		internalhttp.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return internalhttp.NewClient(normalizeBaseURL(config.BaseURL), opts...)
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
