// Package directory is a thin client over the Workspace administrative
// REST surface: the Admin SDK Directory API (users, groups, members) and
// the legacy Admin Settings feed (domain properties).
package directory

import (
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/dirctl/internal/core/domain"
	"github.com/custodia-labs/dirctl/internal/core/ports/driven"
)

// Production endpoint roots.
const (
	defaultDirectoryBaseURL = "https://admin.googleapis.com/admin/directory/v1"
	defaultFeedsBaseURL     = "https://apps-apis.google.com/a/feeds/domain/2.0"
)

// Fixed page sizes. Not caller-configurable.
const (
	usersPageSize   = 500
	groupsPageSize  = 500
	membersPageSize = 200
)

// Client issues authenticated requests against the directory endpoints.
// Single-owner: it is not safe for concurrent use, matching the
// synchronous call patterns it exists to serve.
type Client struct {
	cfg     domain.ClientConfig
	tokens  driven.TokenProvider
	http    *http.Client
	limiter *RateLimiter

	directoryBase string
	feedsBase     string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURLs overrides the endpoint roots. Used by tests.
func WithBaseURLs(directoryBase, feedsBase string) Option {
	return func(c *Client) {
		if directoryBase != "" {
			c.directoryBase = directoryBase
		}
		if feedsBase != "" {
			c.feedsBase = feedsBase
		}
	}
}

// New validates the configuration and constructs a client. Fails with a
// configuration error when the domain is empty, the credential file does
// not exist, or no token provider is supplied.
func New(cfg domain.ClientConfig, tokens driven.TokenProvider, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, fmt.Errorf("%w: token provider is required", domain.ErrConfiguration)
	}

	c := &Client{
		cfg:           cfg,
		tokens:        tokens,
		http:          &http.Client{Timeout: 30 * time.Second},
		limiter:       NewRateLimiter(),
		directoryBase: defaultDirectoryBaseURL,
		feedsBase:     defaultFeedsBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Domain returns the configured Workspace domain.
func (c *Client) Domain() string {
	return c.cfg.Domain
}
