package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tagsurf/tagsurf-terminal/pkg/models"
)

const (
	// DefaultOrigin is the canonical origin of the tag catalog. Tag URLs
	// starting with this prefix are reduced to path-only identifiers.
	DefaultOrigin = "https://bestsimilar.com"

	// DefaultResourceURL is the fixed location of the tag catalog resource.
	DefaultResourceURL = DefaultOrigin + "/taglist.json"
)

// Client fetches the tag catalog from its remote resource.
type Client struct {
	httpClient  *http.Client
	resourceURL string
	origin      string
}

// Option configures a Client.
type Option func(*Client)

// WithResourceURL overrides the catalog resource location.
func WithResourceURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.resourceURL = url
		}
	}
}

// WithOrigin overrides the origin prefix stripped from tag URLs.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		if origin != "" {
			c.origin = origin
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a catalog client for the default resource location.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		resourceURL: DefaultResourceURL,
		origin:      DefaultOrigin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Origin returns the origin prefix this client strips from tag URLs.
func (c *Client) Origin() string {
	return c.origin
}

// Fetch retrieves and decodes the tag catalog. A non-2xx response or a
// decode failure is returned as an error; callers treat every failure
// the same way, as "no tags available".
func (c *Client) Fetch(ctx context.Context) (models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tag catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("tag catalog request returned status %d", resp.StatusCode)
	}

	var tags models.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("failed to decode tag catalog: %w", err)
	}

	return tags, nil
}
