// Package appstore retrieves application metadata, reviews, ratings and
// related information from the mobile application marketplace. It
// combines the public lookup/search API, the RSS-style feed API and
// best-effort HTML parsing of marketplace web pages where no stable API
// exists.
//
// All state is per call: the Client holds only configuration, so a
// single Client is safe for concurrent use.
package appstore

import (
	"context"
	"net/http"
	"strings"
	"time"

	"appstore-scraper/lib/fetch"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("appstore")

type ClientOptions struct {
	// Country is the default two-letter country code; "us" when empty.
	Country string
	// Language, when set, is passed through as the lang parameter on
	// lookup requests.
	Language string
	// Timeout applies per HTTP attempt; zero uses the transport default.
	Timeout time.Duration
	// Retries enables retry-with-backoff on 429/503/network failures.
	Retries int
	// Headers are merged over the default browser-like header set on
	// every request.
	Headers map[string]string
	// Transport optionally overrides the HTTP transport (proxies,
	// test servers).
	Transport http.RoundTripper
}

type Client struct {
	opts ClientOptions

	// endpoint bases, overridable in tests
	itunesBase string
	searchBase string
	webBase    string
}

func NewClient(opts ClientOptions) *Client {
	if opts.Country == "" {
		opts.Country = defaultCountry
	}
	return &Client{
		opts:       opts,
		itunesBase: "https://itunes.apple.com",
		searchBase: "https://search.itunes.apple.com",
		webBase:    "https://apps.apple.com",
	}
}

// country picks the per-call override over the client default.
func (c *Client) country(override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	return c.opts.Country
}

func (c *Client) language(override string) string {
	if override != "" {
		return override
	}
	return c.opts.Language
}

func (c *Client) get(ctx context.Context, url string, headers map[string]string) (string, error) {
	merged := map[string]string{}
	for k, v := range c.opts.Headers {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	return fetch.Get(ctx, url, fetch.Options{
		Headers:   merged,
		Timeout:   c.opts.Timeout,
		Retries:   c.opts.Retries,
		Transport: c.opts.Transport,
	})
}
