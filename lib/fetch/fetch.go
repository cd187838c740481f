// Package fetch implements the single-request transport underneath every
// scraping operation: one GET with a per-attempt timeout, an opt-in retry
// budget with exponential backoff, and typed status errors.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"appstore-scraper/lib/telemetry"

	"dario.cat/mergo"
	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single attempt, not the whole retry series.
const DefaultTimeout = 15 * time.Second

const defaultRetryWait = time.Second

// defaultHeaders make the request look like an ordinary browser request;
// the upstream rejects obviously synthetic clients.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

type Options struct {
	// Headers are merged over the default browser-like header set.
	Headers map[string]string
	// Timeout applies per attempt. Zero means DefaultTimeout; a negative
	// value is rejected before any request is made.
	Timeout time.Duration
	// Retries is the extra-attempt budget beyond the first request.
	// Only 429, 503 and low-level transport errors are retried. Negative
	// values clamp to zero so at least one attempt is always made.
	Retries int
	// Transport overrides the default browser-resembling transport.
	Transport http.RoundTripper

	// test hook
	retryWait time.Duration
}

// Get performs the request and returns the response body verbatim.
// Non-2xx responses come back as *StatusError; this layer never
// interprets the body.
func Get(ctx context.Context, url string, opts Options) (string, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < 0 {
		return "", fmt.Errorf("invalid timeout %v: must be positive", opts.Timeout)
	}

	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	retryWait := opts.retryWait
	if retryWait == 0 {
		retryWait = defaultRetryWait
	}

	headers := map[string]string{}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	if err := mergo.Merge(&headers, defaultHeaders); err != nil {
		return "", err
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeaders(headers)
	if opts.Transport != nil {
		client.GetClient().Transport = opts.Transport
	} else {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	if retries > 0 {
		client.SetRetryCount(retries)
		client.SetRetryWaitTime(retryWait)
		client.SetRetryMaxWaitTime(retryWait << uint(retries))
		client.AddRetryCondition(func(res *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return res.StatusCode() == http.StatusTooManyRequests ||
				res.StatusCode() == http.StatusServiceUnavailable
		})
	}

	telemetry.InstrumentResty(client, "lib/fetch")

	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", url, err)
	}
	// resty has already read and closed the body at this point, including
	// for failed responses
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return "", &StatusError{Code: res.StatusCode(), URL: url}
	}

	return res.String(), nil
}
