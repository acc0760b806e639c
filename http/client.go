// Package http provides HTTP-based implementations of wikidaily.TemplateLoader
// and wikidaily.FeaturedService against the Wikimedia APIs.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/wikidaily"
	"golang.org/x/time/rate"
)

// DefaultFeaturedEndpoint is the base of the Wikimedia featured feed.
const DefaultFeaturedEndpoint = "https://api.wikimedia.org/feed/v1/wikipedia"

// Ensure Client implements the domain interfaces at compile time.
var (
	_ wikidaily.TemplateLoader  = (*Client)(nil)
	_ wikidaily.FeaturedService = (*Client)(nil)
)

// Client talks to the MediaWiki parse API and the Wikimedia featured feed.
// Requests carry a JSON accept header and a descriptive user agent.
type Client struct {
	client           *http.Client
	timeout          time.Duration
	userAgent        string
	featuredEndpoint string
	limiter          *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for HTTP requests.
// The default of zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent overrides wikidaily.UserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithFeaturedEndpoint overrides DefaultFeaturedEndpoint.
func WithFeaturedEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.featuredEndpoint = endpoint
	}
}

// WithRateLimit paces requests to at most rps per second.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		userAgent:        wikidaily.UserAgent,
		featuredEndpoint: DefaultFeaturedEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// LoadTemplate requests a parse API endpoint and returns its parse.text markup.
func (c *Client) LoadTemplate(ctx context.Context, endpoint string) (string, error) {
	var envelope struct {
		Parse *struct {
			Text *string `json:"text"`
		} `json:"parse"`
	}
	if err := c.getJSON(ctx, endpoint, endpoint, &envelope); err != nil {
		return "", err
	}

	if envelope.Parse == nil || envelope.Parse.Text == nil {
		return "", wikidaily.Errorf(wikidaily.EPARSE, "missing parse.text in response for %s", endpoint)
	}
	return *envelope.Parse.Text, nil
}

// FetchFeatured requests the featured feed of lang for the UTC date of date.
func (c *Client) FetchFeatured(ctx context.Context, lang string, date time.Time) (*wikidaily.FeaturedFeed, error) {
	d := date.UTC()
	url := fmt.Sprintf("%s/%s/featured/%04d/%02d/%02d", c.featuredEndpoint, lang, d.Year(), int(d.Month()), d.Day())
	identity := lang + " " + d.Format(time.DateOnly)

	var feed wikidaily.FeaturedFeed
	if err := c.getJSON(ctx, url, identity, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// getJSON issues a GET and decodes the JSON body into v. Errors name the
// request by identity.
func (c *Client) getJSON(ctx context.Context, url, identity string, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return wikidaily.Errorf(wikidaily.EINVALID, "invalid request for %s: %v", identity, err)
	}
	req.Header.Set("Accept", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return wikidaily.Errorf(wikidaily.ETRANSPORT, "request failed for %s: %v", identity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return wikidaily.Errorf(wikidaily.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, identity)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wikidaily.Errorf(wikidaily.ETRANSPORT, "reading response for %s: %v", identity, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return wikidaily.Errorf(wikidaily.EPARSE, "invalid JSON for %s: %v", identity, err)
	}
	return nil
}
