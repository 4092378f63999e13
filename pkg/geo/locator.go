package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultEndpoint returns the caller's own location as JSON.
	DefaultEndpoint = "https://ipapi.co/json/"
	DefaultTimeout  = 5 * time.Second
)

// LocatorOptions configure a Locator. Zero values fall back to the defaults
// above; an unset Fallback becomes DefaultPolicy.
type LocatorOptions struct {
	Endpoint string
	Timeout  time.Duration
	Fallback Policy
	Client   *http.Client
}

// Locator resolves the caller's consent policy through an external
// IP-geolocation endpoint. Lookup failures of any kind yield the configured
// fallback policy, never an error.
type Locator struct {
	endpoint string
	client   *http.Client
	fallback Policy
}

// NewLocator builds a Locator.
func NewLocator(opts LocatorOptions) *Locator {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Fallback.Region == "" {
		opts.Fallback = DefaultPolicy()
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Locator{endpoint: opts.Endpoint, client: client, fallback: opts.Fallback}
}

// Locate fetches the caller's location and resolves its policy.
func (l *Locator) Locate(ctx context.Context) Policy {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return l.fallback
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return l.fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return l.fallback
	}

	var location Location
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return l.fallback
	}
	if strings.TrimSpace(location.CountryCode) == "" {
		return l.fallback
	}
	return Resolve(location, l.fallback)
}
