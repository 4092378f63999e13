// Package remoteconfig loads the per-language banner configuration from the
// consent service, caches it with a TTL and falls back to bundled defaults
// whenever the service cannot be reached. Loading never returns an error to
// the caller; a widget must keep working without its backend.
package remoteconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	// DefaultLanguage is the bundled fallback of last resort.
	DefaultLanguage = "en"
	DefaultTimeout  = 5 * time.Second
	DefaultTTL      = 5 * time.Minute
)

// Options configure a Loader. Zero values fall back to the defaults above.
type Options struct {
	// BaseURL is the consent service root, for example "https://consent.example.com".
	BaseURL string
	// Timeout bounds each configuration fetch.
	Timeout time.Duration
	// TTL is how long a fetched configuration stays fresh.
	TTL time.Duration
	// Overrides are caller-supplied values merged over every loaded
	// configuration, using the same JSON field names as the service.
	Overrides map[string]interface{}
	// Client replaces the default HTTP client when set.
	Client *http.Client
}

// Loader fetches, merges and caches banner configurations per language.
type Loader struct {
	baseURL   string
	client    *http.Client
	cache     *ttlcache.Cache[string, *Config]
	overrides map[string]interface{}
}

// NewLoader builds a Loader and starts its cache janitor. Call Close when
// the loader is no longer needed.
func NewLoader(opts Options) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[string, *Config](opts.TTL),
		ttlcache.WithDisableTouchOnHit[string, *Config](),
	)
	go cache.Start()

	return &Loader{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		client:    client,
		cache:     cache,
		overrides: opts.Overrides,
	}
}

// Close stops the cache background goroutine.
func (l *Loader) Close() {
	l.cache.Stop()
}

// Load returns the configuration for a language: bundled defaults, overlaid
// with the served document, overlaid with the caller overrides. A fresh
// cache entry is returned without a fetch. Any fetch failure (network,
// timeout, non-2xx, malformed body, unsuccessful envelope) falls back to the
// bundled defaults; the fallback is not cached, so the next Load retries.
func (l *Loader) Load(ctx context.Context, language string) *Config {
	language = normalizeLanguage(language)
	if item := l.cache.Get(language); item != nil {
		return item.Value()
	}

	merged, fetched := l.build(ctx, language)
	if fetched {
		l.cache.Set(language, merged, ttlcache.DefaultTTL)
	}
	return merged
}

// SetLanguage evicts the cached entry for a language and reloads past the
// cache, so a language switch picks up the latest served document and the
// host can re-apply the UI fields immediately.
func (l *Loader) SetLanguage(ctx context.Context, language string) *Config {
	language = normalizeLanguage(language)
	l.cache.Delete(language)

	merged, fetched := l.build(ctx, language)
	if fetched {
		l.cache.Set(language, merged, ttlcache.DefaultTTL)
	}
	return merged
}

func (l *Loader) build(ctx context.Context, language string) (*Config, bool) {
	merged := bundledDefaults(language)

	document, fetched := l.fetch(ctx, language)
	if fetched {
		merged = deepMerge(merged, document)
	}
	merged = deepMerge(merged, l.overrides)

	config := decodeConfig(merged)
	if config.Language == "" {
		config.Language = language
	}
	return config, fetched
}

// fetch retrieves the served document for a language. The bool result is
// false on any failure; the failure itself is deliberately not surfaced.
func (l *Loader) fetch(ctx context.Context, language string) (map[string]interface{}, bool) {
	requestURL := fmt.Sprintf("%s/cookie-config/%s", l.baseURL, language)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, false
	}
	if !envelope.Success || len(envelope.Data) == 0 {
		return nil, false
	}

	var document map[string]interface{}
	if err := json.Unmarshal(envelope.Data, &document); err != nil {
		return nil, false
	}
	return document, true
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return DefaultLanguage
	}
	return language
}
