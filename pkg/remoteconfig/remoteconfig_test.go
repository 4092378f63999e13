package remoteconfig

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type servedConfig struct {
	mu       sync.Mutex
	document map[string]interface{}
	healthy  bool
}

func (s *servedConfig) set(document map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = document
}

func (s *servedConfig) setHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = healthy
}

func (s *servedConfig) handler(hits *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		s.mu.Lock()
		document, healthy := s.document, s.healthy
		s.mu.Unlock()

		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    document,
		})
	}
}

func TestLoadFetchesOncePerTTLWindow(t *testing.T) {
	var hits atomic.Int32
	served := &servedConfig{healthy: true, document: map[string]interface{}{
		"language": "en",
		"texts":    map[string]interface{}{"title": "Served title"},
	}}
	server := httptest.NewServer(served.handler(&hits))
	defer server.Close()

	loader := NewLoader(Options{BaseURL: server.URL, TTL: 200 * time.Millisecond})
	defer loader.Close()

	first := loader.Load(context.Background(), "en")
	second := loader.Load(context.Background(), "en")

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "Served title", first.Texts.Title)
	assert.Same(t, first, second)

	time.Sleep(250 * time.Millisecond)
	third := loader.Load(context.Background(), "en")

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "Served title", third.Texts.Title)
}

func TestLoadFallsBackToBundledDefaults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
		},
		{
			name: "unsuccessful envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Not found"})
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			loader := NewLoader(Options{BaseURL: server.URL})
			defer loader.Close()

			config := loader.Load(context.Background(), "en")

			assert.Equal(t, "We value your privacy", config.Texts.Title)
			assert.Equal(t, "en", config.Language)
		})
	}
}

func TestLoadFallsBackOnNetworkError(t *testing.T) {
	loader := NewLoader(Options{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	defer loader.Close()

	config := loader.Load(context.Background(), "de")

	assert.Equal(t, "Wir respektieren Ihre Privatsphäre", config.Texts.Title)
}

func TestUnknownLanguageFallsBackToEnglishBundle(t *testing.T) {
	loader := NewLoader(Options{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	defer loader.Close()

	config := loader.Load(context.Background(), "xx")

	assert.Equal(t, "en", config.Language)
	assert.Equal(t, "We value your privacy", config.Texts.Title)
}

func TestFallbackIsNotCached(t *testing.T) {
	var hits atomic.Int32
	served := &servedConfig{document: map[string]interface{}{
		"language": "en",
		"texts":    map[string]interface{}{"title": "Served title"},
	}}
	server := httptest.NewServer(served.handler(&hits))
	defer server.Close()

	loader := NewLoader(Options{BaseURL: server.URL})
	defer loader.Close()

	first := loader.Load(context.Background(), "en")
	assert.Equal(t, "We value your privacy", first.Texts.Title)

	// The service recovers; the next Load retries instead of serving the
	// cached fallback.
	served.setHealthy(true)
	second := loader.Load(context.Background(), "en")

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "Served title", second.Texts.Title)
}

func TestSetLanguageBypassesCache(t *testing.T) {
	var hits atomic.Int32
	served := &servedConfig{healthy: true, document: map[string]interface{}{
		"language": "en",
		"texts":    map[string]interface{}{"title": "Old title"},
	}}
	server := httptest.NewServer(served.handler(&hits))
	defer server.Close()

	loader := NewLoader(Options{BaseURL: server.URL})
	defer loader.Close()

	first := loader.Load(context.Background(), "en")
	assert.Equal(t, "Old title", first.Texts.Title)

	served.set(map[string]interface{}{
		"language": "en",
		"texts":    map[string]interface{}{"title": "New title"},
	})

	cached := loader.Load(context.Background(), "en")
	assert.Equal(t, "Old title", cached.Texts.Title)

	refreshed := loader.SetLanguage(context.Background(), "en")
	assert.Equal(t, "New title", refreshed.Texts.Title)
	assert.Equal(t, int32(2), hits.Load())
}

func TestOverridesWinOverServedConfig(t *testing.T) {
	var hits atomic.Int32
	served := &servedConfig{healthy: true, document: map[string]interface{}{
		"language": "en",
		"texts":    map[string]interface{}{"title": "Served title"},
		"ui":       map[string]interface{}{"primaryColor": "#111111", "position": "top"},
	}}
	server := httptest.NewServer(served.handler(&hits))
	defer server.Close()

	loader := NewLoader(Options{
		BaseURL: server.URL,
		Overrides: map[string]interface{}{
			"ui": map[string]interface{}{"primaryColor": "#000000"},
		},
	})
	defer loader.Close()

	config := loader.Load(context.Background(), "en")

	assert.Equal(t, "#000000", config.UI.PrimaryColor)
	assert.Equal(t, "top", config.UI.Position)
	assert.Equal(t, "Served title", config.Texts.Title)
}
