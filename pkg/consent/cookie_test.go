package consent

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCookieRoundTrip(t *testing.T) {
	original := Record{
		Timestamp: time.Now().UnixMilli(),
		Version:   "1.0",
		Categories: map[string]bool{
			CategoryEssential: true,
			CategoryAnalytics: true,
			CategoryMarketing: false,
		},
	}

	decoded, ok := DecodeRecord(EncodeRecord(original))

	assert.True(t, ok)
	assert.Equal(t, original, *decoded)
}

func TestDecodeRecordRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "invalid json", value: url.QueryEscape("{not json")},
		{name: "missing categories", value: url.QueryEscape(`{"timestamp":1700000000000,"version":"1.0"}`)},
		{name: "missing timestamp", value: url.QueryEscape(`{"version":"1.0","categories":{"essential":true}}`)},
		{name: "missing version", value: url.QueryEscape(`{"timestamp":1700000000000,"categories":{"essential":true}}`)},
		{name: "categories wrong type", value: url.QueryEscape(`{"timestamp":1700000000000,"version":"1.0","categories":[]}`)},
		{name: "timestamp wrong type", value: url.QueryEscape(`{"timestamp":"now","version":"1.0","categories":{}}`)},
		{name: "invalid escape", value: "%zz"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record, ok := DecodeRecord(tc.value)
			assert.False(t, ok)
			assert.Nil(t, record)
		})
	}
}

func TestWriteCookieAppliesAttributes(t *testing.T) {
	opts := CookieOptions{
		Name:       "cc",
		ExpiryDays: 7,
		Path:       "/app",
		Domain:     "example.com",
		Secure:     true,
		SameSite:   "Strict",
	}
	w := httptest.NewRecorder()

	WriteCookie(w, opts, Record{Timestamp: 1, Version: "1.0", Categories: map[string]bool{}})

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		cookie := cookies[0]
		assert.Equal(t, "cc", cookie.Name)
		assert.Equal(t, "/app", cookie.Path)
		assert.Equal(t, "example.com", cookie.Domain)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	}
}

func TestParseSameSiteDefaultsToLax(t *testing.T) {
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite(""))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("lax"))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("bogus"))
	assert.Equal(t, http.SameSiteStrictMode, parseSameSite("strict"))
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite("None"))
}
