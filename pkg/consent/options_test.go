package consent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieOptionsFromEnv(t *testing.T) {
	t.Setenv("CONSENT_COOKIE_NAME", "my-consent")
	t.Setenv("CONSENT_COOKIE_EXPIRY_DAYS", "30")
	t.Setenv("CONSENT_COOKIE_SECURE", "true")
	t.Setenv("CONSENT_COOKIE_SAMESITE", "Strict")

	opts, err := CookieOptionsFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "my-consent", opts.Name)
	assert.Equal(t, 30, opts.ExpiryDays)
	assert.Equal(t, "/", opts.Path)
	assert.True(t, opts.Secure)
	assert.Equal(t, "Strict", opts.SameSite)
}

func TestCookieOptionsFromEnvDefaults(t *testing.T) {
	opts, err := CookieOptionsFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, DefaultCookieName, opts.Name)
	assert.Equal(t, DefaultExpiryDays, opts.ExpiryDays)
	assert.Equal(t, "Lax", opts.SameSite)
}

func TestOptionsApplyDefaults(t *testing.T) {
	opts := Options{}
	opts.applyDefaults()

	assert.Equal(t, DefaultCookieName, opts.Cookie.Name)
	assert.Equal(t, DefaultExpiryDays, opts.Cookie.ExpiryDays)
	assert.Equal(t, "/", opts.Cookie.Path)
	assert.Equal(t, DefaultVersion, opts.Version)
	assert.Equal(t, DefaultCategories(), opts.Categories)
	assert.NotNil(t, opts.Sink)
	assert.NotNil(t, opts.Store)
}
