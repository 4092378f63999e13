package consent

import (
	"github.com/caarlos0/env/v6"
)

const (
	DefaultCookieName = "ns-cookie-consent"
	DefaultExpiryDays = 365
	DefaultVersion    = "1.0"
)

// Category declares one consent category the banner offers. Required
// categories cannot be rejected.
type Category struct {
	Name     string
	Required bool
}

// CookieOptions shape the consent cookie. All attributes are configurable;
// the env tags let hosts drive them from the environment.
type CookieOptions struct {
	Name       string `env:"CONSENT_COOKIE_NAME" envDefault:"ns-cookie-consent"`
	ExpiryDays int    `env:"CONSENT_COOKIE_EXPIRY_DAYS" envDefault:"365"`
	Path       string `env:"CONSENT_COOKIE_PATH" envDefault:"/"`
	Domain     string `env:"CONSENT_COOKIE_DOMAIN"`
	Secure     bool   `env:"CONSENT_COOKIE_SECURE" envDefault:"false"`
	SameSite   string `env:"CONSENT_COOKIE_SAMESITE" envDefault:"Lax"`
}

// CookieOptionsFromEnv reads CookieOptions from the process environment.
func CookieOptionsFromEnv() (CookieOptions, error) {
	var opts CookieOptions
	if err := env.Parse(&opts); err != nil {
		return CookieOptions{}, err
	}
	return opts, nil
}

// Options configure a Manager. Nil Sink and Store fall back to no-ops, so
// absent integrations are never an error.
type Options struct {
	Cookie     CookieOptions
	Categories []Category
	AutoShow   bool
	Version    string
	Sink       SideEffectSink
	Store      PreferenceStore
}

// DefaultCategories returns the standard four-category taxonomy with
// essential marked required.
func DefaultCategories() []Category {
	return []Category{
		{Name: CategoryEssential, Required: true},
		{Name: CategoryAnalytics},
		{Name: CategoryMarketing},
		{Name: CategoryPreferences},
	}
}

func (o *Options) applyDefaults() {
	if o.Cookie.Name == "" {
		o.Cookie.Name = DefaultCookieName
	}
	if o.Cookie.ExpiryDays <= 0 {
		o.Cookie.ExpiryDays = DefaultExpiryDays
	}
	if o.Cookie.Path == "" {
		o.Cookie.Path = "/"
	}
	if o.Cookie.SameSite == "" {
		o.Cookie.SameSite = "Lax"
	}
	if len(o.Categories) == 0 {
		o.Categories = DefaultCategories()
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.Sink == nil {
		o.Sink = NoopSink{}
	}
	if o.Store == nil {
		o.Store = NoopPreferenceStore{}
	}
}
