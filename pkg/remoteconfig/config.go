package remoteconfig

import (
	"github.com/ab-solanki/cookie/pkg/consent"
)

// Config is the merged banner configuration a widget host renders from. The
// field layout mirrors the configuration document served per language.
type Config struct {
	Language   string         `json:"language"`
	Version    string         `json:"version"`
	Texts      Texts          `json:"texts"`
	Categories []Category     `json:"categories"`
	UI         UISettings     `json:"ui"`
	Cookie     CookieSettings `json:"cookie"`
}

// Texts holds the banner and modal strings.
type Texts struct {
	Title            string `json:"title"`
	Message          string `json:"message"`
	AcceptAll        string `json:"acceptAll"`
	RejectAll        string `json:"rejectAll"`
	Customize        string `json:"customize"`
	SavePreferences  string `json:"savePreferences"`
	ModalTitle       string `json:"modalTitle"`
	ModalDescription string `json:"modalDescription"`
	PrivacyPolicyURL string `json:"privacyPolicyUrl"`
}

// Category is one consent category as served by the configuration service.
type Category struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Required     bool     `json:"required"`
	Cookies      []string `json:"cookies"`
	DisplayOrder int      `json:"displayOrder"`
	Enabled      bool     `json:"enabled"`
}

// UISettings carry the theme fields re-applied on a language switch.
type UISettings struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
	Position        string `json:"position"`
}

// CookieSettings shape the consent cookie as configured server side.
type CookieSettings struct {
	Name       string `json:"name"`
	ExpiryDays int    `json:"expiryDays"`
	Path       string `json:"path"`
	Domain     string `json:"domain"`
	Secure     bool   `json:"secure"`
	SameSite   string `json:"sameSite"`
}

// ConsentCategories adapts the served categories into the consent package's
// category list, ready for consent.Options.
func (c *Config) ConsentCategories() []consent.Category {
	categories := make([]consent.Category, 0, len(c.Categories))
	for _, category := range c.Categories {
		categories = append(categories, consent.Category{
			Name:     category.Name,
			Required: category.Required,
		})
	}
	return categories
}

// CookieOptions adapts the served cookie settings into consent.CookieOptions.
func (c *Config) CookieOptions() consent.CookieOptions {
	return consent.CookieOptions{
		Name:       c.Cookie.Name,
		ExpiryDays: c.Cookie.ExpiryDays,
		Path:       c.Cookie.Path,
		Domain:     c.Cookie.Domain,
		Secure:     c.Cookie.Secure,
		SameSite:   c.Cookie.SameSite,
	}
}
