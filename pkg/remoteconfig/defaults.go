package remoteconfig

// defaultDocuments are the bundled configurations used when the service is
// unreachable. English doubles as the fallback for unknown languages.
var defaultDocuments = map[string]map[string]interface{}{
	"en": {
		"language": "en",
		"version":  "1.0",
		"texts": map[string]interface{}{
			"title":            "We value your privacy",
			"message":          "We use cookies to improve your experience, analyze traffic and show relevant content. You can accept all cookies, reject the optional ones or customize your choices.",
			"acceptAll":        "Accept all",
			"rejectAll":        "Reject all",
			"customize":        "Customize",
			"savePreferences":  "Save preferences",
			"modalTitle":       "Cookie preferences",
			"modalDescription": "Choose which categories of cookies this site may use.",
		},
		"categories": []interface{}{
			map[string]interface{}{
				"name":         "essential",
				"description":  "Required for the site to work. Always on.",
				"required":     true,
				"enabled":      true,
				"displayOrder": 1,
			},
			map[string]interface{}{
				"name":         "analytics",
				"description":  "Help us understand how the site is used.",
				"required":     false,
				"enabled":      true,
				"displayOrder": 2,
			},
			map[string]interface{}{
				"name":         "marketing",
				"description":  "Used to show relevant ads and measure campaigns.",
				"required":     false,
				"enabled":      true,
				"displayOrder": 3,
			},
			map[string]interface{}{
				"name":         "preferences",
				"description":  "Remember choices such as language and region.",
				"required":     false,
				"enabled":      true,
				"displayOrder": 4,
			},
		},
		"ui": map[string]interface{}{
			"primaryColor":    "#2d7ff9",
			"secondaryColor":  "#f5f7fa",
			"backgroundColor": "#ffffff",
			"textColor":       "#1f2933",
			"fontFamily":      "system-ui, sans-serif",
			"position":        "bottom",
		},
		"cookie": map[string]interface{}{
			"name":       "ns-cookie-consent",
			"expiryDays": 365,
			"path":       "/",
			"secure":     false,
			"sameSite":   "Lax",
		},
	},
	"de": {
		"language": "de",
		"version":  "1.0",
		"texts": map[string]interface{}{
			"title":            "Wir respektieren Ihre Privatsphäre",
			"message":          "Wir verwenden Cookies, um Ihr Erlebnis zu verbessern, den Datenverkehr zu analysieren und relevante Inhalte anzuzeigen. Sie können alle Cookies akzeptieren, die optionalen ablehnen oder Ihre Auswahl anpassen.",
			"acceptAll":        "Alle akzeptieren",
			"rejectAll":        "Alle ablehnen",
			"customize":        "Anpassen",
			"savePreferences":  "Auswahl speichern",
			"modalTitle":       "Cookie-Einstellungen",
			"modalDescription": "Wählen Sie, welche Cookie-Kategorien diese Website verwenden darf.",
		},
		"categories": []interface{}{
			map[string]interface{}{
				"name":         "essential",
				"description":  "Für den Betrieb der Website erforderlich. Immer aktiv.",
				"required":     true,
				"enabled":      true,
				"displayOrder": 1,
			},
			map[string]interface{}{
				"name":         "analytics",
				"description":  "Hilft uns zu verstehen, wie die Website genutzt wird.",
				"required":     false,
				"enabled":      true,
				"displayOrder": 2,
			},
			map[string]interface{}{
				"name":         "marketing",
				"description":  "Für relevante Werbung und Kampagnenmessung.",
				"required":     false,
				"enabled":      true,
				"displayOrder": 3,
			},
			map[string]interface{}{
				"name":         "preferences",
				"description":  "Speichert Auswahl wie Sprache und Region.",
				"required":     false,
				"enabled":      true,
				"displayOrder": 4,
			},
		},
		"ui": map[string]interface{}{
			"primaryColor":    "#2d7ff9",
			"secondaryColor":  "#f5f7fa",
			"backgroundColor": "#ffffff",
			"textColor":       "#1f2933",
			"fontFamily":      "system-ui, sans-serif",
			"position":        "bottom",
		},
		"cookie": map[string]interface{}{
			"name":       "ns-cookie-consent",
			"expiryDays": 365,
			"path":       "/",
			"secure":     false,
			"sameSite":   "Lax",
		},
	},
}

// bundledDefaults returns the bundled document for a language, or the
// English document when the language has no bundle.
func bundledDefaults(language string) map[string]interface{} {
	if document, ok := defaultDocuments[language]; ok {
		return document
	}
	return defaultDocuments[DefaultLanguage]
}
