package autoblock

import (
	"github.com/ab-solanki/cookie/pkg/consent"
)

// DefaultRules covers the common analytics and marketing trackers. Hosts
// extend or trim the list through the Blocker rule operations.
func DefaultRules() []Rule {
	return []Rule{
		{ID: "google-analytics", Pattern: "google-analytics.com", Category: consent.CategoryAnalytics, Enabled: true},
		{ID: "gtag", Pattern: "googletagmanager.com", Category: consent.CategoryAnalytics, Enabled: true},
		{ID: "hotjar", Pattern: "hotjar.com", Category: consent.CategoryAnalytics, Enabled: true},
		{ID: "clarity", Pattern: "clarity.ms", Category: consent.CategoryAnalytics, Enabled: true},
		{ID: "mixpanel", Pattern: "cdn.mxpnl.com", Category: consent.CategoryAnalytics, Enabled: true},
		{ID: "doubleclick", Pattern: "doubleclick.net", Category: consent.CategoryMarketing, Enabled: true},
		{ID: "facebook-sdk", Pattern: "connect.facebook.net", Category: consent.CategoryMarketing, Enabled: true},
		{ID: "facebook-pixel", Pattern: "facebook.com/tr", Category: consent.CategoryMarketing, Enabled: true},
		{ID: "ads-twitter", Pattern: "static.ads-twitter.com", Category: consent.CategoryMarketing, Enabled: true},
		{ID: "linkedin-insight", Pattern: "snap.licdn.com", Category: consent.CategoryMarketing, Enabled: true},
	}
}
