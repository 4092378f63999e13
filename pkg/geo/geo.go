// Package geo maps an IP-geolocation result to a consent policy region. The
// region set is small and fixed: EU and GB require opt-in consent before
// non-essential cookies, California runs an opt-out regime, and everything
// else gets a configurable fallback policy.
package geo

import (
	"strings"
)

// ConsentType is the consent regime a region enforces.
type ConsentType string

const (
	OptIn  ConsentType = "opt-in"
	OptOut ConsentType = "opt-out"
)

// Verbosity is how much banner a region demands.
type Verbosity string

const (
	VerbosityFull    Verbosity = "full"
	VerbosityMinimal Verbosity = "minimal"
)

// Region identifies one of the supported policy regions.
type Region string

const (
	RegionEU         Region = "EU"
	RegionGB         Region = "GB"
	RegionCalifornia Region = "US-CA"
	RegionOther      Region = "OTHER"
)

// Policy carries what the banner must do for a region.
type Policy struct {
	Region          Region      `json:"region"`
	RequiresConsent bool        `json:"requiresConsent"`
	ConsentType     ConsentType `json:"consentType"`
	Laws            []string    `json:"laws"`
	BannerVerbosity Verbosity   `json:"bannerVerbosity"`
}

// Location is the relevant slice of an IP-geolocation lookup result.
type Location struct {
	CountryCode string `json:"country_code"`
	RegionCode  string `json:"region_code"`
}

// euCountries is the static EU-27 membership set.
var euCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
}

// EUPolicy is the opt-in policy for EU member states.
func EUPolicy() Policy {
	return Policy{
		Region:          RegionEU,
		RequiresConsent: true,
		ConsentType:     OptIn,
		Laws:            []string{"GDPR", "ePrivacy"},
		BannerVerbosity: VerbosityFull,
	}
}

// GBPolicy is the opt-in policy for the United Kingdom.
func GBPolicy() Policy {
	return Policy{
		Region:          RegionGB,
		RequiresConsent: true,
		ConsentType:     OptIn,
		Laws:            []string{"UK-GDPR", "PECR"},
		BannerVerbosity: VerbosityFull,
	}
}

// CaliforniaPolicy is the opt-out policy for California residents.
func CaliforniaPolicy() Policy {
	return Policy{
		Region:          RegionCalifornia,
		RequiresConsent: false,
		ConsentType:     OptOut,
		Laws:            []string{"CCPA", "CPRA"},
		BannerVerbosity: VerbosityMinimal,
	}
}

// DefaultPolicy is the fallback of last resort for unmatched locations.
func DefaultPolicy() Policy {
	return Policy{
		Region:          RegionOther,
		RequiresConsent: false,
		ConsentType:     OptOut,
		BannerVerbosity: VerbosityMinimal,
	}
}

// Resolve maps a location to its policy. EU membership is checked against
// the static set first and short-circuits the single-country regions; an
// unmatched location resolves to the given fallback.
func Resolve(location Location, fallback Policy) Policy {
	country := strings.ToUpper(strings.TrimSpace(location.CountryCode))

	if _, ok := euCountries[country]; ok {
		return EUPolicy()
	}
	if country == "GB" {
		return GBPolicy()
	}
	if country == "US" && strings.EqualFold(strings.TrimSpace(location.RegionCode), "CA") {
		return CaliforniaPolicy()
	}
	return fallback
}
