package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveEveryEUMemberShortCircuits(t *testing.T) {
	members := []string{
		"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE",
		"GR", "HU", "IE", "IT", "LV", "LT", "LU", "MT", "NL", "PL", "PT",
		"RO", "SK", "SI", "ES", "SE",
	}
	assert.Len(t, members, 27)

	for _, country := range members {
		policy := Resolve(Location{CountryCode: country}, DefaultPolicy())
		assert.Equal(t, RegionEU, policy.Region, country)
		assert.True(t, policy.RequiresConsent, country)
		assert.Equal(t, OptIn, policy.ConsentType, country)
		assert.Contains(t, policy.Laws, "GDPR", country)
	}
}

func TestResolveGB(t *testing.T) {
	policy := Resolve(Location{CountryCode: "GB"}, DefaultPolicy())

	assert.Equal(t, RegionGB, policy.Region)
	assert.Equal(t, OptIn, policy.ConsentType)
	assert.Equal(t, []string{"UK-GDPR", "PECR"}, policy.Laws)
}

func TestResolveCaliforniaNeedsBothCodes(t *testing.T) {
	california := Resolve(Location{CountryCode: "US", RegionCode: "CA"}, DefaultPolicy())
	assert.Equal(t, RegionCalifornia, california.Region)
	assert.Equal(t, OptOut, california.ConsentType)
	assert.False(t, california.RequiresConsent)

	newYork := Resolve(Location{CountryCode: "US", RegionCode: "NY"}, DefaultPolicy())
	assert.Equal(t, RegionOther, newYork.Region)

	lowercase := Resolve(Location{CountryCode: "us", RegionCode: "ca"}, DefaultPolicy())
	assert.Equal(t, RegionCalifornia, lowercase.Region)
}

func TestResolveNormalizesCountryCode(t *testing.T) {
	assert.Equal(t, RegionEU, Resolve(Location{CountryCode: "fr"}, DefaultPolicy()).Region)
	assert.Equal(t, RegionEU, Resolve(Location{CountryCode: " de "}, DefaultPolicy()).Region)
}

func TestResolveUnmatchedReturnsGivenFallback(t *testing.T) {
	fallback := Policy{Region: RegionOther, RequiresConsent: true, ConsentType: OptIn, BannerVerbosity: VerbosityFull}

	policy := Resolve(Location{CountryCode: "JP"}, fallback)

	assert.Equal(t, fallback, policy)
}

func TestLocateResolvesFromEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"country_code":"FR","region_code":""}`))
	}))
	defer server.Close()

	locator := NewLocator(LocatorOptions{Endpoint: server.URL})
	policy := locator.Locate(context.Background())

	assert.Equal(t, RegionEU, policy.Region)
}

func TestLocateResolvesCalifornia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"country_code":"US","region_code":"CA"}`))
	}))
	defer server.Close()

	locator := NewLocator(LocatorOptions{Endpoint: server.URL})

	assert.Equal(t, RegionCalifornia, locator.Locate(context.Background()).Region)
}

func TestLocateFallsBackOnFailure(t *testing.T) {
	fallback := Policy{Region: RegionOther, RequiresConsent: true, ConsentType: OptIn, BannerVerbosity: VerbosityMinimal}

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
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "empty country code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"country_code":"","region_code":""}`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			locator := NewLocator(LocatorOptions{Endpoint: server.URL, Fallback: fallback})

			assert.Equal(t, fallback, locator.Locate(context.Background()))
		})
	}
}

func TestLocateFallsBackOnNetworkError(t *testing.T) {
	locator := NewLocator(LocatorOptions{
		Endpoint: "http://127.0.0.1:1",
		Timeout:  200 * time.Millisecond,
	})

	assert.Equal(t, DefaultPolicy(), locator.Locate(context.Background()))
}
