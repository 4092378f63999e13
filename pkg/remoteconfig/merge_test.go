package remoteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ab-solanki/cookie/pkg/consent"
)

func TestDeepMergeMergesNestedMaps(t *testing.T) {
	dst := map[string]interface{}{
		"a": 1,
		"nested": map[string]interface{}{
			"x": 1,
			"y": 2,
		},
	}
	src := map[string]interface{}{
		"b": 2,
		"nested": map[string]interface{}{
			"y": 3,
			"z": 4,
		},
	}

	out := deepMerge(dst, src)

	assert.Equal(t, map[string]interface{}{
		"a": 1,
		"b": 2,
		"nested": map[string]interface{}{
			"x": 1,
			"y": 3,
			"z": 4,
		},
	}, out)

	// Inputs stay untouched.
	assert.Equal(t, 2, dst["nested"].(map[string]interface{})["y"])
	assert.NotContains(t, src, "a")
}

func TestDeepMergeReplacesArraysWholesale(t *testing.T) {
	dst := map[string]interface{}{"list": []interface{}{1, 2, 3}}
	src := map[string]interface{}{"list": []interface{}{4}}

	out := deepMerge(dst, src)

	assert.Equal(t, []interface{}{4}, out["list"])
}

func TestDeepMergeReplacesMismatchedTypesWholesale(t *testing.T) {
	dst := map[string]interface{}{"value": map[string]interface{}{"x": 1}}
	src := map[string]interface{}{"value": "plain"}

	out := deepMerge(dst, src)
	assert.Equal(t, "plain", out["value"])

	out = deepMerge(src, dst)
	assert.Equal(t, map[string]interface{}{"x": 1}, out["value"])
}

func TestDecodeConfigDropsUnknownAndMistypedKeys(t *testing.T) {
	config := decodeConfig(map[string]interface{}{
		"language": "en",
		"bogus":    1,
		"ui":       "not an object",
	})

	assert.Equal(t, "en", config.Language)
	assert.Equal(t, UISettings{}, config.UI)
}

func TestConsentAdapters(t *testing.T) {
	config := &Config{
		Categories: []Category{
			{Name: "essential", Required: true},
			{Name: "analytics"},
		},
		Cookie: CookieSettings{
			Name:       "cc",
			ExpiryDays: 30,
			Path:       "/",
			Secure:     true,
			SameSite:   "Strict",
		},
	}

	assert.Equal(t, []consent.Category{
		{Name: "essential", Required: true},
		{Name: "analytics"},
	}, config.ConsentCategories())

	assert.Equal(t, consent.CookieOptions{
		Name:       "cc",
		ExpiryDays: 30,
		Path:       "/",
		Secure:     true,
		SameSite:   "Strict",
	}, config.CookieOptions())
}
