/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ab-solanki/cookie/internal/cookie_config/model"
	"github.com/ab-solanki/cookie/internal/cookie_config/store"
	"github.com/ab-solanki/cookie/internal/system/cache"
	"github.com/ab-solanki/cookie/internal/system/config"
	"github.com/ab-solanki/cookie/internal/system/constants"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
)

// Field length ceilings applied on the admin write path.
const (
	maxTitleLength   = 200
	maxMessageLength = 2000
	maxLabelLength   = 100
)

var (
	languageKeyRegex = regexp.MustCompile(constants.LanguageKeyPattern)
	hexColorRegex    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// CookieConfigServiceInterface defines the service interface.
type CookieConfigServiceInterface interface {
	GetConfigByLanguage(language string) (*model.CookieConfig, string, error)
	GetDefaultConfig() (*model.CookieConfig, string, error)
	GetAvailableLanguages() ([]model.LanguageInfo, error)
	ListConfigs() ([]model.CookieConfig, error)
	UpsertConfig(language string, cookieConfig model.CookieConfig, updatedBy string) (*model.CookieConfig, error)
	DeleteConfig(language string) error
}

// CookieConfigService is the default implementation of CookieConfigServiceInterface.
type CookieConfigService struct {
	store       store.CookieConfigStoreInterface
	configCache *cache.Cache
}

var (
	configCache     *cache.Cache
	configCacheOnce sync.Once
)

// ConfigCache returns the shared read cache for enabled configurations, or
// nil when caching is disabled. The eviction scheduler purges its expired
// entries.
func ConfigCache() *cache.Cache {
	configCacheOnce.Do(func() {
		cacheConf := config.GetCCSRuntime().Config.Cache
		if !cacheConf.Enabled {
			return
		}
		ttlSeconds := cacheConf.TTLSeconds
		if ttlSeconds <= 0 {
			ttlSeconds = constants.DefaultCacheTTLSeconds
		}
		configCache = cache.NewCache(time.Duration(ttlSeconds) * time.Second)
	})
	return configCache
}

// GetCookieConfigService returns a concrete service with store injected
func GetCookieConfigService() CookieConfigServiceInterface {
	return &CookieConfigService{
		store:       store.GetCookieConfigStore(),
		configCache: ConfigCache(),
	}
}

// GetConfigByLanguage serves the enabled configuration for a language and
// reports whether it was answered from the cache or the store.
func (s *CookieConfigService) GetConfigByLanguage(language string) (*model.CookieConfig, string, error) {

	language = normalizeLanguage(language)

	if s.configCache != nil {
		if cached, found := s.configCache.Get(language); found {
			if cookieConfig, ok := cached.(model.CookieConfig); ok {
				return &cookieConfig, constants.SourceCache, nil
			}
		}
	}

	cookieConfig, err := s.store.GetEnabledConfig(language)
	if err != nil {
		return nil, "", err
	}
	if cookieConfig == nil {
		return nil, "", errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.COOKIE_CONFIG_NOT_FOUND.Code,
			Message:     errors2.COOKIE_CONFIG_NOT_FOUND.Message,
			Description: fmt.Sprintf("No enabled cookie configuration exists for language %q.", language),
		}, http.StatusNotFound)
	}

	if s.configCache != nil {
		s.configCache.Set(language, *cookieConfig)
	}
	return cookieConfig, constants.SourceDatabase, nil
}

// GetDefaultConfig serves the configuration for the default language.
func (s *CookieConfigService) GetDefaultConfig() (*model.CookieConfig, string, error) {
	return s.GetConfigByLanguage(constants.DefaultLanguage)
}

// GetAvailableLanguages lists every enabled configuration as a
// {language, country, region} entry, sorted ascending by language.
func (s *CookieConfigService) GetAvailableLanguages() ([]model.LanguageInfo, error) {

	languages, err := s.store.ListEnabledLanguages()
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		return []model.LanguageInfo{}, nil
	}
	return languages, nil
}

// ListConfigs returns every stored configuration, disabled ones included.
func (s *CookieConfigService) ListConfigs() ([]model.CookieConfig, error) {

	configs, err := s.store.ListConfigs()
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return []model.CookieConfig{}, nil
	}
	return configs, nil
}

// UpsertConfig validates and stores a configuration document, then evicts
// the cache entry for its language. The path language wins over any language
// carried in the body.
func (s *CookieConfigService) UpsertConfig(language string, cookieConfig model.CookieConfig, updatedBy string) (*model.CookieConfig, error) {

	language = normalizeLanguage(language)
	details := validateCookieConfig(language, cookieConfig)
	if len(details) > 0 {
		return nil, errors2.NewClientErrorWithDetails(errors2.ErrorMessage{
			Code:    errors2.COOKIE_CONFIG_VALIDATION.Code,
			Message: errors2.COOKIE_CONFIG_VALIDATION.Message,
		}, http.StatusBadRequest, details)
	}

	cookieConfig.Language = language
	if cookieConfig.Version == "" {
		cookieConfig.Version = constants.ConsentSchemaVersion
	}
	applyCookieDefaults(&cookieConfig)
	cookieConfig.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	cookieConfig.UpdatedBy = updatedBy

	if err := s.store.UpsertConfig(cookieConfig); err != nil {
		return nil, err
	}
	if s.configCache != nil {
		s.configCache.Delete(language)
	}
	return &cookieConfig, nil
}

// DeleteConfig removes a configuration and evicts its cache entry.
func (s *CookieConfigService) DeleteConfig(language string) error {

	language = normalizeLanguage(language)
	if !languageKeyRegex.MatchString(language) {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_LANGUAGE.Code,
			Message:     errors2.INVALID_LANGUAGE.Message,
			Description: errors2.INVALID_LANGUAGE.Description,
		}, http.StatusBadRequest)
	}

	found, err := s.store.DeleteConfig(language)
	if err != nil {
		return err
	}
	if !found {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.COOKIE_CONFIG_NOT_FOUND.Code,
			Message:     errors2.COOKIE_CONFIG_NOT_FOUND.Message,
			Description: fmt.Sprintf("No cookie configuration exists for language %q.", language),
		}, http.StatusNotFound)
	}
	if s.configCache != nil {
		s.configCache.Delete(language)
	}
	return nil
}

func normalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

// applyCookieDefaults fills cookie settings the document omits so the
// public payload is always complete for the widget.
func applyCookieDefaults(cookieConfig *model.CookieConfig) {
	if cookieConfig.Cookie.Name == "" {
		cookieConfig.Cookie.Name = constants.DefaultCookieName
	}
	if cookieConfig.Cookie.ExpiryDays == 0 {
		cookieConfig.Cookie.ExpiryDays = constants.DefaultCookieExpiryDays
	}
	if cookieConfig.Cookie.Path == "" {
		cookieConfig.Cookie.Path = "/"
	}
	if cookieConfig.Cookie.SameSite == "" {
		cookieConfig.Cookie.SameSite = "Lax"
	}
}

// validateCookieConfig collects one message per violated field so a single
// response can report everything that is wrong with the document.
func validateCookieConfig(language string, cookieConfig model.CookieConfig) []string {

	var details []string

	if !languageKeyRegex.MatchString(language) {
		details = append(details, "language: must be two lowercase letters with an optional region suffix, for example en or pt-br")
	}

	details = append(details, validateTexts(cookieConfig.Texts)...)
	details = append(details, validateCategories(cookieConfig.Categories)...)
	details = append(details, validateUISettings(cookieConfig.UI)...)
	details = append(details, validateCookieSettings(cookieConfig.Cookie)...)

	return details
}

func validateTexts(texts model.BannerTexts) []string {

	var details []string

	required := []struct {
		field, value string
		maxLength    int
	}{
		{"texts.title", texts.Title, maxTitleLength},
		{"texts.message", texts.Message, maxMessageLength},
		{"texts.acceptAll", texts.AcceptAll, maxLabelLength},
		{"texts.rejectAll", texts.RejectAll, maxLabelLength},
	}
	for _, t := range required {
		if strings.TrimSpace(t.value) == "" {
			details = append(details, t.field+": must not be empty")
		} else if len(t.value) > t.maxLength {
			details = append(details, fmt.Sprintf("%s: must be at most %d characters", t.field, t.maxLength))
		}
	}

	optional := []struct {
		field, value string
		maxLength    int
	}{
		{"texts.customize", texts.Customize, maxLabelLength},
		{"texts.savePreferences", texts.SavePreferences, maxLabelLength},
		{"texts.modalTitle", texts.ModalTitle, maxTitleLength},
		{"texts.modalDescription", texts.ModalDescription, maxMessageLength},
	}
	for _, t := range optional {
		if t.value != "" && len(t.value) > t.maxLength {
			details = append(details, fmt.Sprintf("%s: must be at most %d characters", t.field, t.maxLength))
		}
	}

	if texts.PrivacyPolicyURL != "" {
		parsed, err := url.Parse(texts.PrivacyPolicyURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			details = append(details, "texts.privacyPolicyUrl: must be an absolute http or https URL")
		}
	}

	return details
}

func validateCategories(categories []model.Category) []string {

	var details []string

	if len(categories) == 0 {
		details = append(details, "categories: must not be empty")
		return details
	}

	seen := make(map[string]bool)
	hasEssential := false
	for i, category := range categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			details = append(details, fmt.Sprintf("categories[%d].name: must not be empty", i))
			continue
		}
		if seen[name] {
			details = append(details, fmt.Sprintf("categories[%d].name: duplicate category %s", i, name))
		}
		seen[name] = true
		if name == constants.CategoryEssential {
			hasEssential = true
			if !category.Required {
				details = append(details, "categories: the essential category must be marked required")
			}
		}
	}
	if !hasEssential {
		details = append(details, "categories: must include the essential category")
	}

	return details
}

func validateUISettings(ui model.UISettings) []string {

	var details []string

	colors := []struct {
		field, value string
	}{
		{"ui.primaryColor", ui.PrimaryColor},
		{"ui.secondaryColor", ui.SecondaryColor},
		{"ui.backgroundColor", ui.BackgroundColor},
		{"ui.textColor", ui.TextColor},
	}
	for _, c := range colors {
		if c.value != "" && !hexColorRegex.MatchString(c.value) {
			details = append(details, c.field+": must be a six digit hex color, for example #2d7ff9")
		}
	}

	return details
}

func validateCookieSettings(cookie model.CookieSettings) []string {

	var details []string

	if cookie.SameSite != "" && !constants.AllowedSameSiteValues[cookie.SameSite] {
		details = append(details, "cookie.sameSite: must be one of Strict, Lax or None")
	}
	if cookie.ExpiryDays < 0 {
		details = append(details, "cookie.expiryDays: must not be negative")
	}

	return details
}
