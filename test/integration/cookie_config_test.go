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

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	model "github.com/ab-solanki/cookie/internal/cookie_config/model"
	"github.com/ab-solanki/cookie/internal/cookie_config/service"
	"github.com/ab-solanki/cookie/internal/system/constants"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
)

func bannerConfig(title string) model.CookieConfig {
	return model.CookieConfig{
		Enabled: true,
		Texts: model.BannerTexts{
			Title:     title,
			Message:   "We use cookies to improve your browsing experience.",
			AcceptAll: "Accept All",
			RejectAll: "Reject All",
		},
		Categories: []model.Category{
			{Name: "essential", Required: true, Enabled: true, DisplayOrder: 1},
			{Name: "analytics", Enabled: true, DisplayOrder: 2},
		},
		UI: model.UISettings{PrimaryColor: "#2d7ff9"},
	}
}

func Test_CookieConfig(t *testing.T) {
	svc := service.GetCookieConfigService()

	t.Run("Upsert_config", func(t *testing.T) {
		created, err := svc.UpsertConfig("en", bannerConfig("We value your privacy"), "admin@example.com")
		require.NoError(t, err, "Failed to upsert cookie config")
		require.Equal(t, "en", created.Language)
		require.Equal(t, "admin@example.com", created.UpdatedBy)
		require.Equal(t, constants.DefaultCookieName, created.Cookie.Name, "Expected cookie defaults to be applied")
	})

	t.Run("Get_config_by_language", func(t *testing.T) {
		fetched, source, err := svc.GetConfigByLanguage("en")
		require.NoError(t, err, "Failed to get cookie config")
		require.Equal(t, constants.SourceDatabase, source)
		require.Equal(t, "We value your privacy", fetched.Texts.Title)
		require.Equal(t, constants.DefaultCookieExpiryDays, fetched.Cookie.ExpiryDays)
	})

	t.Run("Get_default_config", func(t *testing.T) {
		fetched, _, err := svc.GetDefaultConfig()
		require.NoError(t, err)
		require.Equal(t, constants.DefaultLanguage, fetched.Language)
	})

	t.Run("Update_existing_config", func(t *testing.T) {
		_, err := svc.UpsertConfig("en", bannerConfig("Your privacy matters"), "admin@example.com")
		require.NoError(t, err, "Failed to update cookie config")

		fetched, _, err := svc.GetConfigByLanguage("en")
		require.NoError(t, err)
		require.Equal(t, "Your privacy matters", fetched.Texts.Title)
	})

	t.Run("Disabled_config_is_not_served", func(t *testing.T) {
		disabled := bannerConfig("Respect de votre vie privée")
		disabled.Enabled = false
		_, err := svc.UpsertConfig("fr", disabled, "admin@example.com")
		require.NoError(t, err)

		_, _, err = svc.GetConfigByLanguage("fr")
		clientError, ok := err.(*errors2.ClientError)
		require.True(t, ok, "Expected a client error for a disabled config")
		require.Equal(t, http.StatusNotFound, clientError.StatusCode)
	})

	t.Run("List_configs_includes_disabled", func(t *testing.T) {
		configs, err := svc.ListConfigs()
		require.NoError(t, err)

		languages := make([]string, 0, len(configs))
		for _, c := range configs {
			languages = append(languages, c.Language)
		}
		require.Contains(t, languages, "en")
		require.Contains(t, languages, "fr")
	})

	t.Run("Available_languages_lists_enabled_only", func(t *testing.T) {
		languages, err := svc.GetAvailableLanguages()
		require.NoError(t, err)

		codes := make([]string, 0, len(languages))
		for _, l := range languages {
			codes = append(codes, l.Language)
		}
		require.Contains(t, codes, "en")
		require.NotContains(t, codes, "fr", "Disabled configs must not be listed as available")
	})

	t.Run("Delete_config", func(t *testing.T) {
		err := svc.DeleteConfig("fr")
		require.NoError(t, err, "Failed to delete cookie config")

		_, _, err = svc.GetConfigByLanguage("fr")
		clientError, ok := err.(*errors2.ClientError)
		require.True(t, ok)
		require.Equal(t, http.StatusNotFound, clientError.StatusCode)
	})

	t.Run("Delete_missing_config", func(t *testing.T) {
		err := svc.DeleteConfig("fr")
		clientError, ok := err.(*errors2.ClientError)
		require.True(t, ok, "Expected a client error for a missing config")
		require.Equal(t, http.StatusNotFound, clientError.StatusCode)
	})
}
