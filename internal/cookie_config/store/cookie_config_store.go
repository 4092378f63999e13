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

package store

import (
	"github.com/ab-solanki/cookie/internal/cookie_config/model"
	"github.com/ab-solanki/cookie/internal/system/config"
)

// CookieConfigStoreInterface defines the persistence operations for cookie
// configuration documents. Lookups return nil without error when no document
// matches.
type CookieConfigStoreInterface interface {
	GetEnabledConfig(language string) (*model.CookieConfig, error)
	ListConfigs() ([]model.CookieConfig, error)
	ListEnabledLanguages() ([]model.LanguageInfo, error)
	UpsertConfig(cookieConfig model.CookieConfig) error
	DeleteConfig(language string) (bool, error)
}

// GetCookieConfigStore returns the store for the configured datasource
// engine. Mongo is the default; postgres must be selected explicitly.
func GetCookieConfigStore() CookieConfigStoreInterface {
	if config.GetCCSRuntime().Config.DataSource.Type == "postgres" {
		return &CookieConfigStorePostgres{}
	}
	return NewCookieConfigStoreMongo()
}
