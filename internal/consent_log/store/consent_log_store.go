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
	"github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/system/config"
)

// ConsentLogStoreInterface defines the persistence operations for consent
// events. The log is append-only; AggregateByActionLanguage is the stage one
// grouping with the filter applied before grouping.
type ConsentLogStoreInterface interface {
	InsertEntry(entry model.ConsentLogEntry) error
	AggregateByActionLanguage(filter model.AnalyticsFilter) ([]model.ActionStat, error)
}

// GetConsentLogStore returns the store for the configured datasource engine.
// Mongo is the default; postgres must be selected explicitly.
func GetConsentLogStore() ConsentLogStoreInterface {
	if config.GetCCSRuntime().Config.DataSource.Type == "postgres" {
		return &ConsentLogStorePostgres{}
	}
	return NewConsentLogStoreMongo()
}
