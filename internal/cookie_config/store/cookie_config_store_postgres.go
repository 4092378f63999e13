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
	"encoding/json"
	"fmt"

	"github.com/ab-solanki/cookie/internal/cookie_config/model"
	"github.com/ab-solanki/cookie/internal/system/database/provider"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/utils"
)

// CookieConfigStorePostgres persists configuration documents as JSONB rows
// in the cookie_config table, keyed by language.
type CookieConfigStorePostgres struct{}

// GetEnabledConfig fetches the enabled document for a language.
func (s *CookieConfigStorePostgres) GetEnabledConfig(language string) (*model.CookieConfig, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching cookie config: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_COOKIE_CONFIG.Code,
			Message:     errors2.GET_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT document FROM cookie_config WHERE language = $1 AND enabled = TRUE`
	results, err := dbClient.ExecuteQuery(query, language)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching cookie config: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_COOKIE_CONFIG.Code,
			Message:     errors2.GET_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No enabled cookie config found for language: %s", language))
		return nil, nil
	}
	cookieConfig, err := decodeConfigDocument(results[0]["document"])
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to decode cookie config document for language: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_COOKIE_CONFIG.Code,
			Message:     errors2.GET_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	return cookieConfig, nil
}

// ListConfigs fetches every document including disabled ones.
func (s *CookieConfigStorePostgres) ListConfigs() ([]model.CookieConfig, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for listing cookie configs."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT document FROM cookie_config ORDER BY language`
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to execute query for listing cookie configs."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}

	configs := make([]model.CookieConfig, 0, len(results))
	for _, row := range results {
		cookieConfig, err := decodeConfigDocument(row["document"])
		if err != nil {
			errorMsg := "Failed to decode cookie config document."
			logger.Debug(errorMsg, log.Error(err))
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.LIST_COOKIE_CONFIGS.Code,
				Message:     errors2.LIST_COOKIE_CONFIGS.Message,
				Description: errorMsg,
			}, err)
		}
		configs = append(configs, *cookieConfig)
	}
	return configs, nil
}

// ListEnabledLanguages selects language, country and region of every enabled
// row, sorted by language.
func (s *CookieConfigStorePostgres) ListEnabledLanguages() ([]model.LanguageInfo, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for listing available languages."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT language, country, region FROM cookie_config WHERE enabled = TRUE ORDER BY language`
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to execute query for listing available languages."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}

	languages := make([]model.LanguageInfo, 0, len(results))
	for _, row := range results {
		languages = append(languages, model.LanguageInfo{
			Language: utils.TextColumn(row["language"]),
			Country:  utils.TextColumn(row["country"]),
			Region:   utils.TextColumn(row["region"]),
		})
	}
	return languages, nil
}

// UpsertConfig creates or fully replaces the row for its language.
func (s *CookieConfigStorePostgres) UpsertConfig(cookieConfig model.CookieConfig) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for upserting cookie config: %s", cookieConfig.Language)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_COOKIE_CONFIG.Code,
			Message:     errors2.UPSERT_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	document, err := json.Marshal(cookieConfig)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to marshal cookie config for language: %s", cookieConfig.Language)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: errorMsg,
		}, err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for upserting cookie config: %s", cookieConfig.Language)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_COOKIE_CONFIG.Code,
			Message:     errors2.UPSERT_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO cookie_config (language, country, region, enabled, document, updated_at, updated_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (language) DO UPDATE SET
					country = EXCLUDED.country,
					region = EXCLUDED.region,
					enabled = EXCLUDED.enabled,
					document = EXCLUDED.document,
					updated_at = EXCLUDED.updated_at,
					updated_by = EXCLUDED.updated_by`
	_, err = tx.Exec(query, cookieConfig.Language, cookieConfig.Country, cookieConfig.Region,
		cookieConfig.Enabled, document, cookieConfig.UpdatedAt, cookieConfig.UpdatedBy)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback upserting cookie config: %s", cookieConfig.Language)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPSERT_COOKIE_CONFIG.Code,
				Message:     errors2.UPSERT_COOKIE_CONFIG.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for upserting cookie config: %s", cookieConfig.Language)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_COOKIE_CONFIG.Code,
			Message:     errors2.UPSERT_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully upserted cookie config for language: %s", cookieConfig.Language))
	return tx.Commit()
}

// DeleteConfig removes the row for a language and reports whether one existed.
func (s *CookieConfigStorePostgres) DeleteConfig(language string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting cookie config: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_COOKIE_CONFIG.Code,
			Message:     errors2.DELETE_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for deleting cookie config: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_COOKIE_CONFIG.Code,
			Message:     errors2.DELETE_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}

	query := `DELETE FROM cookie_config WHERE language = $1`
	result, err := tx.Exec(query, language)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback deleting cookie config", log.Error(errRollback))
		}
		errorMsg := fmt.Sprintf("Failed to execute query for deleting cookie config: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_COOKIE_CONFIG.Code,
			Message:     errors2.DELETE_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		affected = 0
	}
	return affected > 0, tx.Commit()
}

// decodeConfigDocument unmarshals the JSONB document column.
func decodeConfigDocument(raw interface{}) (*model.CookieConfig, error) {
	data := utils.DocumentColumn(raw)
	if data == nil {
		return nil, fmt.Errorf("unexpected document column type %T", raw)
	}

	var cookieConfig model.CookieConfig
	if err := json.Unmarshal(data, &cookieConfig); err != nil {
		return nil, err
	}
	return &cookieConfig, nil
}
