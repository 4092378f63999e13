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
	"strings"

	"github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/system/database/provider"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/utils"
)

// ConsentLogStorePostgres appends consent events to the consent_log table.
// The category snapshot travels as a JSONB column; the grouping keys are
// promoted to real columns.
type ConsentLogStorePostgres struct{}

// InsertEntry appends one consent event.
func (s *ConsentLogStorePostgres) InsertEntry(entry model.ConsentLogEntry) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting consent log entry: %s", entry.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECORD_CONSENT.Code,
			Message:     errors2.RECORD_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	consentData, err := json.Marshal(entry.ConsentData)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to marshal consent data for entry: %s", entry.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: errorMsg,
		}, err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting consent log entry: %s", entry.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECORD_CONSENT.Code,
			Message:     errors2.RECORD_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO consent_log (id, session_id, language, action, consent_data, ip_address, user_agent, referrer, server_timestamp)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.Exec(query, entry.ID, entry.SessionID, entry.Language, entry.Action, consentData,
		entry.Metadata.IPAddress, entry.Metadata.UserAgent, entry.Metadata.Referrer, entry.ServerTimestamp)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback inserting consent log entry", log.Error(errRollback))
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting consent log entry: %s", entry.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECORD_CONSENT.Code,
			Message:     errors2.RECORD_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	return tx.Commit()
}

// AggregateByActionLanguage groups entries by (language, action) with a
// count and the most recent server timestamp. Filter conditions join the
// WHERE clause, so they apply before grouping.
func (s *ConsentLogStorePostgres) AggregateByActionLanguage(filter model.AnalyticsFilter) ([]model.ActionStat, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for aggregating consent log entries."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AGGREGATE_CONSENT.Code,
			Message:     errors2.AGGREGATE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT language, action, COUNT(*) AS count, MAX(server_timestamp) AS last_activity FROM consent_log`
	var conditions []string
	var args []interface{}
	if filter.Language != "" {
		args = append(args, filter.Language)
		conditions = append(conditions, fmt.Sprintf("language = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("server_timestamp >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("server_timestamp <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " GROUP BY language, action ORDER BY language, action"

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to execute query for aggregating consent log entries."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AGGREGATE_CONSENT.Code,
			Message:     errors2.AGGREGATE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}

	stats := make([]model.ActionStat, 0, len(results))
	for _, row := range results {
		stats = append(stats, model.ActionStat{
			Language:     utils.TextColumn(row["language"]),
			Action:       utils.TextColumn(row["action"]),
			Count:        utils.Int64Column(row["count"]),
			LastActivity: utils.TimeColumn(row["last_activity"]).UTC(),
		})
	}
	return stats, nil
}
