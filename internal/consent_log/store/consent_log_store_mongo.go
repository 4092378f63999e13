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
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/system/config"
	"github.com/ab-solanki/cookie/internal/system/constants"
	"github.com/ab-solanki/cookie/internal/system/database/mongodb"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
)

// ConsentLogStoreMongo appends consent events to a MongoDB collection and
// aggregates them with a $group pipeline.
type ConsentLogStoreMongo struct {
	collection *mongo.Collection
}

// NewConsentLogStoreMongo initializes a store over the configured collection.
func NewConsentLogStoreMongo() *ConsentLogStoreMongo {
	collectionName := config.GetCCSRuntime().Config.DataSource.Mongo.ConsentLogCollection
	if collectionName == "" {
		collectionName = constants.ConsentLogCollection
	}
	return &ConsentLogStoreMongo{
		collection: mongodb.GetInstance().Database.Collection(collectionName),
	}
}

// InsertEntry appends one consent event.
func (s *ConsentLogStoreMongo) InsertEntry(entry model.ConsentLogEntry) error {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.collection.InsertOne(ctx, entry)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to insert consent log entry: %s", entry.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECORD_CONSENT.Code,
			Message:     errors2.RECORD_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// actionStatRow matches the $group output shape.
type actionStatRow struct {
	ID struct {
		Language string `bson:"language"`
		Action   string `bson:"action"`
	} `bson:"_id"`
	Count        int64     `bson:"count"`
	LastActivity time.Time `bson:"last_activity"`
}

// AggregateByActionLanguage groups entries by (language, action) with a
// count and the most recent server timestamp. The filter becomes the $match
// stage, so it applies before grouping.
func (s *ConsentLogStoreMongo) AggregateByActionLanguage(filter model.AnalyticsFilter) ([]model.ActionStat, error) {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	match := bson.M{}
	if filter.Language != "" {
		match["language"] = filter.Language
	}
	timeRange := bson.M{}
	if !filter.From.IsZero() {
		timeRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		timeRange["$lte"] = filter.To
	}
	if len(timeRange) > 0 {
		match["server_timestamp"] = timeRange
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "language", Value: "$language"},
				{Key: "action", Value: "$action"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "last_activity", Value: bson.D{{Key: "$max", Value: "$server_timestamp"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.language", Value: 1},
			{Key: "_id.action", Value: 1},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		errorMsg := "Failed to aggregate consent log entries."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AGGREGATE_CONSENT.Code,
			Message:     errors2.AGGREGATE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var rows []actionStatRow
	if err := cursor.All(ctx, &rows); err != nil {
		errorMsg := "Failed to decode consent aggregation rows."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AGGREGATE_CONSENT.Code,
			Message:     errors2.AGGREGATE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}

	stats := make([]model.ActionStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, model.ActionStat{
			Language:     row.ID.Language,
			Action:       row.ID.Action,
			Count:        row.Count,
			LastActivity: row.LastActivity.UTC(),
		})
	}
	return stats, nil
}
