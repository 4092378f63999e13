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
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ab-solanki/cookie/internal/cookie_config/model"
	"github.com/ab-solanki/cookie/internal/system/config"
	"github.com/ab-solanki/cookie/internal/system/constants"
	"github.com/ab-solanki/cookie/internal/system/database/mongodb"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
)

// CookieConfigStoreMongo persists configuration documents in a MongoDB
// collection, one document per language.
type CookieConfigStoreMongo struct {
	collection *mongo.Collection
}

// NewCookieConfigStoreMongo initializes a store over the configured collection.
func NewCookieConfigStoreMongo() *CookieConfigStoreMongo {
	collectionName := config.GetCCSRuntime().Config.DataSource.Mongo.ConfigCollection
	if collectionName == "" {
		collectionName = constants.CookieConfigCollection
	}
	return &CookieConfigStoreMongo{
		collection: mongodb.GetInstance().Database.Collection(collectionName),
	}
}

// GetEnabledConfig fetches the enabled document for a language.
func (s *CookieConfigStoreMongo) GetEnabledConfig(language string) (*model.CookieConfig, error) {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"language": language, "enabled": true}
	var cookieConfig model.CookieConfig
	err := s.collection.FindOne(ctx, filter).Decode(&cookieConfig)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.Debug(fmt.Sprintf("No enabled cookie config found for language: %s", language))
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch cookie config for language: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_COOKIE_CONFIG.Code,
			Message:     errors2.GET_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	return &cookieConfig, nil
}

// ListConfigs fetches every document including disabled ones.
func (s *CookieConfigStoreMongo) ListConfigs() ([]model.CookieConfig, error) {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "language", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		errorMsg := "Failed to list cookie configs."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var configs []model.CookieConfig
	if err := cursor.All(ctx, &configs); err != nil {
		errorMsg := "Failed to decode cookie config documents."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}
	return configs, nil
}

// ListEnabledLanguages projects language, country and region of every
// enabled document, sorted by language.
func (s *CookieConfigStoreMongo) ListEnabledLanguages() ([]model.LanguageInfo, error) {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"language": 1, "country": 1, "region": 1}).
		SetSort(bson.D{{Key: "language", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{"enabled": true}, opts)
	if err != nil {
		errorMsg := "Failed to list available languages."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var languages []model.LanguageInfo
	if err := cursor.All(ctx, &languages); err != nil {
		errorMsg := "Failed to decode language listing."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COOKIE_CONFIGS.Code,
			Message:     errors2.LIST_COOKIE_CONFIGS.Message,
			Description: errorMsg,
		}, err)
	}
	return languages, nil
}

// UpsertConfig creates or fully replaces the document for its language.
func (s *CookieConfigStoreMongo) UpsertConfig(cookieConfig model.CookieConfig) error {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"language": cookieConfig.Language}
	_, err := s.collection.ReplaceOne(ctx, filter, cookieConfig, options.Replace().SetUpsert(true))
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to upsert cookie config for language: %s", cookieConfig.Language)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_COOKIE_CONFIG.Code,
			Message:     errors2.UPSERT_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully upserted cookie config for language: %s", cookieConfig.Language))
	return nil
}

// DeleteConfig removes the document for a language and reports whether one
// existed.
func (s *CookieConfigStoreMongo) DeleteConfig(language string) (bool, error) {

	logger := log.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"language": language})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete cookie config for language: %s", language)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_COOKIE_CONFIG.Code,
			Message:     errors2.DELETE_COOKIE_CONFIG.Message,
			Description: errorMsg,
		}, err)
	}
	return result.DeletedCount > 0, nil
}
