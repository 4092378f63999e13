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

package mongodb

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ab-solanki/cookie/internal/system/log"
)

// MongoDB holds the shared client and database handle.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	mongoInstance *MongoDB
	connectErr    error
	once          sync.Once
)

// Connect initializes the shared MongoDB connection. Subsequent calls return
// the instance created by the first.
func Connect(uri, dbName string) (*MongoDB, error) {
	once.Do(func() {
		logger := log.GetLogger()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		clientOptions := options.Client().ApplyURI(uri)
		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			logger.Error("MongoDB connection failed", log.Error(err))
			connectErr = err
			return
		}

		// Ping to ensure connection is live
		if err := client.Ping(ctx, nil); err != nil {
			logger.Error("MongoDB ping failed", log.Error(err))
			connectErr = err
			return
		}

		mongoInstance = &MongoDB{
			Client:   client,
			Database: client.Database(dbName),
		}
		logger.Info("Connected to MongoDB")
	})

	return mongoInstance, connectErr
}

// GetInstance returns the MongoDB instance, or nil before Connect.
func GetInstance() *MongoDB {
	return mongoInstance
}

// OverrideInstance replaces the shared instance. Intended for tests.
func OverrideInstance(instance *MongoDB) {
	mongoInstance = instance
}
