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

package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ab-solanki/cookie/internal/system/log"
)

// Column value coercion for the SQL document stores.
//
// The database client returns rows as map[string]interface{}, and the
// concrete Go type behind each value depends on the driver and column type:
// text columns arrive as string, jsonb and bytea as []byte, counts as int64,
// timestamps as time.Time, NULL as nil. Store code reads scanned values
// through these helpers so an unexpected scan type degrades to the zero
// value instead of a panic.

// TextColumn coerces a scanned column to its string representation.
func TextColumn(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int64Column coerces a scanned column to int64, returning 0 for NULL or
// unparseable values.
func Int64Column(value interface{}) int64 {
	logger := log.GetLogger()
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		return parseInt64(string(v), logger)
	case string:
		return parseInt64(v, logger)
	case nil:
		return 0
	default:
		if logger != nil {
			logger.Debug(fmt.Sprintf("Cannot coerce type %T to int64", v))
		}
		return 0
	}
}

// BoolColumn coerces a scanned column to bool, returning false for NULL or
// unparseable values.
func BoolColumn(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case []byte:
		parsed, err := strconv.ParseBool(string(v))
		return err == nil && parsed
	case string:
		parsed, err := strconv.ParseBool(v)
		return err == nil && parsed
	default:
		return false
	}
}

// TimeColumn coerces a scanned column to time.Time, returning the zero time
// for NULL or unparseable values. Text values are expected in RFC3339.
func TimeColumn(value interface{}) time.Time {
	logger := log.GetLogger()
	switch v := value.(type) {
	case time.Time:
		return v
	case []byte:
		return parseTime(string(v), logger)
	case string:
		return parseTime(v, logger)
	case nil:
		return time.Time{}
	default:
		if logger != nil {
			logger.Debug(fmt.Sprintf("Cannot coerce type %T to time", v))
		}
		return time.Time{}
	}
}

// DocumentColumn coerces a scanned jsonb column to its raw bytes, returning
// nil for NULL.
func DocumentColumn(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

func parseInt64(value string, logger *log.Logger) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		if logger != nil {
			logger.Debug(fmt.Sprintf("Cannot coerce string '%s' to int64", value))
		}
		return 0
	}
	return parsed
}

func parseTime(value string, logger *log.Logger) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		if logger != nil {
			logger.Debug(fmt.Sprintf("Cannot coerce string '%s' to time", value))
		}
		return time.Time{}
	}
	return parsed
}
