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

package authz

import (
	"fmt"
	"slices"

	"github.com/ab-solanki/cookie/internal/system/constants"
	"github.com/ab-solanki/cookie/internal/system/log"
)

// Operations gated by the admin API.
const (
	OpReadConfig    = "cookie_config:read"
	OpWriteConfig   = "cookie_config:write"
	OpReadAnalytics = "analytics:read"
)

// rolePermissions maps the token role claim to the operations it grants.
// Viewers read, editors and admins also write.
var rolePermissions = map[string][]string{
	constants.RoleViewer: {OpReadConfig, OpReadAnalytics},
	constants.RoleEditor: {OpReadConfig, OpWriteConfig, OpReadAnalytics},
	constants.RoleAdmin:  {OpReadConfig, OpWriteConfig, OpReadAnalytics},
}

// ValidatePermission checks if the provided role grants the operation.
func ValidatePermission(role string, operation string) bool {

	logger := log.GetLogger()
	if role == "" {
		logger.Debug(fmt.Sprintf("No role provided for operation: %s", operation))
		return false
	}

	granted, ok := rolePermissions[role]
	if !ok {
		logger.Debug(fmt.Sprintf("Unknown role %s for operation: %s", role, operation))
		return false
	}

	return slices.Contains(granted, operation)
}
