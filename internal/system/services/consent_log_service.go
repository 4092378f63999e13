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

package services

import (
	"fmt"
	"net/http"

	"github.com/ab-solanki/cookie/internal/consent_log/handler"
	"github.com/ab-solanki/cookie/internal/system/constants"
)

// ConsentLogService exposes the public consent event intake and the admin
// analytics read.
type ConsentLogService struct {
	handler *handler.ConsentLogHandler
}

// NewConsentLogService creates a new ConsentLogService instance and
// registers its routes.
func NewConsentLogService(mux *http.ServeMux) *ConsentLogService {
	instance := &ConsentLogService{
		handler: handler.NewConsentLogHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the consent log routes.
func (s *ConsentLogService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("POST %s", constants.ConsentLogApiPath), s.handler.LogConsent)
	mux.HandleFunc(fmt.Sprintf("GET %s", constants.ConsentAnalyticsApiPath), s.handler.GetConsentAnalytics)
}
