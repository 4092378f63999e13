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

	"github.com/ab-solanki/cookie/internal/cookie_config/handler"
	"github.com/ab-solanki/cookie/internal/system/constants"
)

// CookieConfigService exposes the public configuration reads and the admin
// write surface.
type CookieConfigService struct {
	handler *handler.CookieConfigHandler
}

// NewCookieConfigService creates a new CookieConfigService instance and
// registers its routes.
func NewCookieConfigService(mux *http.ServeMux) *CookieConfigService {
	instance := &CookieConfigService{
		handler: handler.NewCookieConfigHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the cookie configuration routes. The exact
// languages pattern takes precedence over the language wildcard.
func (s *CookieConfigService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("GET %s", constants.CookieConfigApiPath), s.handler.GetDefaultCookieConfig)
	mux.HandleFunc(fmt.Sprintf("GET %s/languages", constants.CookieConfigApiPath), s.handler.GetAvailableLanguages)
	mux.HandleFunc(fmt.Sprintf("GET %s/{language}", constants.CookieConfigApiPath), s.handler.GetCookieConfigByLanguage)
	mux.HandleFunc(fmt.Sprintf("GET %s", constants.AdminCookieConfigApiPath), s.handler.ListCookieConfigs)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{language}", constants.AdminCookieConfigApiPath), s.handler.UpsertCookieConfig)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/{language}", constants.AdminCookieConfigApiPath), s.handler.DeleteCookieConfig)
}
