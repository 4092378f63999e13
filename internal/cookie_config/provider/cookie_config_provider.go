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

package provider

import (
	"github.com/ab-solanki/cookie/internal/cookie_config/service"
)

// CookieConfigProviderInterface defines the interface for the cookie config provider.
type CookieConfigProviderInterface interface {
	GetCookieConfigService() service.CookieConfigServiceInterface
}

// CookieConfigProvider is the default implementation of the CookieConfigProviderInterface.
type CookieConfigProvider struct{}

// NewCookieConfigProvider creates a new instance of CookieConfigProvider.
func NewCookieConfigProvider() CookieConfigProviderInterface {
	return &CookieConfigProvider{}
}

// GetCookieConfigService returns the cookie config service instance.
func (cp *CookieConfigProvider) GetCookieConfigService() service.CookieConfigServiceInterface {
	return service.GetCookieConfigService()
}
