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

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ab-solanki/cookie/internal/cookie_config/model"
	"github.com/ab-solanki/cookie/internal/cookie_config/provider"
	"github.com/ab-solanki/cookie/internal/system/authz"
	ccscontext "github.com/ab-solanki/cookie/internal/system/context"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/security"
	"github.com/ab-solanki/cookie/internal/system/utils"
)

type CookieConfigHandler struct{}

func NewCookieConfigHandler() *CookieConfigHandler {
	return &CookieConfigHandler{}
}

// GetDefaultCookieConfig handles GET /cookie-config
func (h *CookieConfigHandler) GetDefaultCookieConfig(w http.ResponseWriter, r *http.Request) {

	configService := provider.NewCookieConfigProvider().GetCookieConfigService()
	cookieConfig, source, err := configService.GetDefaultConfig()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	writeConfigResponse(w, cookieConfig, source)
}

// GetCookieConfigByLanguage handles GET /cookie-config/{language}
func (h *CookieConfigHandler) GetCookieConfigByLanguage(w http.ResponseWriter, r *http.Request) {

	language := r.PathValue("language")
	configService := provider.NewCookieConfigProvider().GetCookieConfigService()
	cookieConfig, source, err := configService.GetConfigByLanguage(language)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	writeConfigResponse(w, cookieConfig, source)
}

// GetAvailableLanguages handles GET /cookie-config/languages
func (h *CookieConfigHandler) GetAvailableLanguages(w http.ResponseWriter, r *http.Request) {

	configService := provider.NewCookieConfigProvider().GetCookieConfigService()
	languages, err := configService.GetAvailableLanguages()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, languages)
}

// ListCookieConfigs handles GET /admin/cookie-config
func (h *CookieConfigHandler) ListCookieConfigs(w http.ResponseWriter, r *http.Request) {

	_, err := security.AuthnAndAuthz(r, authz.OpReadConfig)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	configService := provider.NewCookieConfigProvider().GetCookieConfigService()
	configs, err := configService.ListConfigs()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, configs)
}

// UpsertCookieConfig handles PUT /admin/cookie-config/{language}
func (h *CookieConfigHandler) UpsertCookieConfig(w http.ResponseWriter, r *http.Request) {

	principal, err := security.AuthnAndAuthz(r, authz.OpWriteConfig)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var cookieConfig model.CookieConfig
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cookieConfig); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "cookie configuration"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	language := r.PathValue("language")
	configService := provider.NewCookieConfigProvider().GetCookieConfigService()
	stored, err := configService.UpsertConfig(language, cookieConfig, principal.Subject)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for cookie configuration upsert
	logger := log.GetLogger()
	traceID := ccscontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      stored.Language,
		TargetType:    log.TargetTypeCookieConfig,
		ActionID:      log.ActionUpsertCookieConfig,
		TraceID:       traceID,
		Data: map[string]string{
			"language": stored.Language,
			"enabled":  strconv.FormatBool(stored.Enabled),
		},
	})

	utils.WriteSuccessResponse(w, http.StatusOK, stored)
}

// DeleteCookieConfig handles DELETE /admin/cookie-config/{language}
func (h *CookieConfigHandler) DeleteCookieConfig(w http.ResponseWriter, r *http.Request) {

	principal, err := security.AuthnAndAuthz(r, authz.OpWriteConfig)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	language := r.PathValue("language")
	configService := provider.NewCookieConfigProvider().GetCookieConfigService()
	if err := configService.DeleteConfig(language); err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for cookie configuration deletion
	logger := log.GetLogger()
	traceID := ccscontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      language,
		TargetType:    log.TargetTypeCookieConfig,
		ActionID:      log.ActionDeleteCookieConfig,
		TraceID:       traceID,
	})

	utils.WriteSuccessResponse(w, http.StatusOK, nil)
}

// writeConfigResponse reports the served language and whether the document
// came from the cache or the store.
func writeConfigResponse(w http.ResponseWriter, cookieConfig *model.CookieConfig, source string) {
	utils.WriteJSONResponse(w, http.StatusOK, utils.Response{
		Success:  true,
		Data:     cookieConfig,
		Language: cookieConfig.Language,
		Source:   source,
	})
}
