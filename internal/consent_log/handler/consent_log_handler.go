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
	"time"

	"github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/consent_log/provider"
	"github.com/ab-solanki/cookie/internal/system/authz"
	ccscontext "github.com/ab-solanki/cookie/internal/system/context"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/security"
	"github.com/ab-solanki/cookie/internal/system/utils"
)

type ConsentLogHandler struct{}

func NewConsentLogHandler() *ConsentLogHandler {
	return &ConsentLogHandler{}
}

// LogConsent handles POST /consent/log
func (h *ConsentLogHandler) LogConsent(w http.ResponseWriter, r *http.Request) {

	var request model.ConsentLogRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "consent log entry"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	entry := model.ConsentLogEntry{
		SessionID:   request.SessionID,
		Language:    request.Language,
		Action:      request.Action,
		ConsentData: request.ConsentData,
		Metadata: model.RequestMetadata{
			IPAddress: utils.ClientIP(r),
			UserAgent: r.UserAgent(),
			Referrer:  r.Referer(),
		},
	}

	logService := provider.NewConsentLogProvider().GetConsentLogService()
	stored, err := logService.LogConsent(entry)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for recorded consent
	logger := log.GetLogger()
	traceID := ccscontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   stored.SessionID,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      stored.ID,
		TargetType:    log.TargetTypeConsentLog,
		ActionID:      log.ActionRecordConsent,
		TraceID:       traceID,
		Data: map[string]string{
			"language": stored.Language,
			"action":   stored.Action,
		},
	})

	utils.WriteSuccessResponse(w, http.StatusCreated, map[string]string{"id": stored.ID})
}

// GetConsentAnalytics handles GET /admin/analytics/consent
func (h *ConsentLogHandler) GetConsentAnalytics(w http.ResponseWriter, r *http.Request) {

	_, err := security.AuthnAndAuthz(r, authz.OpReadAnalytics)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	filter, err := parseAnalyticsFilter(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logService := provider.NewConsentLogProvider().GetConsentLogService()
	summaries, err := logService.GetConsentAnalytics(filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, summaries)
}

// parseAnalyticsFilter reads the optional from, to and language query
// parameters. Timestamps must be RFC3339.
func parseAnalyticsFilter(r *http.Request) (model.AnalyticsFilter, error) {

	var filter model.AnalyticsFilter
	query := r.URL.Query()
	filter.Language = query.Get("language")

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: "Query parameter from must be an RFC3339 timestamp.",
			}, http.StatusBadRequest)
		}
		filter.From = parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: "Query parameter to must be an RFC3339 timestamp.",
			}, http.StatusBadRequest)
		}
		filter.To = parsed
	}
	return filter, nil
}
